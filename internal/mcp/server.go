package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lotto-mcp/internal/config"
	"lotto-mcp/internal/lottery"
	"lotto-mcp/internal/report"
	"lotto-mcp/internal/tier"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Inventory reports how many draws are loaded per game.
type Inventory interface {
	Len(lt lottery.Type) int
}

// Server exposes the report service as MCP tools.
type Server struct {
	cfg       *config.AppConfig
	svc       *report.Service
	inventory Inventory
	tier      tier.Tier
	version   string
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig, svc *report.Service, inventory Inventory, version string) *Server {
	return &Server{
		cfg:       cfg,
		svc:       svc,
		inventory: inventory,
		tier:      tier.Parse(cfg.Tier),
		version:   version,
	}
}

// Start serves MCP over stdio until the client disconnects or ctx ends.
func (s *Server) Start(ctx context.Context) error {
	srv, err := s.build()
	if err != nil {
		return err
	}
	log.Info().Str("tier", string(s.tier)).Msg("MCP server listening on stdio")
	return srv.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) build() (*mcp.Server, error) {
	srv := mcp.NewServer(&mcp.Implementation{Name: "lotto-mcp", Version: s.version}, nil)
	if err := s.registerTools(srv); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return srv, nil
}

// response is the envelope every tool returns.
type response struct {
	Data     any      `json:"data"`
	Insights []string `json:"insights,omitempty"`
}

func (s *Server) textResult(data any, insights []string, charts ...string) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(response{Data: data, Insights: insights}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	var sb strings.Builder
	sb.Write(out)
	if s.cfg.EnableMermaidCharts {
		for _, c := range charts {
			if c == "" {
				continue
			}
			sb.WriteString("\n\n")
			sb.WriteString(c)
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: sb.String()}},
	}, nil
}
