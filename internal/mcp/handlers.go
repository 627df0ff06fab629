package mcp

import (
	"context"
	"fmt"

	"lotto-mcp/internal/lottery"
	"lotto-mcp/internal/report"
	"lotto-mcp/internal/stats"
	"lotto-mcp/internal/tier"
	"lotto-mcp/internal/visuals"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func (s *Server) handleNumberDetail(ctx context.Context, _ *mcp.CallToolRequest, args NumberDetailArgs) (*mcp.CallToolResult, any, error) {
	from, to, err := report.ParseWindow(args.DateFrom, args.DateTo)
	if err != nil {
		return nil, nil, err
	}

	req := report.Request{
		LottoType:           lottery.Type(args.LottoType),
		Number:              args.Number,
		DateFrom:            from,
		DateTo:              to,
		UseSecondaryNumbers: args.UseSecondaryNumbers,
		Position:            args.Position,
		WinClass:            args.WinClass,
		Tier:                s.tier,
	}

	detail, err := s.svc.NumberDetail(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("lotto_type", args.LottoType).Int("number", args.Number).Msg("number_detail failed")
		return nil, nil, err
	}

	insights := s.detailInsights(detail)

	var charts []string
	if detail.Trends != nil {
		charts = append(charts, visuals.GenerateTimeSeriesChart(args.Number, detail.Trends.TimeSeries))
	}
	if detail.SeasonalPatterns != nil {
		charts = append(charts, visuals.GenerateSeasonalChart(*detail.SeasonalPatterns))
	}

	res, err := s.textResult(detail, insights, charts...)
	return res, nil, err
}

func (s *Server) handleNumberFrequencies(ctx context.Context, _ *mcp.CallToolRequest, args FrequencyArgs) (*mcp.CallToolResult, any, error) {
	from, to, err := report.ParseWindow(args.DateFrom, args.DateTo)
	if err != nil {
		return nil, nil, err
	}

	overview, err := s.svc.Frequencies(ctx, report.FrequencyRequest{
		LottoType:           lottery.Type(args.LottoType),
		DateFrom:            from,
		DateTo:              to,
		UseSecondaryNumbers: args.UseSecondaryNumbers,
		Position:            args.Position,
		WinClass:            args.WinClass,
		Tier:                s.tier,
	})
	if err != nil {
		return nil, nil, err
	}

	var insights []string
	if overview.AvailableDraws > overview.TotalDraws {
		insights = append(insights, drawCapInsight(s.tier, overview.TotalDraws, overview.AvailableDraws))
	}

	numbers := make([]int, len(overview.Numbers))
	counts := make([]int, len(overview.Numbers))
	for i, n := range overview.Numbers {
		numbers[i] = n.Number
		counts[i] = n.Count
	}

	res, err := s.textResult(overview, insights, visuals.GenerateFrequencyChart(numbers, counts))
	return res, nil, err
}

type poolInfo struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Drawn int `json:"drawn"`
}

type lotteryInfo struct {
	Type        lottery.Type `json:"type"`
	Name        string       `json:"name"`
	Primary     poolInfo     `json:"primary"`
	Secondary   *poolInfo    `json:"secondary,omitempty"`
	WinClasses  []int        `json:"winClasses,omitempty"`
	Positional  bool         `json:"positional,omitempty"`
	LoadedDraws int          `json:"loadedDraws"`
}

func (s *Server) handleListLotteries(_ context.Context, _ *mcp.CallToolRequest, _ ListLotteriesArgs) (*mcp.CallToolResult, any, error) {
	res, err := s.textResult(s.lotteries(), nil)
	return res, nil, err
}

func (s *Server) lotteries() []lotteryInfo {
	var out []lotteryInfo
	for _, t := range lottery.Types() {
		cfg, err := lottery.Lookup(t)
		if err != nil {
			continue
		}
		info := lotteryInfo{
			Type:       t,
			Name:       cfg.Name,
			Primary:    poolInfo{cfg.Primary.Range.Min, cfg.Primary.Range.Max, cfg.Primary.Count},
			WinClasses: cfg.WinClassIDs(),
			Positional: cfg.Positional,
		}
		if cfg.Secondary != nil {
			info.Secondary = &poolInfo{cfg.Secondary.Range.Min, cfg.Secondary.Range.Max, cfg.Secondary.Count}
		}
		if s.inventory != nil {
			info.LoadedDraws = s.inventory.Len(t)
		}
		out = append(out, info)
	}
	return out
}

func (s *Server) detailInsights(d report.NumberDetail) []string {
	var out []string
	if d.AvailableDraws > d.Summary.TotalDraws {
		out = append(out, drawCapInsight(s.tier, d.Summary.TotalDraws, d.AvailableDraws))
	}

	gate := s.svc.Gate()
	for _, f := range gate.Features() {
		if gate.Allows(f, s.tier, d.Summary.TotalDraws) {
			continue
		}
		req, ok := gate.Requirement(f)
		if !ok {
			continue
		}
		if !s.tier.AtLeast(req.RequiredTier) {
			out = append(out, fmt.Sprintf("%s requires the %s tier.", f, req.RequiredTier))
			continue
		}
		out = append(out, fmt.Sprintf("%s needs at least %d draws; the window has %d.", f, req.MinDraws, d.Summary.TotalDraws))
	}

	if d.PairAnalysis == nil && gate.Allows(tier.PairAnalysis, s.tier, d.Summary.TotalDraws) {
		out = append(out, fmt.Sprintf("%s needs at least %d appearances; the number has %d.", tier.PairAnalysis, stats.MinAppearancesForPairs, d.Summary.AppearanceCount))
	}
	if d.Summary.TotalDraws > 0 && d.Summary.AppearanceCount == 0 {
		out = append(out, "The number was not drawn in this window.")
	}
	return out
}

func drawCapInsight(t tier.Tier, used, available int) string {
	return fmt.Sprintf("The %s tier analyses the %d most recent of %d draws in the window.", t, used, available)
}
