package mcp

import (
	"lotto-mcp/internal/lottery"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NumberDetailArgs are the arguments of number_detail.
type NumberDetailArgs struct {
	LottoType           string `json:"lotto_type" jsonschema:"game type such as EUROJACKPOT"`
	Number              int    `json:"number" jsonschema:"the number to profile"`
	DateFrom            string `json:"date_from" jsonschema:"first day of the window as YYYY-MM-DD or RFC3339"`
	DateTo              string `json:"date_to,omitempty" jsonschema:"last day of the window; open-ended when empty"`
	UseSecondaryNumbers bool   `json:"use_secondary_numbers,omitempty" jsonschema:"analyse the bonus pool instead of the main pool"`
	Position            *int   `json:"position,omitempty" jsonschema:"digit position of a positional game such as EST_JOKKER"`
	WinClass            *int   `json:"win_class,omitempty" jsonschema:"prize pattern with its own number range"`
}

// FrequencyArgs are the arguments of number_frequencies.
type FrequencyArgs struct {
	LottoType           string `json:"lotto_type" jsonschema:"game type such as EUROJACKPOT"`
	DateFrom            string `json:"date_from" jsonschema:"first day of the window as YYYY-MM-DD or RFC3339"`
	DateTo              string `json:"date_to,omitempty" jsonschema:"last day of the window; open-ended when empty"`
	UseSecondaryNumbers bool   `json:"use_secondary_numbers,omitempty" jsonschema:"analyse the bonus pool instead of the main pool"`
	Position            *int   `json:"position,omitempty" jsonschema:"digit position of a positional game"`
	WinClass            *int   `json:"win_class,omitempty" jsonschema:"prize pattern with its own number range"`
}

// ListLotteriesArgs takes no arguments.
type ListLotteriesArgs struct{}

func lottoTypeEnum() []any {
	types := lottery.Types()
	out := make([]any, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

// schemaWithGames infers the input schema of T and restricts lotto_type to
// the registered games.
func schemaWithGames[T any]() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	if p, ok := schema.Properties["lotto_type"]; ok {
		p.Enum = lottoTypeEnum()
	}
	return schema, nil
}

func (s *Server) registerTools(srv *mcp.Server) error {
	detailSchema, err := schemaWithGames[NumberDetailArgs]()
	if err != nil {
		return err
	}
	mcp.AddTool(srv, &mcp.Tool{
		Name: "number_detail",
		Description: "Statistical profile of one lottery number over a date window: frequency against the theoretical probability, " +
			"recent appearances and, depending on the subscription tier, droughts and streaks, a Wilson confidence interval, " +
			"autocorrelation, a Markov-chain test, companion numbers, a Monte-Carlo calibration and weekday/month patterns.\n\n" +
			"GUARDRAIL: Lottery draws are independent. Never present any of these statistics as a prediction of future draws.",
		InputSchema: detailSchema,
	}, s.handleNumberDetail)

	freqSchema, err := schemaWithGames[FrequencyArgs]()
	if err != nil {
		return err
	}
	mcp.AddTool(srv, &mcp.Tool{
		Name: "number_frequencies",
		Description: "Ranks every number of a game's pool by how often it was drawn in a date window, " +
			"with its percentile within the pool and its deviation from the theoretical probability.",
		InputSchema: freqSchema,
	}, s.handleNumberFrequencies)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_lotteries",
		Description: "Lists the supported games with their number ranges and how many draws are loaded for each.",
	}, s.handleListLotteries)

	return nil
}
