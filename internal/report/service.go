package report

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"lotto-mcp/internal/draws"
	"lotto-mcp/internal/lottery"
	"lotto-mcp/internal/stats"
	"lotto-mcp/internal/tier"
)

// Service answers report requests against a draw provider.
type Service struct {
	provider draws.Provider
	builder  *Builder
}

// NewService wires a provider and a builder; a nil builder uses defaults.
func NewService(provider draws.Provider, builder *Builder) *Service {
	if builder == nil {
		builder = NewBuilder(nil, DefaultOptions())
	}
	return &Service{provider: provider, builder: builder}
}

// Gate exposes the tier gate in use.
func (s *Service) Gate() *tier.Gate {
	return s.builder.Gate()
}

type window struct {
	draws     []draws.Draw
	available int
}

// fetch loads the capped period and the uncapped count concurrently.
func (s *Service) fetch(ctx context.Context, lt lottery.Type, from, to time.Time, t tier.Tier) (window, error) {
	q := draws.Query{
		LottoType: lt,
		From:      from,
		To:        to,
		Limit:     tier.DrawLimit(t),
	}

	var w window
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.provider.FindPeriod(gctx, q)
		if err != nil {
			return fmt.Errorf("failed to load draws: %w", err)
		}
		w.draws = list
		return nil
	})
	g.Go(func() error {
		n, err := s.provider.Count(gctx, q)
		if err != nil {
			return fmt.Errorf("failed to count draws: %w", err)
		}
		w.available = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return window{}, err
	}

	draws.SortChronological(w.draws)
	return w, nil
}

// NumberDetail validates the request and returns the gated profile of the
// requested number.
func (s *Service) NumberDetail(ctx context.Context, req Request) (NumberDetail, error) {
	started := time.Now()
	req.Tier = tier.Parse(string(req.Tier))

	cfg, err := Validate(req)
	if err != nil {
		return NumberDetail{}, err
	}

	w, err := s.fetch(ctx, cfg.Type, req.DateFrom, req.DateTo, req.Tier)
	if err != nil {
		return NumberDetail{}, err
	}

	detail := s.builder.Build(s.input(cfg, req, w))

	log.Info().
		Str("lotto_type", string(cfg.Type)).
		Int("number", req.Number).
		Str("tier", string(req.Tier)).
		Int("draws", len(w.draws)).
		Int("available", w.available).
		Dur("elapsed", time.Since(started)).
		Msg("Number detail computed")
	return detail, nil
}

func (s *Service) input(cfg lottery.Config, req Request, w window) Input {
	f := req.filter()
	return Input{
		Number:         req.Number,
		Draws:          w.draws,
		Filter:         f,
		Theoretical:    cfg.TheoreticalProbability(req.UseSecondaryNumbers, req.WinClass, req.Position),
		Domain:         draws.NewFrequencyTable(w.draws, cfg.NumberRange(req.UseSecondaryNumbers, req.WinClass), f),
		Tier:           req.Tier,
		AvailableDraws: w.available,
		PeriodStart:    req.DateFrom,
		PeriodEnd:      req.DateTo,
	}
}

// Batch profiles several numbers over one fetched window, building at most
// concurrency reports at a time. Results keep the order of numbers.
func (s *Service) Batch(ctx context.Context, req Request, numbers []int, concurrency int) ([]NumberDetail, error) {
	req.Tier = tier.Parse(string(req.Tier))
	if len(numbers) == 0 {
		return []NumberDetail{}, nil
	}

	var cfg lottery.Config
	for _, n := range numbers {
		r := req
		r.Number = n
		c, err := Validate(r)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	w, err := s.fetch(ctx, cfg.Type, req.DateFrom, req.DateTo, req.Tier)
	if err != nil {
		return nil, err
	}
	base := s.input(cfg, req, w)

	out := make([]NumberDetail, len(numbers))
	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, n := range numbers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in := base
			in.Number = n
			out[i] = s.builder.Build(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Str("lotto_type", string(cfg.Type)).Int("numbers", len(numbers)).Int("draws", len(w.draws)).Msg("Batch computed")
	return out, nil
}

// Frequencies ranks every number of the selected pool over the window.
func (s *Service) Frequencies(ctx context.Context, req FrequencyRequest) (FrequencyOverview, error) {
	req.Tier = tier.Parse(string(req.Tier))

	cfg, err := validateWindow(req.LottoType, req.DateFrom, req.DateTo)
	if err != nil {
		return FrequencyOverview{}, err
	}

	w, err := s.fetch(ctx, cfg.Type, req.DateFrom, req.DateTo, req.Tier)
	if err != nil {
		return FrequencyOverview{}, err
	}

	f := draws.Filter{UseSecondary: req.UseSecondaryNumbers, WinClass: req.WinClass, Position: req.Position}
	table := draws.NewFrequencyTable(w.draws, cfg.NumberRange(req.UseSecondaryNumbers, req.WinClass), f)
	p := cfg.TheoreticalProbability(req.UseSecondaryNumbers, req.WinClass, req.Position)
	freqs := table.Frequencies()
	ranks := stats.CalculateRank(freqs)
	domain := table.Values()
	withCI := s.Gate().Allows(tier.WilsonCI, req.Tier, table.Total)

	out := FrequencyOverview{
		LottoType:              cfg.Type,
		TotalDraws:             table.Total,
		AvailableDraws:         max(w.available, table.Total),
		TheoreticalProbability: stats.Round(p, 6),
		Numbers:                make([]NumberFrequency, 0, len(freqs)),
		PeriodStart:            req.DateFrom,
		PeriodEnd:              req.DateTo,
	}
	for _, n := range table.Range.Numbers() {
		count := table.Count(n)
		nf := NumberFrequency{
			Number:         n,
			Count:          count,
			Frequency:      stats.Round(freqs[n], 4),
			Rank:           ranks[n],
			Interpretation: stats.InterpretFrequency(count, table.Total, p, domain),
		}
		if withCI {
			ci := stats.WilsonInterval(count, table.Total, stats.DefaultConfidenceLevel)
			nf.ConfidenceInterval = &ci
		}
		out.Numbers = append(out.Numbers, nf)
	}
	slices.SortStableFunc(out.Numbers, func(a, b NumberFrequency) int {
		if a.Rank != b.Rank {
			return a.Rank - b.Rank
		}
		return a.Number - b.Number
	})
	return out, nil
}
