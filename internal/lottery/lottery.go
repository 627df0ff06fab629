package lottery

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownLottery is returned when a game type is not in the registry.
var ErrUnknownLottery = errors.New("unknown lottery type")

// Type identifies a supported lottery game.
type Type string

const (
	EstBingo       Type = "EST_BINGO"
	EstKeno        Type = "EST_KENO"
	EstJokker      Type = "EST_JOKKER"
	USPowerball    Type = "US_POWERBALL"
	USMegaMillions Type = "US_MEGA_MILLIONS"
	USCash4Life    Type = "US_CASH4LIFE"
	UKLotto        Type = "UK_LOTTO"
	UKThunderball  Type = "UK_THUNDERBALL"
	UKSetForLife   Type = "UK_SET_FOR_LIFE"
	UKHotPicks     Type = "UK_HOT_PICKS"
	IELotto        Type = "IE_LOTTO"
	IELottoPlus1   Type = "IE_LOTTO_PLUS_1"
	IELottoPlus2   Type = "IE_LOTTO_PLUS_2"
	IEDailyMillion Type = "IE_DAILY_MILLION"
	ESLaPrimitiva  Type = "ES_LA_PRIMITIVA"
	ESBonoloto     Type = "ES_BONOLOTO"
	ESElGordo      Type = "ES_EL_GORDO"
	Vikinglotto    Type = "VIKINGLOTTO"
	Eurojackpot    Type = "EUROJACKPOT"
	Euromillions   Type = "EUROMILLIONS"
	Eurodreams     Type = "EURODREAMS"
)

// Range is an inclusive interval of drawable numbers.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Size returns how many distinct numbers the range holds.
func (r Range) Size() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// Contains reports whether n lies inside the range.
func (r Range) Contains(n int) bool {
	return r.Size() > 0 && n >= r.Min && n <= r.Max
}

// Numbers enumerates the range in ascending order.
func (r Range) Numbers() []int {
	out := make([]int, 0, r.Size())
	for n := r.Min; n <= r.Max; n++ {
		out = append(out, n)
	}
	return out
}

// Pool describes one set of numbers drawn in a game.
type Pool struct {
	Range Range `json:"range"`
	Count int   `json:"count"`
}

// Config is the static description of a game.
type Config struct {
	Type      Type   `json:"type"`
	Name      string `json:"name"`
	Primary   Pool   `json:"primary"`
	Secondary *Pool  `json:"secondary,omitempty"`

	// WinClasses overrides the pools for games that publish several number
	// sets per draw (Bingo patterns, reintegro digits).
	WinClasses map[int]Config `json:"-"`

	// Positional games report each digit under its own win class; a query for
	// one position has a 1/range chance per draw.
	Positional bool `json:"positional,omitempty"`
}

var registry = map[Type]Config{
	EstBingo: {
		Type: EstBingo, Name: "Bingo Lotto",
		Primary: Pool{Range{1, 75}, 6},
		WinClasses: map[int]Config{
			5: {Primary: Pool{Range{31, 45}, 6}},
		},
	},
	EstKeno:   {Type: EstKeno, Name: "Keno", Primary: Pool{Range{1, 64}, 20}},
	EstJokker: {Type: EstJokker, Name: "Jokker", Primary: Pool{Range{0, 9}, 7}, Positional: true},

	USPowerball:    {Type: USPowerball, Name: "Powerball", Primary: Pool{Range{1, 69}, 5}, Secondary: &Pool{Range{1, 26}, 1}},
	USMegaMillions: {Type: USMegaMillions, Name: "Mega Millions", Primary: Pool{Range{1, 70}, 5}, Secondary: &Pool{Range{1, 24}, 1}},
	USCash4Life:    {Type: USCash4Life, Name: "Cash4Life", Primary: Pool{Range{1, 60}, 5}, Secondary: &Pool{Range{1, 4}, 1}},

	UKLotto:       {Type: UKLotto, Name: "UK Lotto", Primary: Pool{Range{1, 59}, 6}, Secondary: &Pool{Range{1, 59}, 1}},
	UKThunderball: {Type: UKThunderball, Name: "Thunderball", Primary: Pool{Range{1, 39}, 5}, Secondary: &Pool{Range{1, 14}, 1}},
	UKSetForLife:  {Type: UKSetForLife, Name: "Set For Life", Primary: Pool{Range{1, 47}, 5}, Secondary: &Pool{Range{1, 10}, 1}},
	UKHotPicks:    {Type: UKHotPicks, Name: "Lotto HotPicks", Primary: Pool{Range{1, 59}, 6}},

	IELotto:        {Type: IELotto, Name: "Irish Lotto", Primary: Pool{Range{1, 47}, 6}, Secondary: &Pool{Range{1, 47}, 1}},
	IELottoPlus1:   {Type: IELottoPlus1, Name: "Irish Lotto Plus 1", Primary: Pool{Range{1, 47}, 6}, Secondary: &Pool{Range{1, 47}, 1}},
	IELottoPlus2:   {Type: IELottoPlus2, Name: "Irish Lotto Plus 2", Primary: Pool{Range{1, 47}, 6}, Secondary: &Pool{Range{1, 47}, 1}},
	IEDailyMillion: {Type: IEDailyMillion, Name: "Daily Million", Primary: Pool{Range{1, 39}, 6}, Secondary: &Pool{Range{1, 39}, 1}},

	ESLaPrimitiva: {
		Type: ESLaPrimitiva, Name: "La Primitiva",
		Primary: Pool{Range{1, 49}, 6}, Secondary: &Pool{Range{1, 49}, 1},
		WinClasses: map[int]Config{
			2: {Primary: Pool{Range{0, 9}, 1}},
		},
	},
	ESBonoloto: {Type: ESBonoloto, Name: "Bonoloto", Primary: Pool{Range{1, 49}, 6}, Secondary: &Pool{Range{1, 49}, 1}},
	ESElGordo: {
		Type: ESElGordo, Name: "El Gordo de la Primitiva",
		Primary: Pool{Range{1, 54}, 5},
		WinClasses: map[int]Config{
			2: {Primary: Pool{Range{0, 9}, 1}},
		},
	},

	Vikinglotto:  {Type: Vikinglotto, Name: "Viking Lotto", Primary: Pool{Range{1, 48}, 6}, Secondary: &Pool{Range{1, 5}, 1}},
	Eurojackpot:  {Type: Eurojackpot, Name: "EuroJackpot", Primary: Pool{Range{1, 50}, 5}, Secondary: &Pool{Range{1, 12}, 2}},
	Euromillions: {Type: Euromillions, Name: "EuroMillions", Primary: Pool{Range{1, 50}, 5}, Secondary: &Pool{Range{1, 12}, 2}},
	Eurodreams:   {Type: Eurodreams, Name: "EuroDreams", Primary: Pool{Range{1, 40}, 6}, Secondary: &Pool{Range{1, 5}, 1}},
}

// Lookup returns the configuration of a game type.
func Lookup(t Type) (Config, error) {
	cfg, ok := registry[Type(strings.ToUpper(string(t)))]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownLottery, t)
	}
	return cfg, nil
}

// Types lists every registered game type in a stable order.
func Types() []Type {
	out := make([]Type, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// WinClassIDs lists the win classes with their own pools, ascending.
func (c Config) WinClassIDs() []int {
	if len(c.WinClasses) == 0 {
		return nil
	}
	out := make([]int, 0, len(c.WinClasses))
	for id := range c.WinClasses {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// pools resolves the primary/secondary pools for an optional win class.
func (c Config) pools(winClass *int) (Pool, *Pool) {
	if winClass != nil {
		if wc, ok := c.WinClasses[*winClass]; ok {
			return wc.Primary, wc.Secondary
		}
	}
	return c.Primary, c.Secondary
}

// NumberRange returns the range numbers are drawn from for a query. A game
// without a secondary pool falls back to its primary range.
func (c Config) NumberRange(useSecondary bool, winClass *int) Range {
	primary, secondary := c.pools(winClass)
	if useSecondary && secondary != nil {
		return secondary.Range
	}
	return primary.Range
}

// TheoreticalProbability is the chance that one specific number appears in a
// single draw: drawn count over range size, or 1/range size for a position of
// a positional game. Zero when the requested pool does not exist.
func (c Config) TheoreticalProbability(useSecondary bool, winClass, position *int) float64 {
	primary, secondary := c.pools(winClass)
	pool := primary
	if useSecondary {
		if secondary == nil {
			return 0
		}
		pool = *secondary
	}

	size := pool.Range.Size()
	if size == 0 {
		return 0
	}
	if c.Positional && position != nil {
		return 1 / float64(size)
	}
	return float64(pool.Count) / float64(size)
}
