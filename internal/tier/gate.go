package tier

// Gate decides which features a caller may see. It is read-only after
// construction and safe for concurrent use.
type Gate struct {
	table Table
}

// NewGate builds a gate over a copy of table; a nil table uses the defaults.
func NewGate(table Table) *Gate {
	if table == nil {
		table = DefaultTable()
	}
	own := make(Table, len(table))
	for f, r := range table {
		own[f] = r
	}
	return &Gate{table: own}
}

// Requirement returns the entry for a feature.
func (g *Gate) Requirement(f Feature) (Requirement, bool) {
	r, ok := g.table[f]
	return r, ok
}

// Features lists every gated feature in a stable order.
func (g *Gate) Features() []Feature {
	return g.table.Features()
}

// Allows reports whether a caller of tier t may receive feature f for a
// period of the given size. Unknown features are never allowed.
func (g *Gate) Allows(f Feature, t Tier, draws int) bool {
	r, ok := g.table[f]
	if !ok {
		return false
	}
	return Parse(string(t)).AtLeast(r.RequiredTier) && draws >= r.MinDraws
}

// Allowed lists the features available to a caller.
func (g *Gate) Allowed(t Tier, draws int) []Feature {
	var out []Feature
	for _, f := range g.table.Features() {
		if g.Allows(f, t, draws) {
			out = append(out, f)
		}
	}
	return out
}
