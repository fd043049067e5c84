// Package pricing holds the fixed region price table, the address matcher,
// the override layer hook and the tax totals calculator.
package pricing

import (
	"regexp"
	"strings"
)

// Region is one named service area with a fixed total price and a
// pickup/delivery fulfillment window in business days.
type Region struct {
	Name       string
	TotalPrice float64
	DaysMin    int
	DaysMax    int

	keywords []*regexp.Regexp
}

// Match reports whether the free-text address falls in this region. Keyword
// tests are case-insensitive whole-word checks.
func (r Region) Match(address string) bool {
	for _, re := range r.keywords {
		if re.MatchString(address) {
			return true
		}
	}
	return false
}

// keywordPattern compiles a keyword into a word-bounded case-insensitive
// matcher. Spaces and hyphens inside a keyword match any run of either, so
// "niagara falls" also matches "NiagaraFalls" spelled "Niagara  Falls" and
// "trois-rivieres" matches "Trois Rivieres".
func keywordPattern(keyword string) *regexp.Regexp {
	parts := regexp.MustCompile(`[\s-]+`).Split(keyword, -1)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(parts, `[\s-]*`) + `\b`)
}

func region(name string, totalPrice float64, keywords ...string) Region {
	days := fulfillmentDays(name)
	r := Region{Name: name, TotalPrice: totalPrice, DaysMin: days.Min, DaysMax: days.Max}
	for _, kw := range keywords {
		r.keywords = append(r.keywords, keywordPattern(kw))
	}
	return r
}

// Regions is the fixed service-area list. Order matters: address matching is
// first-match-wins, so more specific regions must precede the general ones
// that would otherwise shadow them (Oshawa before Toronto, Trois-Rivieres
// before Montreal).
var Regions = []Region{
	region("Toronto (Oshawa Region)", 385, "oshawa", "ajax", "whitby", "pickering"),
	region("Toronto (Downtown / Brampton / Mississauga)", 435, "toronto", "downtown", "brampton", "mississauga"),
	region("Hamilton", 535, "hamilton"),
	region("Niagara Falls", 585, "niagara falls"),
	region("Windsor", 635, "windsor"),
	region("London, Ontario", 585, "london"),
	region("Kingston", 235, "kingston"),
	region("Belleville", 285, "belleville"),
	region("Cornwall", 205, "cornwall"),
	region("Peterborough", 385, "peterborough"),
	region("Barrie", 435, "barrie"),
	region("North Bay", 435, "north bay"),
	region("Timmins", 685, "timmins"),
	region("Montreal (Trois-Rivières Region)", 335, "trois-rivieres", "trois-rivières"),
	region("Montreal", 285, "montreal", "montréal"),
	region("Quebec City", 435, "quebec city", "québec city", "ville de quebec", "ville de québec"),
}

// ServiceAreas lists the region names in table order, for form dropdowns.
func ServiceAreas() []string {
	out := make([]string, len(Regions))
	for i, r := range Regions {
		out[i] = r.Name
	}
	return out
}

// PriceList returns the full table in its defined order with overrides
// applied.
func PriceList(overrides Overrides) []RegionPrice {
	out := make([]RegionPrice, len(Regions))
	for i, r := range Regions {
		out[i] = overrides.apply(r)
	}
	return out
}

// RegionPrice is an official lookup result. Price already has any override
// applied; the label is always the table's region name.
type RegionPrice struct {
	Region     string  `json:"region"`
	TotalPrice float64 `json:"total_price"`
	DaysMin    int     `json:"days_min"`
	DaysMax    int     `json:"days_max"`
}

// Overrides maps region name to a replacement total price. Absence of a key
// means "use the table default". It is read on every lookup and never mutates
// the static table.
type Overrides map[string]float64

func (o Overrides) apply(r Region) RegionPrice {
	price := r.TotalPrice
	if v, ok := o[r.Name]; ok && v > 0 {
		price = v
	}
	return RegionPrice{Region: r.Name, TotalPrice: price, DaysMin: r.DaysMin, DaysMax: r.DaysMax}
}

// ForServiceArea resolves an exact region name. Returns nil when the name is
// unknown; no error conditions exist.
func ForServiceArea(serviceArea string, overrides Overrides) *RegionPrice {
	area := strings.TrimSpace(serviceArea)
	if area == "" {
		return nil
	}
	for _, r := range Regions {
		if r.Name == area {
			rp := overrides.apply(r)
			return &rp
		}
	}
	return nil
}

// ForAddress resolves a free-text address against the ordered predicate list.
// First match wins; nil means "fall back to distance-based estimation".
func ForAddress(address string, overrides Overrides) *RegionPrice {
	addr := strings.TrimSpace(address)
	if addr == "" {
		return nil
	}
	for _, r := range Regions {
		if r.Match(addr) {
			rp := overrides.apply(r)
			return &rp
		}
	}
	return nil
}

type window struct{ Min, Max int }

// fulfillmentDays gives the quoted pickup/delivery window for a route.
// Montreal-corridor routes run next-day, everything else 3-8 business days.
func fulfillmentDays(route string) window {
	if strings.Contains(strings.ToLower(strings.TrimSpace(route)), "montreal") {
		return window{Min: 1, Max: 2}
	}
	return window{Min: 3, Max: 8}
}

// DefaultFulfillmentDays is the window quoted when no service area matched.
func DefaultFulfillmentDays() (min, max int) {
	w := fulfillmentDays("")
	return w.Min, w.Max
}
