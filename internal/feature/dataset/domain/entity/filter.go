package entity

// Filter is the conjunction of the dashboard's sidebar controls: a set of
// countries, a set of sectors and an inclusive year range. A record matches
// only when every predicate holds.
//
// The country and sector sets are explicit selections: an empty set admits
// no record. There is no select-all fallback here; the frontend pre-populates
// its multiselects with every option from /api/filters.
type Filter struct {
	Countries []string
	Sectors   []string
	YearFrom  int
	YearTo    int
}

// Match reports whether the record satisfies every predicate of the filter.
// Matching on names is exact and case-sensitive; the filter values are
// expected to come from the dataset's own distinct values.
func (f Filter) Match(r Record) bool {
	if !contains(f.Countries, r.Country) {
		return false
	}
	if !contains(f.Sectors, r.Sector) {
		return false
	}
	return r.Year >= f.YearFrom && r.Year <= f.YearTo
}

// Apply returns the records matching the filter, preserving dataset order.
// The input slice is never mutated; the result is always a fresh slice so
// callers may not alias the dataset snapshot.
func (f Filter) Apply(records []Record) []Record {
	countries := toSet(f.Countries)
	sectors := toSet(f.Sectors)

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !countries[r.Country] || !sectors[r.Sector] {
			continue
		}
		if r.Year < f.YearFrom || r.Year > f.YearTo {
			continue
		}
		out = append(out, r)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
