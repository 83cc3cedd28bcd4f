package property

import "strings"

// Filter is an AND-composed set of optional catalog predicates. The zero
// value matches every property.
type Filter struct {
	Type        *Type
	ListingType *ListingType
	Location    *Location
	SearchTerm  string
	MinPrice    *int64
	MaxPrice    *int64
}

func (f Filter) Matches(p *Property) bool {
	if f.Type != nil && p.Type() != *f.Type {
		return false
	}
	if f.ListingType != nil && p.ListingType() != *f.ListingType {
		return false
	}
	if f.Location != nil && p.Location() != *f.Location {
		return false
	}
	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		lower := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(p.Name()), lower) &&
			!strings.Contains(strings.ToLower(p.Description()), lower) &&
			!strings.Contains(strings.ToLower(p.Address()), lower) {
			return false
		}
	}
	if f.MinPrice != nil && p.Price() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price() > *f.MaxPrice {
		return false
	}
	return true
}
