package models

// SearchCriteria is the parsed form of the product search parameters. Empty
// slices mean "no filter on that field"; nil price bounds mean unbounded.
type SearchCriteria struct {
	Keyword       string
	Categories    []string
	BoardSizes    []string
	Brands        []string
	MinPrice      *float64
	MaxPrice      *float64
	SortBy        string
	SortDirection string
	Page          int64
	Size          int64
}

// PagedResult is one page of matching products plus the total match count
// independent of pagination. Both come from a single aggregation so they
// reflect the same snapshot of the match set.
type PagedResult struct {
	Products   []Product `bson:"products" json:"products"`
	TotalCount int64     `bson:"totalCount" json:"totalCount"`
}
