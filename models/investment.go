package models

import "time"

// InvestmentGroup groups investments under a URL slug.
type InvestmentGroup struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Investment is a listing inside an investment group, referenced by slug.
type Investment struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ROI         *string   `json:"roi"`
	ImageURL    *string   `json:"imageUrl"`
	GroupSlug   string    `json:"groupSlug"`
	CreatedAt   time.Time `json:"createdAt"`

	// GroupTitle is joined from investment_groups and read-only.
	GroupTitle string `json:"groupTitle"`
}

// InvestmentFilter narrows an investment listing. An empty GroupSlug lists
// every group.
type InvestmentFilter struct {
	GroupSlug string
}
