package models

type ListingSummary struct {
	ID            string `json:"id"`
	Slug          string `json:"slug,omitempty"`
	Title         string `json:"title"`
	Price         string `json:"price,omitempty"`
	Currency      string `json:"currency,omitempty"`
	City          string `json:"city,omitempty"`
	CategoryID    int    `json:"category_id"`
	ContentLocale string `json:"content_locale,omitempty"`
	PublishedAt   string `json:"published_at,omitempty"`
}

type ListingsResponse struct {
	Items  []ListingSummary `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type ListingDetail struct {
	ID                   string `json:"id"`
	Slug                 string `json:"slug,omitempty"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	Price                string `json:"price,omitempty"`
	Currency             string `json:"currency,omitempty"`
	City                 string `json:"city,omitempty"`
	Region               string `json:"region,omitempty"`
	Status               string `json:"status"`
	CategoryID           int    `json:"category_id"`
	ContentLocale        string `json:"content_locale,omitempty"`
	CreatedAt            string `json:"created_at"`
	PublishedAt          string `json:"published_at,omitempty"`
	LastModeratorComment string `json:"last_moderator_comment,omitempty"`
}

type SearchResponse struct {
	Items  []SearchResultItem `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type SearchResultItem struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	SerialID        int               `json:"serial_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	CategoryID      string            `json:"category_id"`
	CategoryPath    string            `json:"category_path"`
	Sport           string            `json:"sport"`
	Price           *float32          `json:"price,omitempty"`
	Currency        string            `json:"currency,omitempty"`
	City            string            `json:"city,omitempty"`
	Region          string            `json:"region,omitempty"`
	Status          string            `json:"status"`
	OwnerTrustLevel string            `json:"owner_trust_level"`
	CreatedAt       string            `json:"created_at"`
	PublishedAt     string            `json:"published_at,omitempty"`
	Location        *GeoLocation      `json:"location,omitempty"`
	Attributes      []SearchAttribute `json:"attributes,omitempty"`
}

type GeoLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SearchAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
