package models

type FavoriteItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price,omitempty"`
	Currency string `json:"currency,omitempty"`
	City     string `json:"city,omitempty"`
	Status   string `json:"status"`
	Slug     string `json:"slug,omitempty"`
	SerialID int    `json:"serial_id"`
}

type FavoritesListResponse struct {
	Items   []FavoriteItem `json:"items"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Pages   int            `json:"pages"`
}

type FavoritesIDsResponse struct {
	IDs []string `json:"ids"`
}

type FavoriteActionResponse struct {
	Status string `json:"status"`
}
