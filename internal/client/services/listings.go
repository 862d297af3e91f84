package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/api"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/models"
	"github.com/sportowyhub/sportowyhub-cli/internal/logging"
)

const (
	listingsPath = "/api/v1/listings"
	searchPath   = "/api/v1/search"
)

// SearchParams are the marketplace search filters. Zero values are omitted
// from the query string.
type SearchParams struct {
	Query      string
	CategoryID string
	Sport      string
	City       string
	PriceMin   float64
	PriceMax   float64
	Sort       string
	Limit      int
	Offset     int
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.CategoryID != "" {
		v.Set("category_id", p.CategoryID)
	}
	if p.Sport != "" {
		v.Set("sport", p.Sport)
	}
	if p.City != "" {
		v.Set("city", p.City)
	}
	if p.PriceMin > 0 {
		v.Set("price_min", strconv.FormatFloat(p.PriceMin, 'f', -1, 64))
	}
	if p.PriceMax > 0 {
		v.Set("price_max", strconv.FormatFloat(p.PriceMax, 'f', -1, 64))
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	return v
}

// ListingsService reads public marketplace data. All endpoints are
// unauthenticated, so failures come back as plain errors for the caller to
// present.
type ListingsService interface {
	Listings(ctx context.Context, limit, offset int) (*models.ListingsResponse, error)
	Listing(ctx context.Context, id string) (*models.ListingDetail, error)
	Search(ctx context.Context, params SearchParams) (*models.SearchResponse, error)
}

type listingsService struct {
	provider api.RequestProvider
	log      logging.Logger
}

func NewListingsService(provider api.RequestProvider, log logging.Logger) ListingsService {
	return &listingsService{provider: provider, log: log.With("service", "listings")}
}

// Listings returns a page of published listings.
func (l *listingsService) Listings(ctx context.Context, limit, offset int) (*models.ListingsResponse, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}
	path := listingsPath
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var resp models.ListingsResponse
	if err := l.provider.Get(ctx, path, "", &resp); err != nil {
		return nil, fmt.Errorf("fetching listings: %w", err)
	}
	return &resp, nil
}

// Listing returns the full detail of one listing by id.
func (l *listingsService) Listing(ctx context.Context, id string) (*models.ListingDetail, error) {
	var resp models.ListingDetail
	if err := l.provider.Get(ctx, listingsPath+"/"+url.PathEscape(id), "", &resp); err != nil {
		return nil, fmt.Errorf("fetching listing %s: %w", id, err)
	}
	return &resp, nil
}

// Search runs a filtered full-text search over published listings.
func (l *listingsService) Search(ctx context.Context, params SearchParams) (*models.SearchResponse, error) {
	path := searchPath
	if v := params.values(); len(v) > 0 {
		path += "?" + v.Encode()
	}

	var resp models.SearchResponse
	if err := l.provider.Get(ctx, path, "", &resp); err != nil {
		return nil, fmt.Errorf("searching listings: %w", err)
	}
	return &resp, nil
}
