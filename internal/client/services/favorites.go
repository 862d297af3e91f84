package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/api"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/models"
	"github.com/sportowyhub/sportowyhub-cli/internal/logging"
)

const (
	favoritesPath    = "/api/private/favorites"
	favoritesIDsPath = "/api/private/favorites/ids"
)

// FavoritesService manages the signed-in user's favorite listings and keeps
// an in-memory id cache so list views can mark favorites without a network
// round trip per item.
type FavoritesService interface {
	// LoadIDs refreshes the id cache from the server. Logged out it resets
	// the cache and returns nil without a network call.
	LoadIDs(ctx context.Context) error

	// IsFavorite answers from the cache only.
	IsFavorite(id string) bool

	List(ctx context.Context, page, perPage int) (*models.FavoritesListResponse, error)

	// Add marks a listing as favorite. A conflict response means the listing
	// already was one and counts as success.
	Add(ctx context.Context, id string) error

	Remove(ctx context.Context, id string) error

	// ClearCache empties the id cache, e.g. on logout.
	ClearCache()
}

type favoritesService struct {
	provider api.RequestProvider
	auth     AuthService
	log      logging.Logger

	mu  sync.Mutex
	ids map[string]struct{}
}

func NewFavoritesService(provider api.RequestProvider, auth AuthService, log logging.Logger) FavoritesService {
	return &favoritesService{
		provider: provider,
		auth:     auth,
		log:      log.With("service", "favorites"),
		ids:      map[string]struct{}{},
	}
}

func (f *favoritesService) token(ctx context.Context) (string, error) {
	token, err := f.auth.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("reading access token: %w", err)
	}
	return token, nil
}

func (f *favoritesService) LoadIDs(ctx context.Context) error {
	token, err := f.token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		f.ClearCache()
		return nil
	}

	var resp models.FavoritesIDsResponse
	if err := f.provider.Get(ctx, favoritesIDsPath, token, &resp); err != nil {
		return fmt.Errorf("loading favorite ids: %w", err)
	}

	ids := make(map[string]struct{}, len(resp.IDs))
	for _, id := range resp.IDs {
		ids[id] = struct{}{}
	}

	f.mu.Lock()
	f.ids = ids
	f.mu.Unlock()
	return nil
}

func (f *favoritesService) IsFavorite(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.ids[id]
	return ok
}

func (f *favoritesService) List(ctx context.Context, page, perPage int) (*models.FavoritesListResponse, error) {
	token, err := f.token(ctx)
	if err != nil {
		return nil, err
	}

	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	path := favoritesPath
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var resp models.FavoritesListResponse
	if err := f.provider.Get(ctx, path, token, &resp); err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return &resp, nil
}

func (f *favoritesService) Add(ctx context.Context, id string) error {
	token, err := f.token(ctx)
	if err != nil {
		return err
	}

	err = f.provider.Post(ctx, favoritesPath+"/"+url.PathEscape(id), nil, nil, token, nil)
	if err != nil {
		var reqErr *api.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusConflict {
			f.log.Debug(ctx, "already favorited", "id", id)
		} else {
			return fmt.Errorf("adding favorite %s: %w", id, err)
		}
	}

	f.mu.Lock()
	f.ids[id] = struct{}{}
	f.mu.Unlock()
	return nil
}

func (f *favoritesService) Remove(ctx context.Context, id string) error {
	token, err := f.token(ctx)
	if err != nil {
		return err
	}

	if err := f.provider.Delete(ctx, favoritesPath+"/"+url.PathEscape(id), token); err != nil {
		return fmt.Errorf("removing favorite %s: %w", id, err)
	}

	f.mu.Lock()
	delete(f.ids, id)
	f.mu.Unlock()
	return nil
}

func (f *favoritesService) ClearCache() {
	f.mu.Lock()
	f.ids = map[string]struct{}{}
	f.mu.Unlock()
}
