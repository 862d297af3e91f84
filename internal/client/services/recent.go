package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/secrets"
	"github.com/sportowyhub/sportowyhub-cli/internal/logging"
)

const (
	recentSearchesKey = "recent_searches"
	recentSearchesMax = 10
)

// RecentSearchesService keeps a most-recently-used list of search queries,
// persisted as a JSON array in the secret store so it survives restarts.
type RecentSearchesService interface {
	// All returns the stored queries, most recent first.
	All(ctx context.Context) ([]string, error)

	// Add moves query to the front of the list, dropping case-insensitive
	// duplicates and anything beyond the cap. Blank queries are ignored.
	Add(ctx context.Context, query string) error

	Clear(ctx context.Context) error
}

type recentSearchesService struct {
	store secrets.Store
	log   logging.Logger

	// mu serializes the read-modify-write in Add; the store itself only
	// guarantees single-key atomicity.
	mu sync.Mutex
}

func NewRecentSearchesService(store secrets.Store, log logging.Logger) RecentSearchesService {
	return &recentSearchesService{store: store, log: log.With("service", "recent-searches")}
}

func (r *recentSearchesService) load(ctx context.Context) ([]string, error) {
	raw, err := r.store.Get(ctx, recentSearchesKey)
	if err != nil {
		return nil, fmt.Errorf("loading recent searches: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt entry is not worth failing a search over.
		r.log.Warn(ctx, "discarding corrupt recent searches entry", "error", err)
		return nil, nil
	}
	return items, nil
}

func (r *recentSearchesService) All(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *recentSearchesService) Add(ctx context.Context, query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(items)+1)
	updated = append(updated, trimmed)
	for _, item := range items {
		if strings.EqualFold(item, trimmed) {
			continue
		}
		updated = append(updated, item)
	}
	if len(updated) > recentSearchesMax {
		updated = updated[:recentSearchesMax]
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("encoding recent searches: %w", err)
	}
	if err := r.store.Set(ctx, recentSearchesKey, string(data)); err != nil {
		return fmt.Errorf("saving recent searches: %w", err)
	}
	return nil
}

func (r *recentSearchesService) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, recentSearchesKey); err != nil {
		return fmt.Errorf("clearing recent searches: %w", err)
	}
	return nil
}
