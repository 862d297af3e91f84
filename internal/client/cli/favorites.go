package cli

import (
	"context"
	"fmt"
)

const favoritesPageSize = 20

// Favorites prints the first page of the user's favorite listings.
func (a *App) Favorites(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in to see your favorites.")
		return nil
	}

	resp, err := a.favorites.List(ctx, 1, favoritesPageSize)
	if err != nil {
		a.log.Error(ctx, "favorites", "error", err)
		printlnFn("Could not load favorites. Please try again.")
		return err
	}

	if len(resp.Items) == 0 {
		printlnFn("No favorites yet.")
		return nil
	}
	for _, item := range resp.Items {
		line := item.ID + "  " + item.Title
		if item.Price != "" {
			line += "  " + item.Price + " " + item.Currency
		}
		if item.Status != "published" {
			line += "  [" + item.Status + "]"
		}
		printlnFn(line)
	}
	printlnFn(fmt.Sprintf("%d total", resp.Total))
	return nil
}

// Fav adds a listing to favorites.
func (a *App) Fav(ctx context.Context, args []string) error {
	id := args[0]
	if err := a.favorites.Add(ctx, id); err != nil {
		a.log.Error(ctx, "add favorite", "id", id, "error", err)
		printlnFn("Could not add favorite " + id + ".")
		return err
	}
	printlnFn("Added to favorites.")
	return nil
}

// Unfav removes a listing from favorites.
func (a *App) Unfav(ctx context.Context, args []string) error {
	id := args[0]
	if err := a.favorites.Remove(ctx, id); err != nil {
		a.log.Error(ctx, "remove favorite", "id", id, "error", err)
		printlnFn("Could not remove favorite " + id + ".")
		return err
	}
	printlnFn("Removed from favorites.")
	return nil
}
