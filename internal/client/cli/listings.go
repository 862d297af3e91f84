package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/models"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/services"
)

const listingsPageSize = 20

// Listings prints a page of published listings. An optional numeric
// argument selects the page (1-based).
func (a *App) Listings(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			printlnFn("Usage: listings [page]")
			return nil
		}
		page = n
	}

	resp, err := a.listings.Listings(ctx, listingsPageSize, (page-1)*listingsPageSize)
	if err != nil {
		a.log.Error(ctx, "listings", "error", err)
		printlnFn("Could not load listings. Please try again.")
		return err
	}

	if len(resp.Items) == 0 {
		printlnFn("No listings found.")
		return nil
	}
	for _, item := range resp.Items {
		printlnFn(formatSummary(item))
	}
	printlnFn(fmt.Sprintf("Page %d, %d total", page, resp.Total))
	return nil
}

func formatSummary(item models.ListingSummary) string {
	line := item.ID + "  " + item.Title
	if item.Price != "" {
		line += "  " + item.Price + " " + item.Currency
	}
	if item.City != "" {
		line += "  (" + item.City + ")"
	}
	return line
}

// Show prints the full detail of one listing.
func (a *App) Show(ctx context.Context, args []string) error {
	id := args[0]

	detail, err := a.listings.Listing(ctx, id)
	if err != nil {
		a.log.Error(ctx, "show listing", "id", id, "error", err)
		printlnFn("Could not load listing " + id + ".")
		return err
	}

	printlnFn(detail.Title)
	if detail.Price != "" {
		printlnFn("Price:     " + detail.Price + " " + detail.Currency)
	}
	if detail.City != "" {
		printlnFn("Location:  " + detail.City + ", " + detail.Region)
	}
	printlnFn("Status:    " + detail.Status)
	if detail.PublishedAt != "" {
		printlnFn("Published: " + detail.PublishedAt)
	}
	if detail.Description != "" {
		printlnFn("")
		printlnFn(detail.Description)
	}
	if a.favorites.IsFavorite(detail.ID) {
		printlnFn("")
		printlnFn("In your favorites.")
	}
	return nil
}

// Search runs a full-text search over published listings and records the
// query in the recent-searches list.
func (a *App) Search(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if err := a.recent.Add(ctx, query); err != nil {
		a.log.Warn(ctx, "recording recent search", "error", err)
	}

	resp, err := a.listings.Search(ctx, services.SearchParams{
		Query: query,
		Limit: listingsPageSize,
	})
	if err != nil {
		a.log.Error(ctx, "search", "error", err)
		printlnFn("Search failed. Please try again.")
		return err
	}

	if len(resp.Items) == 0 {
		printlnFn("No results.")
		return nil
	}
	for _, item := range resp.Items {
		line := item.ID + "  " + item.Title
		if item.Price != nil {
			line += fmt.Sprintf("  %.2f %s", *item.Price, item.Currency)
		}
		if item.City != "" {
			line += "  (" + item.City + ")"
		}
		printlnFn(line)
	}
	printlnFn(fmt.Sprintf("%d results", resp.Total))
	return nil
}

// Recent prints the recently used search queries, most recent first.
func (a *App) Recent(ctx context.Context) error {
	items, err := a.recent.All(ctx)
	if err != nil {
		a.log.Error(ctx, "recent searches", "error", err)
		printlnFn("Could not load recent searches.")
		return err
	}

	if len(items) == 0 {
		printlnFn("No recent searches.")
		return nil
	}
	for _, q := range items {
		printlnFn("  " + q)
	}
	return nil
}
