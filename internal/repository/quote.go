package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook/daybook/internal/model"
)

// Common errors for quote repository operations.
var (
	ErrQuoteNotFound = errors.New("quote not found")
)

// CreateQuote inserts a new quote. Quotes are global records with no owner.
func (r *Repository) CreateQuote(ctx context.Context, quote *model.Quote) error {
	query := `
		INSERT INTO quotes (id, text, author, type, category, day_of_week, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		quote.ID,
		quote.Text,
		quote.Author,
		quote.Type,
		quote.Category,
		quote.DayOfWeek,
		quote.IsActive,
		quote.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}

	return nil
}

// GetDailyQuote selects the quote for a weekday (0=Sunday..6=Saturday):
// the newest active quote pinned to that day, else the newest active quote
// with no day restriction. Returns ErrQuoteNotFound when neither exists;
// the service layer substitutes the fallback literal.
func (r *Repository) GetDailyQuote(ctx context.Context, weekday int) (*model.Quote, error) {
	query := `
		SELECT id, text, author, type, category, day_of_week, is_active, created_at
		FROM quotes
		WHERE is_active AND (day_of_week = $1 OR day_of_week IS NULL)
		ORDER BY day_of_week NULLS LAST, created_at DESC
		LIMIT 1
	`

	quote, err := scanQuote(r.pool.QueryRow(ctx, query, weekday))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get daily quote: %w", err)
	}

	return quote, nil
}

// scanQuote scans a single row into a Quote model.
func scanQuote(row pgx.Row) (*model.Quote, error) {
	var quote model.Quote
	err := row.Scan(
		&quote.ID,
		&quote.Text,
		&quote.Author,
		&quote.Type,
		&quote.Category,
		&quote.DayOfWeek,
		&quote.IsActive,
		&quote.CreatedAt,
	)
	return &quote, err
}
