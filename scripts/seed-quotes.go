package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/daybook/daybook/internal/id"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// seedQuote is the on-disk shape of a quote in the seed file.
type seedQuote struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	Type      string `json:"type"`
	Category  string `json:"category"`
	DayOfWeek *int   `json:"day_of_week"`
}

var defaultQuotes = []seedQuote{
	{Text: "The journey of a thousand miles begins with one step.", Author: "Lao Tzu", Type: "daily", Category: "motivation"},
	{Text: "Write what should not be forgotten.", Author: "Isabel Allende", Type: "daily", Category: "writing"},
	{Text: "How we spend our days is, of course, how we spend our lives.", Author: "Annie Dillard", Type: "daily", Category: "reflection"},
	{Text: "Keep a diary, and someday it'll keep you.", Author: "Mae West", Type: "daily", Category: "writing"},
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		file        = flag.String("file", "", "JSON file of quotes to seed (defaults to a built-in set)")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	quotes := defaultQuotes
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read seed file:", err)
			os.Exit(1)
		}
		quotes = nil
		if err := json.Unmarshal(data, &quotes); err != nil {
			fmt.Fprintln(os.Stderr, "parse seed file:", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	seeded := 0
	for _, q := range quotes {
		quoteType := model.QuoteType(q.Type)
		if quoteType == "" {
			quoteType = model.QuoteDaily
		}
		if !quoteType.IsValid() {
			fmt.Fprintf(os.Stderr, "invalid quote type %q for %q\n", q.Type, q.Text)
			os.Exit(1)
		}
		if q.DayOfWeek != nil && (*q.DayOfWeek < 0 || *q.DayOfWeek > 6) {
			fmt.Fprintf(os.Stderr, "day_of_week out of range for %q\n", q.Text)
			os.Exit(1)
		}

		quote := &model.Quote{
			ID:        id.New("qte"),
			Text:      q.Text,
			Author:    q.Author,
			Type:      quoteType,
			Category:  q.Category,
			DayOfWeek: q.DayOfWeek,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.CreateQuote(ctx, quote); err != nil {
			fmt.Fprintln(os.Stderr, "create quote:", err)
			os.Exit(1)
		}
		seeded++
	}

	fmt.Printf("seeded %d quotes\n", seeded)
}
