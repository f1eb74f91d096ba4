package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teamsync/internal/catalog"
	"teamsync/internal/db"
	"teamsync/internal/pricing"
	"teamsync/internal/site"
)

var (
	categoryFlag   string
	difficultyFlag string
	eventTypeFlag  string
	searchFlag     string
	billingFlag    string
	seedDatabase   string
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activities matching the given filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeCatalog, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCatalog()

		c := catalog.Criteria{Category: categoryFlag, Difficulty: difficultyFlag, Search: searchFlag}
		return writeJSON(cmd.OutOrStdout(), svc.Activities(c))
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List events matching the given filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeCatalog, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCatalog()

		c := catalog.Criteria{Category: eventTypeFlag, Search: searchFlag}
		return writeJSON(cmd.OutOrStdout(), svc.Events(c))
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print plan prices for a billing period",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := pricing.ParsePeriod(billingFlag)
		if err != nil {
			return err
		}
		content, err := site.Load()
		if err != nil {
			return err
		}
		return writeQuotes(cmd.OutOrStdout(), pricing.QuotePlans(content.Plans, period))
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the built-in catalog into MongoDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := catalog.EmbeddedDocument()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		database, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Disconnect(ctx, database); err != nil {
				logger.Warn("mongo disconnect", zap.Error(err))
			}
		}()

		if err := catalog.NewMongoSource(database).Seed(ctx, doc); err != nil {
			return err
		}
		logger.Info("catalog seeded",
			zap.String("database", cfg.Mongo.Database),
			zap.Int("activities", len(doc.Activities)),
			zap.Int("events", len(doc.Events)),
		)
		return nil
	},
}

func init() {
	activitiesCmd.Flags().StringVar(&categoryFlag, "category", catalog.All, "Virtual, Outdoor, Indoor or All")
	activitiesCmd.Flags().StringVar(&difficultyFlag, "difficulty", catalog.All, "Easy, Moderate, Challenging or All")
	activitiesCmd.Flags().StringVarP(&searchFlag, "query", "q", "", "Case-insensitive search text")

	eventsCmd.Flags().StringVar(&eventTypeFlag, "type", catalog.All, "Virtual, In-Person, Outdoor or All")
	eventsCmd.Flags().StringVarP(&searchFlag, "query", "q", "", "Case-insensitive search text")

	quoteCmd.Flags().StringVarP(&billingFlag, "billing", "b", pricing.DefaultPeriod.String(), "monthly or annual")

	seedCmd.Flags().StringVar(&seedDatabase, "database", "", "Target database (defaults to mongo.database)")
	seedCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if seedDatabase != "" {
			cfg.Mongo.Database = seedDatabase
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeQuotes(w io.Writer, quotes []pricing.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAN\tPERIOD\tPER MONTH\tSAVES")
	for _, q := range quotes {
		saves := "-"
		if q.ShowSavings {
			saves = q.SavingsText + "/yr"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", q.Plan, q.Period, q.Display, saves)
	}
	return tw.Flush()
}
