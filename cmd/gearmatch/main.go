// Copyright 2026 Cinerent Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cinerent/gearmatch"
	"github.com/cinerent/gearmatch/ai"
	"github.com/cinerent/gearmatch/catalog"
	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/planning"
	"github.com/cinerent/gearmatch/recommend"
	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
)

const dateLayout = "2006-01-02"

func main() {
	app := &cli.App{
		Name:  "gearmatch",
		Usage: "Equipment recommendation and demand planning for film production rentals",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "recommend",
				Usage:     "Recommend equipment bundles for a project query",
				ArgsUsage: "<query>",
				Action:    recommendCommand,
				Flags: append(serviceFlags(),
					&cli.IntFlag{
						Name:    "days",
						Aliases: []string{"d"},
						Usage:   "Rental duration in days",
						Value:   1,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of recommendations",
						Value: recommend.DefaultTopK,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum quality score for a recommendation",
						Value: recommend.DefaultQualityThreshold,
					},
				),
			},
			{
				Name:   "stats",
				Usage:  "Print equipment catalog statistics",
				Action: statsCommand,
				Flags:  serviceFlags(),
			},
			{
				Name:   "info",
				Usage:  "Print the active pipeline's model information",
				Action: infoCommand,
				Flags:  serviceFlags(),
			},
			{
				Name:   "seed-history",
				Usage:  "Load reservation and inventory CSV exports into the history store",
				Action: seedHistoryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "Path to BadgerDB history directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "reservations",
						Usage: "Path to the reservations CSV export",
					},
					&cli.StringFlag{
						Name:  "materials",
						Usage: "Path to the inventory CSV export",
					},
				},
			},
			{
				Name:   "forecast",
				Usage:  "Forecast demand for one material over a period",
				Action: forecastCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Usage:    "Path to BadgerDB history directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:     "material",
						Aliases:  []string{"m"},
						Usage:    "Material ID to forecast",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "start",
						Usage:    "Forecast start date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "days",
						Aliases: []string{"d"},
						Usage:   "Number of days to forecast",
						Value:   7,
					},
				},
			},
			{
				Name:   "suggest",
				Usage:  "Print example queries the engine understands",
				Action: suggestCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// serviceFlags are shared by commands that build the recommendation service.
func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible API host for embeddings and lemmatization",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "lemmatizer-model",
			Usage: "Lemmatizer model name (empty disables lemmatization)",
		},
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "Path to the equipment configurations CSV (empty uses the built-in sample)",
		},
		&cli.StringFlag{
			Name:  "prices",
			Usage: "Path to the price table CSV",
		},
	}
}

// newService builds the recommendation service from command-line flags.
func newService(ctx context.Context, c *cli.Context, extra ...gearmatch.ServiceOption) (*gearmatch.Service, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithLemmatizerModel(c.String("lemmatizer-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []gearmatch.ServiceOption{gearmatch.WithAIConfig(aiConfig)}

	if configPath := c.String("catalog"); configPath != "" {
		pricePath := c.String("prices")
		if pricePath == "" {
			return nil, fmt.Errorf("--prices is required when --catalog is set")
		}
		opts = append(opts, gearmatch.WithCatalogSource(
			catalog.NewCSVSource(configPath, pricePath)))
	}

	opts = append(opts, extra...)
	return gearmatch.NewService(ctx, opts...)
}

func recommendCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	ctx := context.Background()
	service, err := newService(ctx, c, gearmatch.WithEngineOptions(
		recommend.WithTopK(c.Int("top-k")),
		recommend.WithQualityThreshold(c.Float64("threshold")),
	))
	if err != nil {
		return err
	}
	defer service.Close()

	if !service.ValidateQuery(query) {
		fmt.Fprintln(os.Stderr, "Note: query does not look like an equipment request. Try for example:")
		for _, suggestion := range service.Suggestions() {
			fmt.Fprintf(os.Stderr, "  %s\n", suggestion)
		}
	}

	result, err := service.Recommend(ctx, query, c.Int("days"))
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	return printJSON(result)
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()
	service, err := newService(ctx, c)
	if err != nil {
		return err
	}
	defer service.Close()

	return printJSON(service.EquipmentStats())
}

func infoCommand(c *cli.Context) error {
	ctx := context.Background()
	service, err := newService(ctx, c)
	if err != nil {
		return err
	}
	defer service.Close()

	return printJSON(service.ModelInfo())
}

func seedHistoryCommand(c *cli.Context) error {
	reservationsPath := c.String("reservations")
	materialsPath := c.String("materials")
	if reservationsPath == "" && materialsPath == "" {
		return fmt.Errorf("at least one of --reservations and --materials is required")
	}

	var (
		reservations []*core.Reservation
		materials    []*core.Material
		err          error
	)
	if reservationsPath != "" {
		reservations, err = planning.LoadReservationsCSV(reservationsPath, slog.Default())
		if err != nil {
			return fmt.Errorf("loading reservations: %w", err)
		}
	}
	if materialsPath != "" {
		materials, err = planning.LoadMaterialsCSV(materialsPath, slog.Default())
		if err != nil {
			return fmt.Errorf("loading materials: %w", err)
		}
	}

	db, err := gearmatch.NewHistoryDB(c.String("db"))
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer db.Close()

	if err := db.Seed(context.Background(), reservations, materials); err != nil {
		return fmt.Errorf("seeding history: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d reservations and %d materials\n",
		len(reservations), len(materials))
	return nil
}

func forecastCommand(c *cli.Context) error {
	start, days, err := forecastPeriod(c.String("start"), c.Int("days"))
	if err != nil {
		return err
	}

	db, err := gearmatch.NewHistoryDB(c.String("db"))
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	forecaster, err := db.NewForecaster(ctx)
	if err != nil {
		return fmt.Errorf("training forecaster: %w", err)
	}

	end := start.AddDate(0, 0, days-1)
	forecast, err := forecaster.Forecast(core.ID(c.Uint64("material")), start, end)
	if err != nil {
		return fmt.Errorf("forecast failed: %w", err)
	}

	return printJSON(forecast)
}

func suggestCommand(c *cli.Context) error {
	for _, suggestion := range recommend.Suggestions() {
		fmt.Println(suggestion)
	}
	return nil
}

// forecastPeriod validates the --start and --days flags.
func forecastPeriod(startStr string, days int) (time.Time, int, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", startStr)
	}
	if days < 1 {
		return time.Time{}, 0, fmt.Errorf("days must be at least 1")
	}
	return start, days, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
