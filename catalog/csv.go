package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cinerent/gearmatch/core"
)

// CSVSource loads the catalog from two CSV files: the configurations table
// (one equipment bundle per row) and the price table mapping
// (equipment type, equipment name) to a per-day rental price.
//
// Configurations columns: type, budget, lieu, camera, objectif, lumieres,
// prix_estime. Price table columns: type, materiel, prix_location_par_jour.
type CSVSource struct {
	configPath string
	pricePath  string
	logger     *slog.Logger
}

var _ Source = (*CSVSource)(nil)

// CSVOption is a functional option for configuring a CSVSource.
type CSVOption func(*CSVSource)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) CSVOption {
	return func(s *CSVSource) {
		if logger != nil {
			s.logger = logger.With("component", "catalog-csv")
		}
	}
}

// NewCSVSource creates a catalog source reading the given CSV files.
func NewCSVSource(configPath, pricePath string, opts ...CSVOption) *CSVSource {
	s := &CSVSource{
		configPath: configPath,
		pricePath:  pricePath,
		logger:     slog.Default().With("component", "catalog-csv"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// priceKey identifies one equipment item in the price table.
type priceKey struct {
	equipmentType string
	name          string
}

// Load reads both files and returns the prepared catalog entries.
// Rows that fail validation are logged and skipped; an entirely invalid
// catalog returns ErrEmptyCatalog.
func (s *CSVSource) Load(ctx context.Context) ([]*core.CatalogEntry, error) {
	prices, err := s.loadPrices()
	if err != nil {
		return nil, fmt.Errorf("loading price table: %w", err)
	}

	entries, err := s.loadConfigs(ctx, prices)
	if err != nil {
		return nil, fmt.Errorf("loading configurations: %w", err)
	}

	s.logger.Info("catalog loaded", "entries", len(entries), "prices", len(prices))
	return entries, nil
}

func (s *CSVSource) loadPrices() (map[priceKey]int, error) {
	f, err := os.Open(s.pricePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	columns, err := columnIndex(header, "type", "materiel", "prix_location_par_jour")
	if err != nil {
		return nil, err
	}

	prices := make(map[priceKey]int)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		key := priceKey{
			equipmentType: cleanField(row[columns["type"]]),
			name:          strings.TrimSpace(row[columns["materiel"]]),
		}
		price, err := parsePrice(row[columns["prix_location_par_jour"]])
		if err != nil {
			s.logger.Warn("skipping price row", "materiel", key.name, "err", err)
			continue
		}
		prices[key] = price
	}

	return prices, nil
}

func (s *CSVSource) loadConfigs(ctx context.Context, prices map[priceKey]int) ([]*core.CatalogEntry, error) {
	f, err := os.Open(s.configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	columns, err := columnIndex(header, "type", "budget", "lieu", "camera", "objectif", "lumieres", "prix_estime")
	if err != nil {
		return nil, err
	}

	var entries []*core.CatalogEntry
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		entry := &core.CatalogEntry{
			ProjectType: cleanField(row[columns["type"]]),
			Budget:      cleanField(row[columns["budget"]]),
			Location:    cleanField(row[columns["lieu"]]),
			Camera:      strings.TrimSpace(row[columns["camera"]]),
			Lens:        strings.TrimSpace(row[columns["objectif"]]),
			Lights:      strings.TrimSpace(row[columns["lumieres"]]),
		}
		entry.PricePerDay = prices[priceKey{"camera", entry.Camera}] +
			prices[priceKey{"objectif", entry.Lens}] +
			prices[priceKey{"lumieres", entry.Lights}]

		estimated, err := parsePrice(row[columns["prix_estime"]])
		if err != nil {
			estimated = 0
		}

		if err := finalize(entry, estimated); err != nil {
			s.logger.Warn("skipping invalid configuration", "line", line, "err", err)
			continue
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return entries, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[cleanField(name)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return index, nil
}

func cleanField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parsePrice accepts integer or decimal notation and truncates to euros.
func parsePrice(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
