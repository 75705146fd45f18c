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

package planning

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cinerent/gearmatch/core"
)

// digitsPattern extracts the numeric part of identifiers like "MAT-12".
var digitsPattern = regexp.MustCompile(`\d+`)

// LoadReservationsCSV reads a reservation history export. Expected columns:
// reservation_id, materiel_id, client_id, date_debut, date_fin, demande,
// statut. Rows that cannot be parsed or fail validation are logged and
// skipped.
func LoadReservationsCSV(path string, logger *slog.Logger) ([]*core.Reservation, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "history-csv")

	f, err := os.Open(path)
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
	columns, err := columnIndex(header,
		"reservation_id", "materiel_id", "client_id", "date_debut", "date_fin", "demande", "statut")
	if err != nil {
		return nil, err
	}

	var reservations []*core.Reservation
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		startDate, startErr := time.Parse(dateLayout, strings.TrimSpace(row[columns["date_debut"]]))
		endDate, endErr := time.Parse(dateLayout, strings.TrimSpace(row[columns["date_fin"]]))
		if startErr != nil || endErr != nil {
			logger.Warn("skipping reservation with invalid dates", "line", line)
			continue
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(row[columns["demande"]]))
		if err != nil {
			logger.Warn("skipping reservation with invalid demand", "line", line, "err", err)
			continue
		}

		reservation := &core.Reservation{
			Id:         numericID(row[columns["reservation_id"]]),
			MaterialId: numericID(row[columns["materiel_id"]]),
			ClientId:   numericID(row[columns["client_id"]]),
			Quantity:   quantity,
			StartDate:  startDate,
			EndDate:    endDate,
			Status:     strings.TrimSpace(row[columns["statut"]]),
		}
		if err := core.ValidateReservation(reservation); err != nil {
			logger.Warn("skipping invalid reservation", "line", line, "err", err)
			continue
		}
		reservations = append(reservations, reservation)
	}

	logger.Info("reservation history loaded", "path", path, "reservations", len(reservations))
	return reservations, nil
}

// LoadMaterialsCSV reads an inventory export. Expected columns: materiel_id,
// materiel, quantite, quantite_reservee, quantite_en_attente. Rows that fail
// validation are logged and skipped.
func LoadMaterialsCSV(path string, logger *slog.Logger) ([]*core.Material, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "history-csv")

	f, err := os.Open(path)
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
	columns, err := columnIndex(header,
		"materiel_id", "materiel", "quantite", "quantite_reservee", "quantite_en_attente")
	if err != nil {
		return nil, err
	}

	var materials []*core.Material
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		name := strings.TrimSpace(row[columns["materiel"]])
		material := &core.Material{
			Id:       numericID(row[columns["materiel_id"]]),
			Name:     name,
			Category: InferCategory(name),
			Stock:    numericField(row[columns["quantite"]]),
			Reserved: numericField(row[columns["quantite_reservee"]]),
			Pending:  numericField(row[columns["quantite_en_attente"]]),
		}
		if err := core.ValidateMaterial(material); err != nil {
			logger.Warn("skipping invalid material", "line", line, "err", err)
			continue
		}
		materials = append(materials, material)
	}

	logger.Info("material inventory loaded", "path", path, "materials", len(materials))
	return materials, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return index, nil
}

// numericID parses an identifier, tolerating prefixed forms like "MAT-12".
// Unparseable identifiers map to 1, matching the historical exports.
func numericID(field string) core.ID {
	field = strings.TrimSpace(field)
	if v, err := strconv.ParseUint(field, 10, 64); err == nil {
		return core.ID(v)
	}
	if digits := digitsPattern.FindString(field); digits != "" {
		if v, err := strconv.ParseUint(digits, 10, 64); err == nil {
			return core.ID(v)
		}
	}
	return core.ID(1)
}

func numericField(field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return v
}
