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


package core

import "fmt"

// ValidateCatalogEntry validates a CatalogEntry according to domain rules.
//
// Validation rules:
//   - ProjectType and Location must not be empty
//   - Budget must be a known tier
//   - PricePerDay must be positive
//   - Complexity must be at least 1
//
// NOT validated:
//   - Camera/Lens/Lights (a bundle may leave a slot empty)
//   - ID (0 is valid before content IDs are assigned)
func ValidateCatalogEntry(entry *CatalogEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidCatalogEntry)
	}

	if entry.ProjectType == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogEntry, ErrEmptyProjectType)
	}

	if BudgetOrdinal(entry.Budget) == 0 {
		return fmt.Errorf("%w: %w (got %q)", ErrInvalidCatalogEntry, ErrInvalidBudget, entry.Budget)
	}

	if entry.Location == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogEntry, ErrEmptyLocation)
	}

	if entry.PricePerDay <= 0 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidCatalogEntry, ErrInvalidPrice, entry.PricePerDay)
	}

	if entry.Complexity < 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidCatalogEntry, ErrInvalidComplexity, entry.Complexity)
	}

	return nil
}

// ValidateReservation validates a Reservation according to domain rules.
//
// Validation rules:
//   - MaterialId must not be zero
//   - Quantity must be at least 1
//   - EndDate must not precede StartDate
//
// NOT validated:
//   - MaterialName (historical exports carry only the material ID)
//   - Status (free-form, the planner treats unknown statuses as active)
//   - ID (0 is valid from database sequences)
func ValidateReservation(reservation *Reservation) error {
	if reservation == nil {
		return fmt.Errorf("%w: reservation is nil", ErrInvalidReservation)
	}

	if reservation.MaterialId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidReservation, ErrMissingMaterial)
	}

	if reservation.Quantity < 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidReservation, ErrInvalidQuantity, reservation.Quantity)
	}

	if reservation.EndDate.Before(reservation.StartDate) {
		return fmt.Errorf("%w: %w", ErrInvalidReservation, ErrInvalidDateRange)
	}

	return nil
}

// ValidateMaterial validates a Material according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Stock, Reserved and Pending must not be negative
func ValidateMaterial(material *Material) error {
	if material == nil {
		return fmt.Errorf("%w: material is nil", ErrInvalidMaterial)
	}

	if material.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMaterial, ErrEmptyMaterialName)
	}

	if material.Stock < 0 || material.Reserved < 0 || material.Pending < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMaterial, ErrNegativeStock)
	}

	return nil
}
