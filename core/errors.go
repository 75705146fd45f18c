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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCatalogEntry indicates a CatalogEntry failed validation.
	ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

	// ErrInvalidReservation indicates a Reservation failed validation.
	ErrInvalidReservation = errors.New("invalid reservation")

	// ErrInvalidMaterial indicates a Material failed validation.
	ErrInvalidMaterial = errors.New("invalid material")

	// ErrEmptyProjectType indicates the ProjectType field is empty.
	ErrEmptyProjectType = errors.New("project type cannot be empty")

	// ErrInvalidBudget indicates the Budget field is not a known tier.
	ErrInvalidBudget = errors.New("budget must be low, medium or high")

	// ErrEmptyLocation indicates the Location field is empty.
	ErrEmptyLocation = errors.New("location cannot be empty")

	// ErrInvalidPrice indicates a non-positive per-day price.
	ErrInvalidPrice = errors.New("price per day must be positive")

	// ErrInvalidComplexity indicates a complexity score below 1.
	ErrInvalidComplexity = errors.New("complexity must be at least 1")

	// ErrEmptyMaterialName indicates the material Name field is empty.
	ErrEmptyMaterialName = errors.New("material name cannot be empty")

	// ErrMissingMaterial indicates a reservation without a material reference.
	ErrMissingMaterial = errors.New("reservation must reference a material")

	// ErrInvalidQuantity indicates a reservation quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrInvalidDateRange indicates an end date before its start date.
	ErrInvalidDateRange = errors.New("end date cannot precede start date")

	// ErrNegativeStock indicates a negative stock count.
	ErrNegativeStock = errors.New("stock counts cannot be negative")
)
