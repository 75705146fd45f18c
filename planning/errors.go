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

import "errors"

var (
	// ErrInsufficientHistory indicates there are too few reservations to fit
	// a demand profile.
	ErrInsufficientHistory = errors.New("insufficient reservation history")

	// ErrNotTrained indicates Forecast was called before a successful Train.
	ErrNotTrained = errors.New("forecaster is not trained")

	// ErrInvalidPeriod indicates the forecast period ends before it starts.
	ErrInvalidPeriod = errors.New("invalid forecast period")

	// ErrMissingColumn indicates a history CSV lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
)
