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

// Package storage defines the persistence contracts for the rental
// history that feeds demand planning.
//
// Two repositories cover the domain:
//
//   - ReservationRepository: the booking history
//   - MaterialRepository: the rentable inventory
//
// Public constructors in backend packages return these interfaces rather
// than concrete types, so the planning layer never couples to BadgerDB.
// Repositories must tolerate concurrent use, and every method takes a
// context.Context.
//
// Typical setup over the BadgerDB backend:
//
//	backend, err := badger.OpenBackend("/var/lib/gearmatch/history", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// Tests use badger.NewMemoryRepositories to get both repositories over
// an in-memory backend.
package storage
