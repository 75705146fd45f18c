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

package gearmatch

import (
	"context"
	"log/slog"

	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/planning"
	"github.com/cinerent/gearmatch/storage"
	"github.com/cinerent/gearmatch/storage/badger"
)

// HistoryDB aggregates the badger-backed rental history: the reservation and
// material repositories the demand planner trains on.
type HistoryDB struct {
	backend         *badger.Backend
	reservationRepo storage.ReservationRepository
	materialRepo    storage.MaterialRepository
	logger          *slog.Logger
}

// NewHistoryDB opens the rental history store at filePath.
func NewHistoryDB(filePath string) (*HistoryDB, error) {
	return openHistoryDB(filePath, false)
}

// NewMemoryHistoryDB opens an in-memory rental history store for tests.
func NewMemoryHistoryDB() (*HistoryDB, error) {
	return openHistoryDB("", true)
}

func openHistoryDB(filePath string, inMemory bool) (*HistoryDB, error) {
	backend, err := badger.OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	reservationRepo, err := badger.NewReservationRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	materialRepo, err := badger.NewMaterialRepository(backend)
	if err != nil {
		reservationRepo.Close()
		backend.Close()
		return nil, err
	}

	return &HistoryDB{
		backend:         backend,
		reservationRepo: reservationRepo,
		materialRepo:    materialRepo,
		logger:          slog.Default(),
	}, nil
}

// Close closes the repositories and the backend.
func (db *HistoryDB) Close() error {
	if err := db.materialRepo.Close(); err != nil {
		db.logger.Error("error closing material repository", "err", err)
		return err
	}
	if err := db.reservationRepo.Close(); err != nil {
		db.logger.Error("error closing reservation repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ReservationRepository returns the booking history repository.
func (db *HistoryDB) ReservationRepository() storage.ReservationRepository {
	return db.reservationRepo
}

// MaterialRepository returns the inventory repository.
func (db *HistoryDB) MaterialRepository() storage.MaterialRepository {
	return db.materialRepo
}

// Seed loads reservations and materials into the store, typically from the
// historical CSV exports.
func (db *HistoryDB) Seed(ctx context.Context, reservations []*core.Reservation, materials []*core.Material) error {
	if len(materials) > 0 {
		if _, err := db.materialRepo.AddMaterials(ctx, materials...); err != nil {
			return err
		}
	}
	if len(reservations) > 0 {
		if _, err := db.reservationRepo.AddReservations(ctx, reservations...); err != nil {
			return err
		}
	}
	db.logger.Info("history seeded", "reservations", len(reservations), "materials", len(materials))
	return nil
}

// NewForecaster trains a demand forecaster on the stored history.
// Returns planning.ErrInsufficientHistory when the store is too small.
func (db *HistoryDB) NewForecaster(ctx context.Context, opts ...planning.ForecasterOption) (*planning.Forecaster, error) {
	reservations, err := db.reservationRepo.GetAllReservations(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := db.materialRepo.GetAllMaterials(ctx)
	if err != nil {
		return nil, err
	}

	forecaster := planning.NewForecaster(opts...)
	if err := forecaster.Train(reservations, materials); err != nil {
		return nil, err
	}
	return forecaster, nil
}
