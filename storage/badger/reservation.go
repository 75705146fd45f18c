package badger

import (
	"context"
	"slices"
	"time"

	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/storage"
	"github.com/dgraph-io/badger/v4"
)

// ReservationRepository implements storage.ReservationRepository for BadgerDB.
type ReservationRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ReservationRepository = (*ReservationRepository)(nil)

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(backend *Backend) (*ReservationRepository, error) {
	idSeq, err := backend.GetSequence(reservationIDSeq)
	if err != nil {
		return nil, err
	}

	return &ReservationRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ReservationRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ReservationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddReservations adds one or more reservations to storage.
func (r *ReservationRepository) AddReservations(ctx context.Context, reservations ...*core.Reservation) ([]*core.Reservation, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, reservation := range reservations {
			// Historical exports carry their own IDs; only generate for new bookings.
			if reservation.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				reservation.Id = core.ID(nextID)
			}

			reservation.InsertedAt = time.Now().UTC()
			reservation.UpdatedAt = reservation.InsertedAt

			// Store primary record
			key := makeReservationKey(reservation.Id)
			value := storage.MarshalReservation(reservation)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update start-date index
			dateKey := makeReservationDateKey(reservation.StartDate, reservation.Id)
			if err := tx.Set(dateKey, storage.MarshalID(reservation.Id)); err != nil {
				return err
			}

			// Update material index
			materialKey := makeReservationMaterialKey(reservation.MaterialId, reservation.Id)
			if err := tx.Set(materialKey, storage.MarshalID(reservation.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return reservations, err
}

// UpdateReservations updates existing reservations.
func (r *ReservationRepository) UpdateReservations(ctx context.Context, reservations ...*core.Reservation) ([]*core.Reservation, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, reservation := range reservations {
			key := makeReservationKey(reservation.Id)

			// Read old reservation to detect changes
			old, err := r.readReservation(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			reservation.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalReservation(reservation)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index if the start date changed
			if !old.StartDate.Equal(reservation.StartDate) {
				oldDateKey := makeReservationDateKey(old.StartDate, old.Id)
				if err := tx.Delete(oldDateKey); err != nil {
					return err
				}
				newDateKey := makeReservationDateKey(reservation.StartDate, reservation.Id)
				if err := tx.Set(newDateKey, storage.MarshalID(reservation.Id)); err != nil {
					return err
				}
			}

			// Update material index if the material changed
			if old.MaterialId != reservation.MaterialId {
				oldMaterialKey := makeReservationMaterialKey(old.MaterialId, old.Id)
				if err := tx.Delete(oldMaterialKey); err != nil {
					return err
				}
				newMaterialKey := makeReservationMaterialKey(reservation.MaterialId, reservation.Id)
				if err := tx.Set(newMaterialKey, storage.MarshalID(reservation.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return reservations, err
}

// DeleteReservations removes reservations by their IDs.
func (r *ReservationRepository) DeleteReservations(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeReservationKey(id)

			// Read reservation to get metadata for index cleanup
			reservation, err := r.readReservation(tx, key)
			if err != nil {
				return err
			}
			if reservation == nil {
				return storage.ErrNotFound
			}

			// Delete from date index
			dateKey := makeReservationDateKey(reservation.StartDate, reservation.Id)
			if err := tx.Delete(dateKey); err != nil {
				return err
			}

			// Delete from material index
			materialKey := makeReservationMaterialKey(reservation.MaterialId, reservation.Id)
			if err := tx.Delete(materialKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetReservation retrieves a single reservation by ID.
func (r *ReservationRepository) GetReservation(ctx context.Context, id core.ID) (*core.Reservation, error) {
	var result *core.Reservation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeReservationKey(id)
		var err error
		result, err = r.readReservation(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetReservations retrieves multiple reservations by their IDs.
func (r *ReservationRepository) GetReservations(ctx context.Context, ids ...core.ID) ([]*core.Reservation, error) {
	var result []*core.Reservation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeReservationKey(id)
			reservation, err := r.readReservation(tx, key)
			if err != nil {
				return err
			}
			if reservation != nil {
				result = append(result, reservation)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetReservationsByDateRange retrieves reservations whose start date falls
// within [start, end), ordered by start date.
func (r *ReservationRepository) GetReservationsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Reservation, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.Reservation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialReservationDateKey(start)
		endKey := makePartialReservationDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			// Read the ID from the index
			var reservationID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				reservationID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeReservationKey(reservationID)
			reservation, err := r.readReservation(tx, recordKey)
			if err != nil {
				return err
			}
			if reservation != nil {
				results = append(results, reservation)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetReservationsByMaterial retrieves all reservations for one material.
func (r *ReservationRepository) GetReservationsByMaterial(ctx context.Context, materialID core.ID) ([]*core.Reservation, error) {
	var results []*core.Reservation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialReservationMaterialKey(materialID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Check if key still has our materialID prefix
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the reservation ID from the value
			var reservationID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				reservationID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			recordKey := makeReservationKey(reservationID)
			reservation, err := r.readReservation(tx, recordKey)
			if err != nil {
				return err
			}
			if reservation != nil {
				results = append(results, reservation)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetAllReservations retrieves the full booking history ordered by start date.
func (r *ReservationRepository) GetAllReservations(ctx context.Context) ([]*core.Reservation, error) {
	var results []*core.Reservation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		// Walk the date index so results come back in start-date order.
		prefix := []byte(reservationDatePrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var reservationID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				reservationID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			recordKey := makeReservationKey(reservationID)
			reservation, err := r.readReservation(tx, recordKey)
			if err != nil {
				return err
			}
			if reservation != nil {
				results = append(results, reservation)
			}
		}
		return nil
	}, false)

	return results, err
}

// readReservation reads a reservation from the transaction.
func (r *ReservationRepository) readReservation(tx *badger.Txn, key []byte) (*core.Reservation, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var reservation *core.Reservation
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		reservation, unmarshalErr = storage.UnmarshalReservation(val)
		return unmarshalErr
	})
	return reservation, err
}
