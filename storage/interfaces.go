package storage

import (
	"context"
	"time"

	"github.com/cinerent/gearmatch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ReservationRepository provides operations for managing the booking history.
type ReservationRepository interface {
	Repository
	// AddReservations adds one or more reservations to storage.
	// Reservations with ID=0 get new IDs from a sequence; nonzero IDs
	// (typically carried over from historical exports) are kept.
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns the reservations with generated IDs and timestamps populated.
	AddReservations(ctx context.Context, reservations ...*core.Reservation) ([]*core.Reservation, error)

	// UpdateReservations updates existing reservations.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any reservation doesn't exist.
	UpdateReservations(ctx context.Context, reservations ...*core.Reservation) ([]*core.Reservation, error)

	// DeleteReservations removes reservations by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any reservation doesn't exist.
	DeleteReservations(ctx context.Context, ids ...core.ID) error

	// GetReservation retrieves a single reservation by ID.
	// Returns ErrNotFound if the reservation doesn't exist.
	GetReservation(ctx context.Context, id core.ID) (*core.Reservation, error)

	// GetReservations retrieves multiple reservations by their IDs.
	// Returns only the reservations that exist (no error for missing ones).
	GetReservations(ctx context.Context, ids ...core.ID) ([]*core.Reservation, error)

	// GetReservationsByDateRange retrieves reservations within a time range.
	// Returns reservations where start <= StartDate < end, ordered by start date.
	GetReservationsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Reservation, error)

	// GetReservationsByMaterial retrieves all reservations for one material.
	GetReservationsByMaterial(ctx context.Context, materialID core.ID) ([]*core.Reservation, error)

	// GetAllReservations retrieves the full booking history ordered by start date.
	GetAllReservations(ctx context.Context) ([]*core.Reservation, error)
}

// MaterialRepository provides operations for managing the rentable inventory.
type MaterialRepository interface {
	Repository
	// AddMaterials adds one or more materials to storage.
	// Materials with ID=0 get content-based IDs (IDFromContent of the
	// material tuple); nonzero IDs from inventory exports are kept.
	// Sets InsertedAt and UpdatedAt timestamps.
	AddMaterials(ctx context.Context, materials ...*core.Material) ([]*core.Material, error)

	// UpdateMaterials updates existing materials.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any material doesn't exist.
	UpdateMaterials(ctx context.Context, materials ...*core.Material) ([]*core.Material, error)

	// GetMaterial retrieves a single material by ID.
	// Returns ErrNotFound if the material doesn't exist.
	GetMaterial(ctx context.Context, id core.ID) (*core.Material, error)

	// FindMaterialByName finds a material by its exact name.
	// Returns ErrNotFound if no matching material exists.
	FindMaterialByName(ctx context.Context, name string) (*core.Material, error)

	// GetAllMaterials retrieves the full inventory.
	GetAllMaterials(ctx context.Context) ([]*core.Material, error)
}
