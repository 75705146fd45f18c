package badger

import (
	"context"
	"testing"
	"time"

	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/storage"
)

func TestReservationBasics(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		materialRepo.Close()
		reservationRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	// Test adding a reservation without an ID
	start := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	reservation := &core.Reservation{
		MaterialId: 7,
		ClientId:   101,
		Quantity:   3,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
		Status:     core.StatusConfirmed,
	}

	added, err := reservationRepo.AddReservations(ctx, reservation)
	if err != nil {
		t.Fatalf("Failed to add reservation: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 reservation, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	// Test retrieving the reservation
	retrieved, err := reservationRepo.GetReservation(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get reservation: %v", err)
	}

	if retrieved.Quantity != 3 {
		t.Fatalf("Expected quantity 3, got %d", retrieved.Quantity)
	}
	if retrieved.Status != core.StatusConfirmed {
		t.Fatalf("Expected status %q, got %q", core.StatusConfirmed, retrieved.Status)
	}
}

func TestReservationKeepsImportedID(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { materialRepo.Close(); reservationRepo.Close(); backend.Close() }()

	ctx := context.Background()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	reservation := &core.Reservation{
		Id:         42,
		MaterialId: 7,
		Quantity:   2,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 1),
		Status:     core.StatusPending,
	}

	if _, err := reservationRepo.AddReservations(ctx, reservation); err != nil {
		t.Fatalf("Failed to add reservation: %v", err)
	}

	retrieved, err := reservationRepo.GetReservation(ctx, 42)
	if err != nil {
		t.Fatalf("Failed to get reservation by imported ID: %v", err)
	}
	if retrieved.MaterialId != 7 {
		t.Fatalf("Expected material 7, got %d", retrieved.MaterialId)
	}
}

func TestReservationDateRange(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { materialRepo.Close(); reservationRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// Add reservations with different start dates
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	reservations := []*core.Reservation{
		{MaterialId: 7, Quantity: 1, StartDate: base, EndDate: base.AddDate(0, 0, 1), Status: core.StatusConfirmed},
		{MaterialId: 7, Quantity: 2, StartDate: base.AddDate(0, 0, 3), EndDate: base.AddDate(0, 0, 4), Status: core.StatusConfirmed},
		{MaterialId: 7, Quantity: 3, StartDate: base.AddDate(0, 0, 10), EndDate: base.AddDate(0, 0, 11), Status: core.StatusConfirmed},
	}

	_, err = reservationRepo.AddReservations(ctx, reservations...)
	if err != nil {
		t.Fatalf("Failed to add reservations: %v", err)
	}

	// Query for the first week only
	results, err := reservationRepo.GetReservationsByDateRange(ctx, base, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("Failed to get reservations by date range: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 reservations, got %d", len(results))
	}

	// Results come back in start-date order
	if !results[0].StartDate.Before(results[1].StartDate) {
		t.Fatal("Expected results ordered by start date")
	}
}

func TestReservationsByMaterial(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { materialRepo.Close(); reservationRepo.Close(); backend.Close() }()

	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reservations := []*core.Reservation{
		{MaterialId: 7, Quantity: 1, StartDate: base, EndDate: base, Status: core.StatusConfirmed},
		{MaterialId: 9, Quantity: 2, StartDate: base, EndDate: base, Status: core.StatusConfirmed},
		{MaterialId: 7, Quantity: 3, StartDate: base.AddDate(0, 0, 1), EndDate: base.AddDate(0, 0, 1), Status: core.StatusConfirmed},
	}

	_, err = reservationRepo.AddReservations(ctx, reservations...)
	if err != nil {
		t.Fatalf("Failed to add reservations: %v", err)
	}

	results, err := reservationRepo.GetReservationsByMaterial(ctx, 7)
	if err != nil {
		t.Fatalf("Failed to get reservations by material: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 reservations for material 7, got %d", len(results))
	}
	for _, reservation := range results {
		if reservation.MaterialId != 7 {
			t.Fatalf("Expected material 7, got %d", reservation.MaterialId)
		}
	}
}

func TestGetAllReservationsOrdered(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { materialRepo.Close(); reservationRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// Insert out of chronological order
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	reservations := []*core.Reservation{
		{MaterialId: 7, Quantity: 1, StartDate: base.AddDate(0, 0, 5), EndDate: base.AddDate(0, 0, 6), Status: core.StatusConfirmed},
		{MaterialId: 7, Quantity: 2, StartDate: base, EndDate: base.AddDate(0, 0, 1), Status: core.StatusConfirmed},
		{MaterialId: 7, Quantity: 3, StartDate: base.AddDate(0, 0, 2), EndDate: base.AddDate(0, 0, 3), Status: core.StatusConfirmed},
	}

	_, err = reservationRepo.AddReservations(ctx, reservations...)
	if err != nil {
		t.Fatalf("Failed to add reservations: %v", err)
	}

	results, err := reservationRepo.GetAllReservations(ctx)
	if err != nil {
		t.Fatalf("Failed to get all reservations: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 reservations, got %d", len(results))
	}
	for i := 0; i < len(results)-1; i++ {
		if results[i].StartDate.After(results[i+1].StartDate) {
			t.Fatal("Expected results ordered by start date")
		}
	}
}

func TestUpdateReservationMovesIndices(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { materialRepo.Close(); reservationRepo.Close(); backend.Close() }()

	ctx := context.Background()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	added, err := reservationRepo.AddReservations(ctx, &core.Reservation{
		MaterialId: 7, Quantity: 1, StartDate: start, EndDate: start, Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add reservation: %v", err)
	}

	// Move the booking to a different material and date
	updated := *added[0]
	updated.MaterialId = 9
	updated.StartDate = start.AddDate(0, 1, 0)
	updated.Status = core.StatusConfirmed

	if _, err := reservationRepo.UpdateReservations(ctx, &updated); err != nil {
		t.Fatalf("Failed to update reservation: %v", err)
	}

	// The old material index entry must be gone
	oldMaterial, err := reservationRepo.GetReservationsByMaterial(ctx, 7)
	if err != nil {
		t.Fatalf("Failed to get reservations by material: %v", err)
	}
	if len(oldMaterial) != 0 {
		t.Fatalf("Expected no reservations for old material, got %d", len(oldMaterial))
	}

	newMaterial, err := reservationRepo.GetReservationsByMaterial(ctx, 9)
	if err != nil {
		t.Fatalf("Failed to get reservations by material: %v", err)
	}
	if len(newMaterial) != 1 || newMaterial[0].Status != core.StatusConfirmed {
		t.Fatalf("Expected 1 confirmed reservation for new material, got %v", newMaterial)
	}
}

func TestDeleteReservation(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { materialRepo.Close(); reservationRepo.Close(); backend.Close() }()

	ctx := context.Background()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	added, err := reservationRepo.AddReservations(ctx, &core.Reservation{
		MaterialId: 7, Quantity: 1, StartDate: start, EndDate: start, Status: core.StatusCancelled,
	})
	if err != nil {
		t.Fatalf("Failed to add reservation: %v", err)
	}

	if err := reservationRepo.DeleteReservations(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete reservation: %v", err)
	}

	if _, err := reservationRepo.GetReservation(ctx, added[0].Id); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// Deleting again reports not found
	if err := reservationRepo.DeleteReservations(ctx, added[0].Id); err != storage.ErrNotFound {
		t.Fatalf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestGetReservationsSkipsMissing(t *testing.T) {
	reservationRepo, materialRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { materialRepo.Close(); reservationRepo.Close(); backend.Close() }()

	ctx := context.Background()

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	added, err := reservationRepo.AddReservations(ctx, &core.Reservation{
		MaterialId: 7, Quantity: 1, StartDate: start, EndDate: start, Status: core.StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("Failed to add reservation: %v", err)
	}

	results, err := reservationRepo.GetReservations(ctx, added[0].Id, core.ID(99999))
	if err != nil {
		t.Fatalf("Failed to get reservations: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 reservation, got %d", len(results))
	}
}
