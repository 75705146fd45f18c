package core

import (
	"errors"
	"testing"
	"time"
)

func validEntry() *CatalogEntry {
	return &CatalogEntry{
		ProjectType: "pub",
		Budget:      BudgetHigh,
		Location:    LocationOutdoor,
		Camera:      "Sony FX6",
		Lens:        "Sony 24-70mm f/2.8 GM",
		Lights:      "Aputure 600d",
		PricePerDay: 450,
		Complexity:  5,
		BudgetTier:  3,
	}
}

func TestValidateCatalogEntry(t *testing.T) {
	t.Run("valid entry passes", func(t *testing.T) {
		if err := ValidateCatalogEntry(validEntry()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("nil entry fails", func(t *testing.T) {
		err := ValidateCatalogEntry(nil)
		if !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Errorf("expected ErrInvalidCatalogEntry, got %v", err)
		}
	})

	cases := []struct {
		name     string
		mutate   func(*CatalogEntry)
		sentinel error
	}{
		{"empty project type", func(e *CatalogEntry) { e.ProjectType = "" }, ErrEmptyProjectType},
		{"unknown budget", func(e *CatalogEntry) { e.Budget = "énorme" }, ErrInvalidBudget},
		{"empty location", func(e *CatalogEntry) { e.Location = "" }, ErrEmptyLocation},
		{"zero price", func(e *CatalogEntry) { e.PricePerDay = 0 }, ErrInvalidPrice},
		{"negative price", func(e *CatalogEntry) { e.PricePerDay = -10 }, ErrInvalidPrice},
		{"zero complexity", func(e *CatalogEntry) { e.Complexity = 0 }, ErrInvalidComplexity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := validEntry()
			tc.mutate(entry)
			err := ValidateCatalogEntry(entry)
			if !errors.Is(err, ErrInvalidCatalogEntry) {
				t.Errorf("expected ErrInvalidCatalogEntry, got %v", err)
			}
			if !errors.Is(err, tc.sentinel) {
				t.Errorf("expected %v, got %v", tc.sentinel, err)
			}
		})
	}
}

func TestValidateReservation(t *testing.T) {
	valid := func() *Reservation {
		return &Reservation{
			MaterialId:   7,
			MaterialName: "Canon EOS R6",
			Quantity:     2,
			StartDate:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			Status:       StatusConfirmed,
		}
	}

	t.Run("valid reservation passes", func(t *testing.T) {
		if err := ValidateReservation(valid()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("single day rental is valid", func(t *testing.T) {
		r := valid()
		r.EndDate = r.StartDate
		if err := ValidateReservation(r); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("nil reservation fails", func(t *testing.T) {
		if err := ValidateReservation(nil); !errors.Is(err, ErrInvalidReservation) {
			t.Errorf("expected ErrInvalidReservation, got %v", err)
		}
	})

	t.Run("missing material fails", func(t *testing.T) {
		r := valid()
		r.MaterialId = 0
		if err := ValidateReservation(r); !errors.Is(err, ErrMissingMaterial) {
			t.Errorf("expected ErrMissingMaterial, got %v", err)
		}
	})

	t.Run("empty material name is allowed", func(t *testing.T) {
		r := valid()
		r.MaterialName = ""
		if err := ValidateReservation(r); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("zero quantity fails", func(t *testing.T) {
		r := valid()
		r.Quantity = 0
		if err := ValidateReservation(r); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("inverted date range fails", func(t *testing.T) {
		r := valid()
		r.StartDate, r.EndDate = r.EndDate, r.StartDate
		if err := ValidateReservation(r); !errors.Is(err, ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestValidateMaterial(t *testing.T) {
	t.Run("valid material passes", func(t *testing.T) {
		m := &Material{Name: "Canon EOS R6", Category: "camera", Stock: 5}
		if err := ValidateMaterial(m); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("nil material fails", func(t *testing.T) {
		if err := ValidateMaterial(nil); !errors.Is(err, ErrInvalidMaterial) {
			t.Errorf("expected ErrInvalidMaterial, got %v", err)
		}
	})

	t.Run("empty name fails", func(t *testing.T) {
		m := &Material{Stock: 5}
		if err := ValidateMaterial(m); !errors.Is(err, ErrEmptyMaterialName) {
			t.Errorf("expected ErrEmptyMaterialName, got %v", err)
		}
	})

	t.Run("negative stock fails", func(t *testing.T) {
		m := &Material{Name: "Canon EOS R6", Stock: -1}
		if err := ValidateMaterial(m); !errors.Is(err, ErrNegativeStock) {
			t.Errorf("expected ErrNegativeStock, got %v", err)
		}
	})
}
