package planning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cinerent/gearmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReservationsCSV(t *testing.T) {
	path := writeFile(t, "reservations.csv",
		"reservation_id,materiel_id,client_id,date_debut,date_fin,demande,statut\n"+
			"1,7,101,2024-07-01,2024-07-03,3,confirmé\n"+
			"2,MAT-12,102,2024-07-02,2024-07-05,2,en_attente\n"+
			"3,7,103,not-a-date,2024-07-05,2,confirmé\n"+
			"4,7,104,2024-07-04,2024-07-06,abc,confirmé\n"+
			"5,7,105,2024-07-08,2024-07-06,2,confirmé\n"+
			"6,7,106,2024-07-04,2024-07-06,0,confirmé\n")

	reservations, err := LoadReservationsCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	first := reservations[0]
	assert.Equal(t, core.ID(1), first.Id)
	assert.Equal(t, core.ID(7), first.MaterialId)
	assert.Equal(t, core.ID(101), first.ClientId)
	assert.Equal(t, 3, first.Quantity)
	assert.Equal(t, "2024-07-01", first.StartDate.Format(dateLayout))
	assert.Equal(t, core.StatusConfirmed, first.Status)

	// Prefixed identifiers keep their numeric part.
	assert.Equal(t, core.ID(12), reservations[1].MaterialId)
}

func TestLoadReservationsCSVMissingColumn(t *testing.T) {
	path := writeFile(t, "reservations.csv",
		"reservation_id,materiel_id,date_debut,date_fin,demande,statut\n")

	_, err := LoadReservationsCSV(path, nil)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadReservationsCSVMissingFile(t *testing.T) {
	_, err := LoadReservationsCSV(filepath.Join(t.TempDir(), "nope.csv"), nil)
	assert.Error(t, err)
}

func TestLoadMaterialsCSV(t *testing.T) {
	path := writeFile(t, "materiel.csv",
		"materiel_id,materiel,quantite,quantite_reservee,quantite_en_attente\n"+
			"7,Camera Canon R6,12,3,1\n"+
			"8,Trépied Manfrotto,5,0,0\n"+
			"9,,4,0,0\n")

	materials, err := LoadMaterialsCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, materials, 2)

	camera := materials[0]
	assert.Equal(t, core.ID(7), camera.Id)
	assert.Equal(t, "Camera Canon R6", camera.Name)
	assert.Equal(t, "camera", camera.Category)
	assert.Equal(t, 12, camera.Stock)
	assert.Equal(t, 3, camera.Reserved)
	assert.Equal(t, 1, camera.Pending)
	assert.Equal(t, 8, camera.Available())

	assert.Equal(t, "support", materials[1].Category)
}

func TestNumericID(t *testing.T) {
	cases := []struct {
		in   string
		want core.ID
	}{
		{"42", 42},
		{" 42 ", 42},
		{"MAT-12", 12},
		{"abc", 1},
		{"", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numericID(tc.in), tc.in)
	}
}
