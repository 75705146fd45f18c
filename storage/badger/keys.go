package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cinerent/gearmatch/core"
)

// Key prefixes for different data types
const (
	reservationPrefix         = "resrec"
	reservationDatePrefix     = "resrecd"
	reservationMaterialPrefix = "resrecm"
	reservationIDSeq          = "resrecseq"
	materialPrefix            = "matrec"
	materialNamePrefix        = "matname"
)

// makeReservationKey generates a key for a reservation by ID.
func makeReservationKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", reservationPrefix, id))
}

// makeReservationDateKey generates a composite key for the start-date index.
// Format: prefix:timestamp:id
func makeReservationDateKey(startDate time.Time, id core.ID) []byte {
	prefix := reservationDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(startDate.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialReservationDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialReservationDateKey(startDate time.Time) []byte {
	prefix := reservationDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(startDate.UnixMicro()))
	return buf
}

// makeReservationMaterialKey generates a composite key for the material index.
// Format: prefix:materialID:reservationID
func makeReservationMaterialKey(materialID, reservationID core.ID) []byte {
	prefix := reservationMaterialPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for materialID + 8 bytes for reservationID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(materialID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(reservationID))
	return buf
}

// makePartialReservationMaterialKey generates a partial key for per-material queries.
// Format: prefix:materialID
func makePartialReservationMaterialKey(materialID core.ID) []byte {
	prefix := reservationMaterialPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for materialID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(materialID))
	return buf
}

// makeMaterialKey generates a key for a material by ID.
func makeMaterialKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", materialPrefix, id))
}

// makeMaterialNameKey generates a key for material lookup by exact name.
// Format: prefix:name
func makeMaterialNameKey(name string) []byte {
	prefix := materialNamePrefix + ":"
	totalSize := len(prefix) + len(name)
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	copy(buf[offset:], []byte(name))
	return buf
}
