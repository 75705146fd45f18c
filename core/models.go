package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"math"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Budget tiers in ascending order of spend.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Canonical shoot locations. French values are canonical; English synonyms
// fold onto them during text normalization.
const (
	LocationIndoor  = "intérieur"
	LocationStudio  = "studio"
	LocationOutdoor = "extérieur"
)

// BudgetOrdinal maps a budget tier to its position on the low..high scale
// (low=1, medium=2, high=3). Unknown or empty budgets return 0.
func BudgetOrdinal(budget string) int {
	switch budget {
	case BudgetLow:
		return 1
	case BudgetMedium:
		return 2
	case BudgetHigh:
		return 3
	}
	return 0
}

// CatalogEntry is one rentable equipment bundle: a (project type, budget,
// location) combination with its camera, lens and lighting picks.
type CatalogEntry struct {
	Id          ID
	ProjectType string
	Budget      string
	Location    string
	Camera      string
	Lens        string
	Lights      string
	PricePerDay int // bundle rental price, per day
	Complexity  int // equipment sophistication, >= 1
	BudgetTier  int // BudgetOrdinal of Budget, cached at load time
}

// Tuple returns a string representation of the entry's identity fields.
// This is used for generating deterministic IDs.
func (e *CatalogEntry) Tuple() string {
	return "(" + e.ProjectType + "," + e.Budget + "," + e.Location + "," +
		e.Camera + "," + e.Lens + "," + e.Lights + ")"
}

// ComboKey returns the entry's (type, budget, location) combination key.
func (e *CatalogEntry) ComboKey() ComboKey {
	return ComboKey{ProjectType: e.ProjectType, Budget: e.Budget, Location: e.Location}
}

// ComboKey identifies a (project type, budget, location) combination.
// The selector uses it to keep result lists diverse.
type ComboKey struct {
	ProjectType string
	Budget      string
	Location    string
}

// SharedFields counts how many of the three attributes two keys have in common.
func (k ComboKey) SharedFields(other ComboKey) int {
	shared := 0
	if k.ProjectType == other.ProjectType {
		shared++
	}
	if k.Budget == other.Budget {
		shared++
	}
	if k.Location == other.Location {
		shared++
	}
	return shared
}

// QueryFeatures holds the structured attributes inferred from a single query.
// Absent attributes are empty strings. Features are request-local and never
// cached across queries.
type QueryFeatures struct {
	Budget      string `json:"budget,omitempty"`
	Location    string `json:"location,omitempty"`
	ProjectType string `json:"project_type,omitempty"`
	Specificity int    `json:"specificity_score"`
}

// Recommendation is one ranked equipment suggestion returned to the caller.
type Recommendation struct {
	ProjectType   string  `json:"type"`
	Budget        string  `json:"budget"`
	Location      string  `json:"location"`
	Camera        string  `json:"camera"`
	Lens          string  `json:"lens"`
	Lights        string  `json:"lights"`
	PricePerDay   int     `json:"price_per_day"`
	TotalPrice    int     `json:"total_price"`
	DurationDays  int     `json:"duration_days"`
	Score         float64 `json:"score"`
	Confidence    string  `json:"confidence"`
	Complexity    int     `json:"complexity_score"`
	QualityRating int     `json:"quality_rating"`
}

// Confidence labels, mapped from final scores by ConfidenceLabel.
const (
	ConfidenceExcellent = "excellent"
	ConfidenceVeryGood  = "very_good"
	ConfidenceGood      = "good"
	ConfidenceFair      = "fair"
	ConfidenceLow       = "low"
)

// ConfidenceLabel maps a final score in [0,1] to a confidence band.
func ConfidenceLabel(score float64) string {
	switch {
	case score > 0.8:
		return ConfidenceExcellent
	case score > 0.6:
		return ConfidenceVeryGood
	case score > 0.4:
		return ConfidenceGood
	case score > 0.2:
		return ConfidenceFair
	}
	return ConfidenceLow
}

// QualityRating maps a final score to a 1-5 star rating.
func QualityRating(score float64) int {
	rating := int(math.Round(score*5 + 1))
	if rating > 5 {
		return 5
	}
	return rating
}

// Reservation is one rental booking from the history store. Quantity is the
// demand signal the planner trains on.
type Reservation struct {
	Id           ID
	MaterialId   ID
	MaterialName string
	ClientId     ID
	Quantity     int // units reserved, clamped to 1-5 by the planner
	StartDate    time.Time
	EndDate      time.Time
	Status       string
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// Reservation statuses as stored.
const (
	StatusConfirmed = "confirmé"
	StatusPending   = "en_attente"
	StatusCancelled = "annulé"
)

// Material is a rentable inventory item with stock counts.
type Material struct {
	Id         ID
	Name       string
	Category   string
	Stock      int
	Reserved   int
	Pending    int
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Available returns the number of units neither reserved nor pending.
func (m *Material) Available() int {
	available := m.Stock - m.Reserved - m.Pending
	if available < 0 {
		return 0
	}
	return available
}

// Tuple returns a string representation of the material identity as
// "(Category,Name)". This is used for generating deterministic IDs.
func (m *Material) Tuple() string {
	return "(" + m.Category + "," + m.Name + ")"
}

// FormatPrice renders a per-day price for display, e.g. "450€/day".
func FormatPrice(pricePerDay int) string {
	return strconv.Itoa(pricePerDay) + "€/day"
}
