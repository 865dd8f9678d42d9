package jafr

import "github.com/burjlab/ruhani/internal/abjad"

// Input records the caller's request, kept on the Result for export.
type Input struct {
	Name       string `json:"name"`
	MotherName string `json:"mother_name"`
	BirthDate  string `json:"birth_date"`
}

// DateValues holds every number derived from the birth date.
type DateValues struct {
	Day            int `json:"day"`
	Month          int `json:"month"`
	Year           int `json:"year"`
	DayOfYear      int `json:"day_of_year"`
	WeekNumber     int `json:"week_number"`
	Weekday        int `json:"weekday"` // ISO: Monday=1 .. Sunday=7
	BasicSum       int `json:"basic_sum"`
	AdvancedSum    int `json:"advanced_sum"`
	TotalDateValue int `json:"total_date_value"`
}

// SequenceMatch reports the nearest element of one reference sequence to the
// combined value (mod 10000).
type SequenceMatch struct {
	Sequence     string `json:"sequence"`
	ClosestMatch int    `json:"closest_match"`
	Distance     int    `json:"distance"`
	Significance string `json:"significance"`
}

// ModularPatterns holds the combined value reduced by each traditional modulus.
type ModularPatterns struct {
	Mod7   int `json:"mod_7"`
	Mod12  int `json:"mod_12"`
	Mod19  int `json:"mod_19"`
	Mod28  int `json:"mod_28"`
	Mod99  int `json:"mod_99"`
	Mod786 int `json:"mod_786"`
}

// GeometricPatterns holds the figurate-number membership tests.
type GeometricPatterns struct {
	TriangularNumber  bool   `json:"triangular_number"`
	SquareNumber      bool   `json:"square_number"`
	PentagonalNumber  bool   `json:"pentagonal_number"`
	FibonacciRelation string `json:"fibonacci_relation"`
}

// Patterns aggregates every numeric pattern derived from the combined value.
type Patterns struct {
	Sequences   []SequenceMatch   `json:"sequences"`
	DigitalRoot int               `json:"digital_root"`
	Modular     ModularPatterns   `json:"modular_patterns"`
	Geometric   GeometricPatterns `json:"geometric_patterns"`
}

// Strength describes the banded spiritual strength of the combined value.
type Strength struct {
	Level          string  `json:"level"`
	Type           string  `json:"type"`
	NumericalValue int     `json:"numerical_value"`
	Percentage     float64 `json:"percentage"`
}

// Alignment is one sacred-number alignment band. All matching numbers are
// reported, not just the closest.
type Alignment struct {
	Number int    `json:"number"`
	Grade  string `json:"grade"`
}

// Indicators holds the traditional spiritual indicators.
type Indicators struct {
	DestinyPath       string       `json:"destiny_path"`
	LifeChallenge     string       `json:"life_challenge"`
	SpiritualGift     string       `json:"spiritual_gift"`
	SpiritualStrength Strength     `json:"spiritual_strength"`
	SacredAlignment   []Alignment  `json:"sacred_alignment"`
	PlanetaryEnergy   PlanetaryDay `json:"planetary_energy"`
	SpiritualSeason   string       `json:"spiritual_season"`
}

// TraditionalMeanings carries the classical associations of the combined value.
type TraditionalMeanings struct {
	NumericalSignificance string            `json:"numerical_significance"`
	ElementalAssociation  ElementInfo       `json:"elemental_association"`
	TemporalInfluence     TemporalInfluence `json:"temporal_influence"`
	SpiritualLevel        SpiritualLevel    `json:"spiritual_level"`
	CosmicConnection      string            `json:"cosmic_connection"`
}

// Connection is one divine-name or quranic-number connection.
type Connection struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// Breakdown is the typed detailed payload of a jafr analysis.
type Breakdown struct {
	Name                string              `json:"name"`
	MotherName          string              `json:"mother_name"`
	BirthDate           string              `json:"birth_date"`
	NameValue           int                 `json:"name_value"`
	MotherValue         int                 `json:"mother_value"`
	DateValues          DateValues          `json:"date_values"`
	CombinedValue       int                 `json:"combined_value"`
	NameBreakdown       []abjad.LetterValue `json:"name_breakdown"`
	MotherBreakdown     []abjad.LetterValue `json:"mother_breakdown"`
	Patterns            Patterns            `json:"jafr_patterns"`
	Indicators          Indicators          `json:"spiritual_indicators"`
	TraditionalMeanings TraditionalMeanings `json:"traditional_meanings"`
	DivineConnections   []Connection        `json:"divine_connections"`
}

// Kind implements spirit.Breakdown.
func (Breakdown) Kind() string { return "jafr" }
