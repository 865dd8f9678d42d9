// Package tower computes the deterministic pseudo-astrological chart from
// birth data: house, zodiac sign, dominant planet, and ascendant degree, all
// from a closed-form arithmetic formula rather than an ephemeris.
package tower

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/burjlab/ruhani/internal/numerology"
	"github.com/burjlab/ruhani/internal/spirit"
)

// MethodLabel is the method string carried on every tower Result.
const MethodLabel = "تحليل البرج الروحاني"

// TimeOfDay is a clock time without a date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: birth time %q must be HH:MM or HH:MM:SS", spirit.ErrInvalidInput, s)
}

// String formats the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Input records the caller's request, kept on the Result for export.
type Input struct {
	BirthDate string  `json:"birth_date"`
	BirthTime string  `json:"birth_time"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinates holds the geographic inputs and the intermediate chart angles.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DayOfYear int     `json:"day_of_year"`
	HourAngle float64 `json:"hour_angle"`
}

// BirthInfo holds the formatted birth data strings.
type BirthInfo struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Weekday string `json:"weekday"`
}

// Chart is the full computed chart. It doubles as the detailed breakdown of
// a tower Result.
type Chart struct {
	SpiritualHouse     int         `json:"spiritual_house"`
	HouseInfo          House       `json:"house_info"`
	ZodiacSign         int         `json:"zodiac_sign"`
	ZodiacInfo         Zodiac      `json:"zodiac_info"`
	DominantPlanet     string      `json:"dominant_planet"`
	PlanetaryInfluence Planet      `json:"planetary_influence"`
	SpiritualNumber    int         `json:"spiritual_number"`
	CelestialStrength  string      `json:"celestial_strength"`
	DominantElement    string      `json:"dominant_element"`
	AscendantDegree    float64     `json:"ascendant_degree"`
	Coordinates        Coordinates `json:"coordinates"`
	BirthInfo          BirthInfo   `json:"birth_info"`
}

// Kind implements spirit.Breakdown.
func (Chart) Kind() string { return "tower" }

// Analyze computes the chart for the given birth data. Coordinates outside
// the valid latitude/longitude ranges yield an error wrapping
// spirit.ErrInvalidInput.
func Analyze(birthDate time.Time, birthTime TimeOfDay, latitude, longitude float64) (*Chart, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: invalid geographic coordinates (%v, %v)", spirit.ErrInvalidInput, latitude, longitude)
	}

	dayOfYear := birthDate.YearDay()
	hourDecimal := float64(birthTime.Hour) + float64(birthTime.Minute)/60 + float64(birthTime.Second)/3600
	hourAngle := hourDecimal * 15 // degrees

	ascendant := mod360(hourAngle + longitude/4 + float64(dayOfYear)*0.9856)
	house := int(ascendant/30)%12 + 1
	zodiac := int(math.Mod(float64(dayOfYear)+hourAngle/15, 12)) + 1

	weekday := mondayIndex(birthDate)
	planet := weekdayPlanets[weekday]

	return &Chart{
		SpiritualHouse:     house,
		HouseInfo:          houses[house],
		ZodiacSign:         zodiac,
		ZodiacInfo:         zodiacSigns[zodiac],
		DominantPlanet:     planet,
		PlanetaryInfluence: planets[planet],
		SpiritualNumber:    spiritualNumber(birthDate, birthTime),
		CelestialStrength:  celestialStrength(dayOfYear, hourAngle, latitude),
		DominantElement:    dominantElement(house, zodiac),
		AscendantDegree:    round2(ascendant),
		Coordinates: Coordinates{
			Latitude:  latitude,
			Longitude: longitude,
			DayOfYear: dayOfYear,
			HourAngle: round2(hourAngle),
		},
		BirthInfo: BirthInfo{
			Date:    birthDate.Format("2006-01-02"),
			Time:    birthTime.String(),
			Weekday: weekdayNames[weekday],
		},
	}, nil
}

// mondayIndex returns the weekday with Monday=0 through Sunday=6.
func mondayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// spiritualNumber reduces the sum of the date and time components.
func spiritualNumber(d time.Time, t TimeOfDay) int {
	return numerology.Reduce(d.Day() + int(d.Month()) + d.Year() + t.Hour + t.Minute)
}

// celestialStrength averages a seasonal, a diurnal, and a latitudinal factor,
// scales to 0–100, and bands into five labels.
func celestialStrength(dayOfYear int, hourAngle, latitude float64) string {
	seasonal := math.Abs(math.Sin(radians(float64(dayOfYear) * 360 / 365)))
	diurnal := math.Abs(math.Sin(radians(hourAngle)))
	latitudinal := math.Abs(math.Cos(radians(latitude)))

	strength := (seasonal + diurnal + latitudinal) / 3 * 100

	switch {
	case strength >= 80:
		return "قوة سماوية عالية جداً - تأثير كوكبي قوي"
	case strength >= 60:
		return "قوة سماوية عالية - تأثير كوكبي واضح"
	case strength >= 40:
		return "قوة سماوية متوسطة - تأثير كوكبي معتدل"
	case strength >= 20:
		return "قوة سماوية منخفضة - تأثير كوكبي ضعيف"
	default:
		return "قوة سماوية ضعيفة - تأثير كوكبي محدود"
	}
}

// dominantElement compares the house and zodiac elements: equal elements
// double, unequal elements mix.
func dominantElement(house, zodiac int) string {
	he := houses[house].Element
	ze := zodiacSigns[zodiac].Element
	if he == ze {
		return fmt.Sprintf("%s (مضاعف - تأثير قوي)", he)
	}
	return fmt.Sprintf("%s و %s (مختلط)", he, ze)
}

// RenderInterpretation formats the chart as the traditional reading text.
func (c *Chart) RenderInterpretation() string {
	var b strings.Builder
	fmt.Fprintf(&b, "تحليل البرج الروحاني الشامل:\n\n")
	fmt.Fprintf(&b, "البيت الفلكي: %d - %s\n", c.SpiritualHouse, c.HouseInfo.Name)
	fmt.Fprintf(&b, "المعنى: %s\n", c.HouseInfo.Meaning)
	fmt.Fprintf(&b, "العنصر: %s\n\n", c.HouseInfo.Element)
	fmt.Fprintf(&b, "البرج الطالع: %s\n", c.ZodiacInfo.Name)
	fmt.Fprintf(&b, "طبيعة البرج: %s\n", c.ZodiacInfo.Quality)
	fmt.Fprintf(&b, "الكوكب الحاكم: %s\n\n", c.ZodiacInfo.Ruler)
	fmt.Fprintf(&b, "الكوكب المهيمن: %s\n", c.DominantPlanet)
	fmt.Fprintf(&b, "التأثير الكوكبي: %s\n", c.PlanetaryInfluence.Influence)
	fmt.Fprintf(&b, "اليوم المقدس: %s\n", c.PlanetaryInfluence.Day)
	fmt.Fprintf(&b, "المعدن المرتبط: %s\n", c.PlanetaryInfluence.Metal)
	fmt.Fprintf(&b, "الحجر الكريم: %s\n\n", c.PlanetaryInfluence.Stone)
	fmt.Fprintf(&b, "الرقم الروحاني: %d\n", c.SpiritualNumber)
	fmt.Fprintf(&b, "القوة السماوية: %s\n", c.CelestialStrength)
	fmt.Fprintf(&b, "العنصر المهيمن: %s\n\n", c.DominantElement)
	fmt.Fprintf(&b, "درجة الطالع: %.2f°\n", c.AscendantDegree)
	fmt.Fprintf(&b, "يوم الولادة: %s", c.BirthInfo.Weekday)
	return b.String()
}

// mod360 wraps an angle into [0, 360).
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
