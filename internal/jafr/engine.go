// Package jafr implements the jafr divination analysis: it combines the
// Kabir letter values of a person's name and mother's name with numbers
// derived from the birth date, then matches the combined value against the
// traditional reference sequences and interpretation tables.
package jafr

import (
	"fmt"
	"strings"
	"time"

	"github.com/burjlab/ruhani/internal/abjad"
	"github.com/burjlab/ruhani/internal/arabic"
	"github.com/burjlab/ruhani/internal/numerology"
	"github.com/burjlab/ruhani/internal/spirit"
)

// MethodLabel is the method string carried on every jafr Result.
const MethodLabel = "تحليل الجفر الشريف"

// Analyze performs the full jafr analysis. Both names must pass Arabic
// validation; any calendar date is accepted (no plausibility cutoff).
func Analyze(name, motherName string, birthDate time.Time) (spirit.Result, error) {
	if !arabic.Validate(name) || !arabic.Validate(motherName) {
		return spirit.Result{}, fmt.Errorf("%w: names must contain only Arabic characters", spirit.ErrInvalidInput)
	}

	nameValue, nameLetters, err := abjad.ComputeTotal(name, abjad.MethodKabir)
	if err != nil {
		return spirit.Result{}, err
	}
	motherValue, motherLetters, err := abjad.ComputeTotal(motherName, abjad.MethodKabir)
	if err != nil {
		return spirit.Result{}, err
	}

	dates := dateValues(birthDate)
	combined := combineValues(nameValue, motherValue, dates)

	patterns := computePatterns(combined)
	indicators := computeIndicators(nameValue, motherValue, dates, combined)

	isoDate := birthDate.Format("2006-01-02")
	breakdown := Breakdown{
		Name:                name,
		MotherName:          motherName,
		BirthDate:           isoDate,
		NameValue:           nameValue,
		MotherValue:         motherValue,
		DateValues:          dates,
		CombinedValue:       combined,
		NameBreakdown:       nameLetters,
		MotherBreakdown:     motherLetters,
		Patterns:            patterns,
		Indicators:          indicators,
		TraditionalMeanings: traditionalMeanings(combined),
		DivineConnections:   divineConnections(combined),
	}

	return spirit.Result{
		Method:         MethodLabel,
		Input:          Input{Name: name, MotherName: motherName, BirthDate: isoDate},
		Value:          combined,
		Reduced:        numerology.Reduce(combined),
		Interpretation: renderInterpretation(indicators, patterns, combined),
		Breakdown:      breakdown,
		Timestamp:      time.Now(),
	}, nil
}

// dateValues derives every date number used by the jafr formula.
func dateValues(d time.Time) DateValues {
	_, week := d.ISOWeek()
	basic := d.Day() + int(d.Month()) + d.Year()
	advanced := d.YearDay() + week + isoWeekday(d)
	return DateValues{
		Day:            d.Day(),
		Month:          int(d.Month()),
		Year:           d.Year(),
		DayOfYear:      d.YearDay(),
		WeekNumber:     week,
		Weekday:        isoWeekday(d),
		BasicSum:       basic,
		AdvancedSum:    advanced,
		TotalDateValue: basic + advanced,
	}
}

// isoWeekday returns the ISO weekday: Monday=1 through Sunday=7.
func isoWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// combineValues applies the traditional jafr formula. The sacred multiplier
// checks run in strict priority order: 19 before 7 before 3. A base value
// divisible by none of them takes the advanced-formula correction instead.
func combineValues(nameValue, motherValue int, dates DateValues) int {
	base := nameValue + motherValue + dates.TotalDateValue
	switch {
	case base%19 == 0:
		return base * 19
	case base%7 == 0:
		return base * 7
	case base%3 == 0:
		return base * 3
	default:
		return base + nameValue*motherValue/100
	}
}

func renderInterpretation(ind Indicators, p Patterns, combined int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "تحليل الجفر الشريف الشامل:\n\n")
	fmt.Fprintf(&b, "القيمة المركبة: %d\n", combined)
	fmt.Fprintf(&b, "الجذر الرقمي: %d\n\n", p.DigitalRoot)
	fmt.Fprintf(&b, "المسار الروحي: %s\n", ind.DestinyPath)
	fmt.Fprintf(&b, "التحدي الحياتي: %s\n", ind.LifeChallenge)
	fmt.Fprintf(&b, "الهبة الروحانية: %s\n\n", ind.SpiritualGift)
	fmt.Fprintf(&b, "القوة الروحانية: %s\n", ind.SpiritualStrength.Level)
	fmt.Fprintf(&b, "نوع القوة: %s\n\n", ind.SpiritualStrength.Type)
	fmt.Fprintf(&b, "الطاقة الكوكبية: %s - %s\n", ind.PlanetaryEnergy.Planet, ind.PlanetaryEnergy.Energy)
	fmt.Fprintf(&b, "الموسم الروحاني: %s\n\n", ind.SpiritualSeason)
	fmt.Fprintf(&b, "الأنماط العددية المقدسة:\n")
	fmt.Fprintf(&b, "- النمط السباعي: %d (الكمال الروحي)\n", p.Modular.Mod7)
	fmt.Fprintf(&b, "- النمط التسعيني: %d (الأسماء الحسنى)\n", p.Modular.Mod99)
	fmt.Fprintf(&b, "- النمط القرآني: %d (الرقم القرآني)\n\n", p.Modular.Mod19)
	fmt.Fprintf(&b, "المحاذاة المقدسة:\n")
	for _, a := range ind.SacredAlignment {
		if a.Number == 0 {
			fmt.Fprintf(&b, "- %s\n", a.Grade)
			continue
		}
		fmt.Fprintf(&b, "- %d: %s\n", a.Number, a.Grade)
	}
	fmt.Fprintf(&b, "\nهذا التحليل يكشف عن الطبقات العميقة لمصيرك الروحي ومسارك في هذه الحياة.\n")
	fmt.Fprintf(&b, "كل رقم في الجفر الشريف له معنى خاص يتصل بالسجلات الأكاشية والحكمة الإلهية.\n")
	fmt.Fprintf(&b, "الأرقام ليست مجرد أعداد، بل مفاتيح لفهم أسرار الوجود والقدر المكتوب.\n\n")
	fmt.Fprintf(&b, "والله أعلم بالغيب، وهذا للاسترشاد والتأمل في عظمة الخلق.")
	return b.String()
}
