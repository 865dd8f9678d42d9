package abjad

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
	"time"

	"github.com/burjlab/ruhani/internal/numerology"
	"github.com/burjlab/ruhani/internal/spirit"
)

// goldenRatio is used for the sacred-ratio metric.
const goldenRatio = 1.618

// Input records what the caller asked for, kept on the Result for export.
type Input struct {
	Text   string `json:"text"`
	Method Method `json:"method"`
}

// Metrics holds the derived spiritual measurements for a computed total.
// All fields are pure functions of the total, the reduced value, and the
// normalized text length.
type Metrics struct {
	TextLength           int     `json:"text_length"`
	AverageLetterValue   float64 `json:"average_letter_value"`
	SpiritualIntensity   string  `json:"spiritual_intensity"`
	VibrationalFrequency int     `json:"vibrational_frequency"`
	ChakraAlignment      string  `json:"chakra_alignment"`
	SacredRatio          float64 `json:"sacred_ratio"`
	DivineConnection     string  `json:"divine_connection"`
}

// EnergySignature holds the numeric-pattern energy profile of a total.
type EnergySignature struct {
	PrimaryEnergy      string  `json:"primary_energy"`
	SecondaryEnergy    string  `json:"secondary_energy"`
	EnergyBalance      float64 `json:"energy_balance"`
	ManifestationPower int     `json:"manifestation_power"`
	HarmonicResonance  string  `json:"harmonic_resonance"`
}

// Breakdown is the typed detailed payload of an abjad analysis.
type Breakdown struct {
	OriginalText          string          `json:"original_text"`
	MethodUsed            Method          `json:"method_used"`
	TotalNumericalValue   int             `json:"total_numerical_value"`
	ReducedValue          int             `json:"reduced_value"`
	LetterBreakdown       []LetterValue   `json:"letter_breakdown"`
	SpiritualMetrics      Metrics         `json:"spiritual_metrics"`
	EnergySignature       EnergySignature `json:"energy_signature"`
	CompatibilityNumbers  []int           `json:"compatibility_numbers"`
	InterpretationDetails Interpretation  `json:"interpretation_details"`
	ChakraAlignment       string          `json:"chakra_alignment"`
}

// Kind implements spirit.Breakdown.
func (Breakdown) Kind() string { return "abjad" }

// Analyze performs the full abjad numerology analysis of text under the
// given method. Text failing Arabic validation yields an error wrapping
// spirit.ErrInvalidInput.
func Analyze(text string, method Method) (spirit.Result, error) {
	total, letters, err := ComputeTotal(text, method)
	if err != nil {
		return spirit.Result{}, err
	}
	reduced := numerology.Reduce(total)

	chakra := chakras[chakraIndex(reduced)]
	metrics := computeMetrics(text, total, chakra)
	energy := computeEnergySignature(total, reduced)
	compat := compatibility[reduced]
	interp := interpretations[reduced]

	breakdown := Breakdown{
		OriginalText:          text,
		MethodUsed:            method,
		TotalNumericalValue:   total,
		ReducedValue:          reduced,
		LetterBreakdown:       letters,
		SpiritualMetrics:      metrics,
		EnergySignature:       energy,
		CompatibilityNumbers:  compat,
		InterpretationDetails: interp,
		ChakraAlignment:       chakra,
	}

	return spirit.Result{
		Method:         fmt.Sprintf("حساب الجُمّل (%s)", method),
		Input:          Input{Text: text, Method: method},
		Value:          total,
		Reduced:        reduced,
		Interpretation: renderInterpretation(reduced, interp, metrics),
		Breakdown:      breakdown,
		Timestamp:      time.Now(),
	}, nil
}

// chakraIndex maps a reduced value 1–9 onto the seven chakras, wrapping
// 8 and 9 back to the start of the cycle.
func chakraIndex(reduced int) int {
	return ((reduced - 1) % 7) + 1
}

func computeMetrics(text string, total int, chakra string) Metrics {
	length := matchableLength(text)

	avg := 0.0
	if length > 0 {
		avg = round2(float64(total) / float64(length))
	}

	return Metrics{
		TextLength:           length,
		AverageLetterValue:   avg,
		SpiritualIntensity:   intensityTier(total),
		VibrationalFrequency: (total % 432) + 1,
		ChakraAlignment:      chakra,
		SacredRatio:          round2(float64(total) / goldenRatio),
		DivineConnection:     divineConnection(total),
	}
}

// matchableLength counts the non-space characters of the text as given,
// diacritics included, so voweled and bare spellings measure differently.
func matchableLength(text string) int {
	return len([]rune(strings.ReplaceAll(text, " ", "")))
}

// intensityTier bands the total at the 100/500/1000/2000 thresholds.
func intensityTier(total int) string {
	switch {
	case total >= 2000:
		return "كثافة روحانية عالية جداً - طاقة كونية قوية"
	case total >= 1000:
		return "كثافة روحانية عالية - اتصال روحي قوي"
	case total >= 500:
		return "كثافة روحانية متوسطة عالية - طاقة متوازنة"
	case total >= 100:
		return "كثافة روحانية متوسطة - طاقة معتدلة"
	default:
		return "كثافة روحانية منخفضة - طاقة هادئة"
	}
}

// divineConnection compares the total against the sacred-number list in
// declaration order: exact divisibility wins first, then a near miss within
// 10, then primality for totals above 100, then a generic label.
func divineConnection(total int) string {
	for _, sacred := range sacredNumbers {
		if total%sacred == 0 {
			return fmt.Sprintf("اتصال مقدس مباشر - مضاعف للرقم %d", sacred)
		}
		if abs(total-sacred) <= 10 {
			return fmt.Sprintf("اتصال مقدس قريب - قريب من الرقم %d", sacred)
		}
	}
	if total > 100 && numerology.IsPrime(total) {
		return "رقم أولي مقدس - طاقة نقية غير قابلة للتجزئة"
	}
	return "اتصال روحاني عام - ضمن الطيف الكوني"
}

func computeEnergySignature(total, reduced int) EnergySignature {
	return EnergySignature{
		PrimaryEnergy:      primaryEnergies[(reduced%4)+1],
		SecondaryEnergy:    secondaryEnergies[reduced%3],
		EnergyBalance:      round3(energyBalance(total)),
		ManifestationPower: (total % 10) + 1,
		HarmonicResonance:  harmonicResonance(total),
	}
}

// energyBalance is the fraction of 1-bits in the binary representation of
// the total. A zero total has a single zero bit, so the balance is 0.
func energyBalance(total int) float64 {
	if total == 0 {
		return 0
	}
	u := uint(total)
	return float64(bits.OnesCount(u)) / float64(bits.Len(u))
}

// harmonicResonance finds the harmonic frequency nearest to total mod 1000.
// The table is scanned in order; on a distance tie the earlier entry wins.
func harmonicResonance(total int) string {
	target := total % 1000
	best := harmonics[0]
	bestDist := abs(best.hz - target)
	for _, h := range harmonics[1:] {
		if d := abs(h.hz - target); d < bestDist {
			best, bestDist = h, d
		}
	}
	return fmt.Sprintf("%s (%d هرتز)", best.label, best.hz)
}

func renderInterpretation(reduced int, interp Interpretation, m Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "تحليل حساب الجُمّل المفصل:\n\n")
	fmt.Fprintf(&b, "الرقم المختزل: %d\n", reduced)
	fmt.Fprintf(&b, "المعنى الأساسي: %s\n\n", interp.Meaning)
	fmt.Fprintf(&b, "الصفات الشخصية: %s\n\n", strings.Join(interp.Traits, "، "))
	fmt.Fprintf(&b, "التفسير الروحاني: %s\n\n", interp.Spiritual)
	fmt.Fprintf(&b, "العنصر المرتبط: %s\n", interp.Element)
	fmt.Fprintf(&b, "الكوكب الحاكم: %s\n\n", interp.Planet)
	fmt.Fprintf(&b, "الكثافة الروحانية: %s\n", m.SpiritualIntensity)
	fmt.Fprintf(&b, "التردد الذبذبي: %d هرتز\n", m.VibrationalFrequency)
	fmt.Fprintf(&b, "محاذاة الشاكرا: %s\n\n", m.ChakraAlignment)
	fmt.Fprintf(&b, "الاتصال الإلهي: %s\n\n", m.DivineConnection)
	fmt.Fprintf(&b, "هذا الرقم يحمل طاقة خاصة تتصل بالسجلات الأكاشية وتفتح بوابات الفهم الروحي العميق.\n")
	fmt.Fprintf(&b, "كل حرف في اسمك له ذبذبة كونية تؤثر على مسار حياتك وشخصيتك الروحية.")
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
