// Package session coordinates the three analysis engines over a shared
// result history. A Session runs analyses, keeps every result in an
// append-only history, emits telemetry for each calculation, and summarizes
// the accumulated results on demand.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/burjlab/ruhani/internal/abjad"
	"github.com/burjlab/ruhani/internal/jafr"
	"github.com/burjlab/ruhani/internal/spirit"
	"github.com/burjlab/ruhani/internal/telemetry"
	"github.com/burjlab/ruhani/internal/tower"
)

// ErrEmptyHistory is returned by Summary when no calculations have been
// performed yet.
var ErrEmptyHistory = errors.New("no calculations performed yet")

// Session owns the result history. It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	history []spirit.Result
	emitter *telemetry.Emitter
}

// New creates a Session. The emitter may be nil, in which case no telemetry
// is recorded.
func New(em *telemetry.Emitter) *Session {
	return &Session{emitter: em}
}

// Abjad runs a letter-value analysis and appends the result to the history.
func (s *Session) Abjad(text string, method abjad.Method) (spirit.Result, error) {
	res, err := abjad.Analyze(text, method)
	if err != nil {
		s.emitInvalid(string(method), err)
		return spirit.Result{}, err
	}
	s.append(res)
	s.emitCalc(telemetry.KindCalcAbjad, string(method), res)
	return res, nil
}

// Jafr runs a jafr analysis for the given name, mother's name, and birth
// date, and appends the result to the history.
func (s *Session) Jafr(name, motherName string, birthDate time.Time) (spirit.Result, error) {
	res, err := jafr.Analyze(name, motherName, birthDate)
	if err != nil {
		s.emitInvalid("jafr", err)
		return spirit.Result{}, err
	}
	s.append(res)
	s.emitCalc(telemetry.KindCalcJafr, "jafr", res)
	return res, nil
}

// Tower computes a chart for the given birth data and appends it to the
// history as a Result carrying the chart as its breakdown.
func (s *Session) Tower(birthDate time.Time, birthTime tower.TimeOfDay, latitude, longitude float64) (spirit.Result, error) {
	chart, err := tower.Analyze(birthDate, birthTime, latitude, longitude)
	if err != nil {
		s.emitInvalid("tower", err)
		return spirit.Result{}, err
	}
	res := spirit.Result{
		Method: tower.MethodLabel,
		Input: tower.Input{
			BirthDate: birthDate.Format("2006-01-02"),
			BirthTime: birthTime.String(),
			Latitude:  latitude,
			Longitude: longitude,
		},
		Value:          chart.SpiritualNumber,
		Reduced:        chart.SpiritualNumber,
		Interpretation: chart.RenderInterpretation(),
		Breakdown:      *chart,
		Timestamp:      time.Now(),
	}
	s.append(res)
	s.emitCalc(telemetry.KindCalcTower, "tower", res)
	return res, nil
}

// History returns a copy of the result history in calculation order.
func (s *Session) History() []spirit.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]spirit.Result, len(s.history))
	copy(out, s.history)
	return out
}

// Summary describes the accumulated results of a session.
type Summary struct {
	TotalCalculations int       `json:"total_calculations"`
	MethodsUsed       []string  `json:"methods_used"`
	AverageValue      float64   `json:"average_numerical_value"`
	MostCommonReduced int       `json:"most_common_reduced_value"`
	FirstCalculation  time.Time `json:"first_calculation"`
	LastCalculation   time.Time `json:"last_calculation"`
	Insights          string    `json:"spiritual_insights"`
}

// Summary computes the session summary. It returns ErrEmptyHistory when no
// calculations have been performed.
func (s *Session) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return Summary{}, ErrEmptyHistory
	}

	var sum int
	first, last := s.history[0].Timestamp, s.history[0].Timestamp
	seen := make(map[string]bool)
	var methods []string
	for _, r := range s.history {
		sum += r.Value
		if !seen[r.Method] {
			seen[r.Method] = true
			methods = append(methods, r.Method)
		}
		if r.Timestamp.Before(first) {
			first = r.Timestamp
		}
		if r.Timestamp.After(last) {
			last = r.Timestamp
		}
	}

	avg := float64(sum) / float64(len(s.history))
	mode := s.modalReduced()

	return Summary{
		TotalCalculations: len(s.history),
		MethodsUsed:       methods,
		AverageValue:      avg,
		MostCommonReduced: mode,
		FirstCalculation:  first,
		LastCalculation:   last,
		Insights:          renderInsights(len(s.history), mode, avg),
	}, nil
}

// modalReduced returns the most frequent reduced value. Ties break toward
// the smallest value. Caller holds the lock.
func (s *Session) modalReduced() int {
	counts := make(map[int]int)
	for _, r := range s.history {
		counts[r.Reduced]++
	}
	best, bestCount := 0, 0
	for v := 1; v <= 9; v++ {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// renderInsights needs at least three results to say anything substantive.
func renderInsights(n, mode int, avg float64) string {
	if n < 3 {
		return "يحتاج إلى المزيد من الحسابات لتوليد رؤى شاملة"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "الرقم المهيمن في حساباتك: %d\n", mode)
	fmt.Fprintf(&b, "متوسط القيم العددية: %.2f\n\n", avg)
	fmt.Fprintf(&b, "هذا يشير إلى أن شخصيتك الروحية تميل نحو طاقة الرقم %d.\n", mode)
	fmt.Fprintf(&b, "الأنماط العددية في حساباتك تكشف عن اتساق في طبيعتك الروحية.")
	return b.String()
}

func (s *Session) append(res spirit.Result) {
	s.mu.Lock()
	s.history = append(s.history, res)
	s.mu.Unlock()
}

func (s *Session) emitCalc(kind, method string, res spirit.Result) {
	s.emitter.Emit(telemetry.Event{
		Timestamp: res.Timestamp,
		Kind:      kind,
		Method:    method,
		Data:      map[string]int{"value": res.Value, "reduced": res.Reduced},
	})
}

func (s *Session) emitInvalid(method string, err error) {
	s.emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindInvalidInput,
		Method:    method,
		Data:      map[string]string{"error": err.Error()},
	})
}
