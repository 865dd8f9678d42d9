package reading

import (
	"fmt"
	"time"

	"github.com/burjlab/ruhani/internal/session"
	"github.com/burjlab/ruhani/internal/spirit"
	"github.com/burjlab/ruhani/internal/telemetry"
	"github.com/burjlab/ruhani/internal/tower"
)

// Runner executes reading requests against a session.
type Runner struct {
	Session *session.Session
	Emitter *telemetry.Emitter

	// DefaultMethod is used for abjad analyses when the reading file does
	// not set analysis.method.
	DefaultMethod string
}

// Run executes the request's analyses in fixed order (abjad, jafr, tower)
// and returns the results in that order. The first failing analysis aborts
// the run.
func (r *Runner) Run(req Request) ([]spirit.Result, error) {
	r.Emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindReadingStart,
		Source:    req.SourceFile,
	})

	var results []spirit.Result
	for _, kind := range req.orderedKinds() {
		res, err := r.runOne(req, kind)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %s: %w", req.SourceFile, kind, err)
		}
		results = append(results, res)
	}

	r.Emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindReadingDone,
		Source:    req.SourceFile,
		Data:      map[string]int{"results": len(results)},
	})
	return results, nil
}

func (r *Runner) runOne(req Request, kind string) (spirit.Result, error) {
	switch kind {
	case KindAbjad:
		method, err := req.Method(r.DefaultMethod)
		if err != nil {
			return spirit.Result{}, err
		}
		return r.Session.Abjad(req.Subject.Name, method)

	case KindJafr:
		birth, err := time.Parse("2006-01-02", req.Birth.Date)
		if err != nil {
			return spirit.Result{}, fmt.Errorf("%w: birth.date %q", ErrBadValue, req.Birth.Date)
		}
		return r.Session.Jafr(req.Subject.Name, req.Subject.MotherName, birth)

	case KindTower:
		birth, err := time.Parse("2006-01-02", req.Birth.Date)
		if err != nil {
			return spirit.Result{}, fmt.Errorf("%w: birth.date %q", ErrBadValue, req.Birth.Date)
		}
		tod, err := tower.ParseTimeOfDay(req.Birth.Time)
		if err != nil {
			return spirit.Result{}, err
		}
		return r.Session.Tower(birth, tod, req.Location.Latitude, req.Location.Longitude)

	default:
		return spirit.Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
