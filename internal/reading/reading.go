// Package reading loads TOML reading-request files and runs the analyses
// they ask for against a session. A reading file names a subject, birth data,
// and the analysis kinds to perform:
//
//	[subject]
//	name = "محمد"
//	mother_name = "فاطمة"
//
//	[birth]
//	date = "1990-05-15"
//	time = "14:30"
//
//	[location]
//	latitude = 31.7683
//	longitude = 35.2137
//
//	[analysis]
//	kinds = ["abjad", "jafr", "tower"]
//	method = "kabir"
package reading

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/burjlab/ruhani/internal/abjad"
	"github.com/burjlab/ruhani/internal/tower"
)

// Analysis kinds a reading file may request.
const (
	KindAbjad = "abjad"
	KindJafr  = "jafr"
	KindTower = "tower"
)

// kindOrder is the fixed execution order, regardless of file order.
var kindOrder = []string{KindAbjad, KindJafr, KindTower}

// Subject identifies who the reading is for.
type Subject struct {
	Name       string `toml:"name"`
	MotherName string `toml:"mother_name"`
}

// Birth holds the subject's birth date and clock time.
type Birth struct {
	Date string `toml:"date"`
	Time string `toml:"time"`
}

// Location holds the birth coordinates.
type Location struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// Analysis selects which analyses to run and with what letter-value method.
type Analysis struct {
	Kinds  []string `toml:"kinds"`
	Method string   `toml:"method"`
}

// Request is a parsed reading file.
type Request struct {
	Subject  Subject  `toml:"subject"`
	Birth    Birth    `toml:"birth"`
	Location Location `toml:"location"`
	Analysis Analysis `toml:"analysis"`

	// SourceFile is the base name of the file the request came from.
	SourceFile string `toml:"-"`
}

// Load reads and parses a reading file, then validates it. Validation
// problems are returned as *ValidationError values carrying the source file.
func Load(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Request{}, fmt.Errorf("%w: %s", ErrNoRequest, path)
		}
		return Request{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var req Request
	if err := toml.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	req.SourceFile = filepath.Base(path)

	if errs := Validate(req); len(errs) > 0 {
		return Request{}, errs[0]
	}
	return req, nil
}

// Validate checks a request for missing or malformed fields. It returns one
// ValidationError per problem so a caller can report them all.
func Validate(req Request) []*ValidationError {
	src := req.SourceFile
	var errs []*ValidationError

	fail := func(field string, err error) {
		errs = append(errs, &ValidationError{SourceFile: src, Field: field, Err: err})
	}

	if len(req.Analysis.Kinds) == 0 {
		fail("analysis.kinds", fmt.Errorf("%w: analysis.kinds", ErrMissingField))
		return errs
	}

	wants := make(map[string]bool)
	for _, k := range req.Analysis.Kinds {
		switch k {
		case KindAbjad, KindJafr, KindTower:
			wants[k] = true
		default:
			fail("analysis.kinds", fmt.Errorf("%w: %q", ErrUnknownKind, k))
		}
	}

	if wants[KindAbjad] || wants[KindJafr] {
		if req.Subject.Name == "" {
			fail("subject.name", fmt.Errorf("%w: subject.name", ErrMissingField))
		}
	}
	if wants[KindAbjad] && req.Analysis.Method != "" {
		if _, err := abjad.ParseMethod(req.Analysis.Method); err != nil {
			fail("analysis.method", fmt.Errorf("%w: %q", ErrBadValue, req.Analysis.Method))
		}
	}
	if wants[KindJafr] {
		if req.Subject.MotherName == "" {
			fail("subject.mother_name", fmt.Errorf("%w: subject.mother_name", ErrMissingField))
		}
	}
	if wants[KindJafr] || wants[KindTower] {
		if req.Birth.Date == "" {
			fail("birth.date", fmt.Errorf("%w: birth.date", ErrMissingField))
		} else if _, err := time.Parse("2006-01-02", req.Birth.Date); err != nil {
			fail("birth.date", fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrBadValue, req.Birth.Date))
		}
	}
	if wants[KindTower] {
		if req.Birth.Time == "" {
			fail("birth.time", fmt.Errorf("%w: birth.time", ErrMissingField))
		} else if _, err := tower.ParseTimeOfDay(req.Birth.Time); err != nil {
			fail("birth.time", fmt.Errorf("%w: %q is not HH:MM", ErrBadValue, req.Birth.Time))
		}
	}

	return errs
}

// Method resolves the letter-value method for the request, falling back to
// fallback when the file does not set one.
func (r Request) Method(fallback string) (abjad.Method, error) {
	s := r.Analysis.Method
	if s == "" {
		s = fallback
	}
	return abjad.ParseMethod(s)
}

// orderedKinds returns the request's kinds in fixed execution order with
// duplicates removed.
func (r Request) orderedKinds() []string {
	wants := make(map[string]bool, len(r.Analysis.Kinds))
	for _, k := range r.Analysis.Kinds {
		wants[k] = true
	}
	var out []string
	for _, k := range kindOrder {
		if wants[k] {
			out = append(out, k)
		}
	}
	return out
}
