package reading

import (
	"errors"
	"strings"
	"testing"

	"github.com/burjlab/ruhani/internal/session"
	"github.com/burjlab/ruhani/internal/spirit"
)

func TestRunner_FullReading(t *testing.T) {
	t.Parallel()
	req, err := Load(writeRequest(t, fullRequest))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sess := session.New(nil)
	r := &Runner{Session: sess, DefaultMethod: "kabir"}

	results, err := r.Run(req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Fixed order regardless of the file listing tower first.
	if !strings.Contains(results[0].Method, "حساب الجُمّل") {
		t.Errorf("results[0].Method = %q, want abjad", results[0].Method)
	}
	if results[1].Method != "تحليل الجفر الشريف" {
		t.Errorf("results[1].Method = %q, want jafr", results[1].Method)
	}
	if results[2].Method != "تحليل البرج الروحاني" {
		t.Errorf("results[2].Method = %q, want tower", results[2].Method)
	}

	// Everything lands in the session history too.
	if got := len(sess.History()); got != 3 {
		t.Errorf("session history length = %d, want 3", got)
	}
}

func TestRunner_AbjadOnly(t *testing.T) {
	t.Parallel()
	req := Request{
		SourceFile: "r.toml",
		Subject:    Subject{Name: "الله"},
		Analysis:   Analysis{Kinds: []string{"abjad"}},
	}

	r := &Runner{Session: session.New(nil), DefaultMethod: "kabir"}
	results, err := r.Run(req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Value != 66 {
		t.Errorf("value = %d, want 66", results[0].Value)
	}
}

func TestRunner_InvalidSubjectAborts(t *testing.T) {
	t.Parallel()
	req := Request{
		SourceFile: "r.toml",
		Subject:    Subject{Name: "hello"},
		Analysis:   Analysis{Kinds: []string{"abjad"}},
	}

	r := &Runner{Session: session.New(nil), DefaultMethod: "kabir"}
	_, err := r.Run(req)
	if !errors.Is(err, spirit.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "r.toml") {
		t.Errorf("error should name the source file: %v", err)
	}
}

func TestRunner_UnknownKindRejected(t *testing.T) {
	t.Parallel()
	r := &Runner{Session: session.New(nil), DefaultMethod: "kabir"}

	_, err := r.runOne(Request{SourceFile: "r.toml"}, "tarot")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
