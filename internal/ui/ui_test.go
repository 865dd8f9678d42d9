package ui

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/burjlab/ruhani/internal/session"
	"github.com/burjlab/ruhani/internal/spirit"
)

// captureStdout redirects os.Stdout to a pipe and returns the captured output.
func captureStdout(fn func()) string {
	r, w, _ := os.Pipe()
	orig := os.Stdout
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig

	buf := make([]byte, 8192)
	n, _ := r.Read(buf)
	r.Close()
	return string(buf[:n])
}

// captureStderr redirects os.Stderr to a pipe and returns the captured output.
func captureStderr(fn func()) string {
	r, w, _ := os.Pipe()
	orig := os.Stderr
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	buf := make([]byte, 8192)
	n, _ := r.Read(buf)
	r.Close()
	return string(buf[:n])
}

func sampleResult() spirit.Result {
	return spirit.Result{
		Method:         "حساب الجُمّل (kabir)",
		Value:          92,
		Reduced:        2,
		Interpretation: "السطر الأول\nالسطر الثاني",
		Timestamp:      time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestResult_Compact(t *testing.T) {
	p := New(false)
	out := captureStdout(func() { p.Result(sampleResult()) })

	if !strings.Contains(out, "حساب الجُمّل") {
		t.Errorf("missing method header: %q", out)
	}
	if !strings.Contains(out, "92") || !strings.Contains(out, "2") {
		t.Errorf("missing values: %q", out)
	}
	if !strings.Contains(out, "السطر الأول") {
		t.Errorf("missing first interpretation line: %q", out)
	}
	if strings.Contains(out, "السطر الثاني") {
		t.Errorf("compact output should not include later lines: %q", out)
	}
}

func TestResult_Verbose(t *testing.T) {
	p := New(true)
	out := captureStdout(func() { p.Result(sampleResult()) })

	if !strings.Contains(out, "السطر الثاني") {
		t.Errorf("verbose output should include the full interpretation: %q", out)
	}
}

func TestSummary_Output(t *testing.T) {
	p := New(false)
	s := session.Summary{
		TotalCalculations: 4,
		MethodsUsed:       []string{"حساب الجُمّل (kabir)", "تحليل الجفر الشريف"},
		AverageValue:      123.5,
		MostCommonReduced: 2,
		Insights:          "رؤية",
	}
	out := captureStdout(func() { p.Summary(s) })

	for _, want := range []string{"ملخص الحسابات", "4", "123.50", "رؤية"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q: %q", want, out)
		}
	}
}

func TestNotices_GoToStderr(t *testing.T) {
	p := New(false)

	out := captureStderr(func() {
		p.Exported("out.json")
		p.WatchStart("readings")
		p.WatchFile("subject.toml")
		p.Error("boom")
		p.Info("note")
	})

	for _, want := range []string{"out.json", "readings", "subject.toml", "boom", "note"} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr output missing %q: %q", want, out)
		}
	}
}

func TestIndent(t *testing.T) {
	got := indent("a\n\nb", "  ")
	if got != "  a\n\n  b" {
		t.Errorf("indent = %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Errorf("firstLine = %q", got)
	}
	if got := firstLine("solo"); got != "solo" {
		t.Errorf("firstLine = %q", got)
	}
}
