// Package ui renders analysis results, summaries, and progress notices to
// the terminal. Result text goes to stdout so it can be piped; notices and
// errors go to stderr.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/burjlab/ruhani/internal/ansi"
	"github.com/burjlab/ruhani/internal/session"
	"github.com/burjlab/ruhani/internal/spirit"
)

type Printer struct {
	// Verbose includes the full interpretation text in result output.
	Verbose bool
}

func New(verbose bool) *Printer {
	return &Printer{Verbose: verbose}
}

// Result prints a single analysis result.
func (p *Printer) Result(res spirit.Result) {
	fmt.Fprintf(os.Stdout, ansi.Bold+ansi.Cyan+"◆ %s"+ansi.Reset+"\n", res.Method)
	fmt.Fprintf(os.Stdout, "  "+ansi.Bold+"القيمة العددية:"+ansi.Reset+" %d\n", res.Value)
	fmt.Fprintf(os.Stdout, "  "+ansi.Bold+"الرقم المختزل:"+ansi.Reset+" %d\n", res.Reduced)
	if p.Verbose {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, indent(res.Interpretation, "  "))
	} else {
		fmt.Fprintf(os.Stdout, "  %s\n", firstLine(res.Interpretation))
	}
	fmt.Fprintln(os.Stdout)
}

// Summary prints a session summary.
func (p *Printer) Summary(s session.Summary) {
	fmt.Fprintln(os.Stdout, ansi.Bold+ansi.Magenta+"── ملخص الحسابات ──"+ansi.Reset)
	fmt.Fprintf(os.Stdout, "  إجمالي الحسابات: %d\n", s.TotalCalculations)
	fmt.Fprintf(os.Stdout, "  الطرق المستخدمة: %s\n", strings.Join(s.MethodsUsed, "، "))
	fmt.Fprintf(os.Stdout, "  متوسط القيم: %.2f\n", s.AverageValue)
	fmt.Fprintf(os.Stdout, "  الرقم المهيمن: %d\n", s.MostCommonReduced)
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, indent(s.Insights, "  "))
}

// Exported announces the file an export was written to.
func (p *Printer) Exported(path string) {
	fmt.Fprintf(os.Stderr, ansi.Green+"✓ exported"+ansi.Reset+" %s\n", path)
}

// WatchStart announces the directory being watched.
func (p *Printer) WatchStart(dir string) {
	fmt.Fprintf(os.Stderr, ansi.Cyan+"◆ watching"+ansi.Reset+" %s "+ansi.Dim+"(ctrl-c to stop)"+ansi.Reset+"\n", dir)
}

// WatchFile announces a reading file about to be run.
func (p *Printer) WatchFile(file string) {
	fmt.Fprintf(os.Stderr, ansi.Yellow+"▶ reading"+ansi.Reset+" %s\n", file)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
