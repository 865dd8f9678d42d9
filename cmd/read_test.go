package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/burjlab/ruhani/internal/abjad"
	"github.com/burjlab/ruhani/internal/config"
	"github.com/burjlab/ruhani/internal/session"
	"github.com/burjlab/ruhani/internal/ui"
)

func seededSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(nil)
	if _, err := sess.Abjad("محمد", abjad.MethodKabir); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return sess
}

func TestExportSession_FallsBackToConfiguredFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.Config{Export: config.ExportConfig{Format: "csv", Dir: dir}}
	sess := seededSession(t)

	if err := exportSession(sess, nil, ui.New(false), cfg, "", "reading"); err != nil {
		t.Fatalf("exportSession: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "reading.csv")); err != nil {
		t.Errorf("expected csv export from config default: %v", err)
	}
}

func TestExportSession_FlagFormatOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.Config{Export: config.ExportConfig{Format: "csv", Dir: dir}}
	sess := seededSession(t)

	if err := exportSession(sess, nil, ui.New(false), cfg, "json", "reading"); err != nil {
		t.Fatalf("exportSession: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "reading.json"))
	if err != nil {
		t.Fatalf("expected json export from explicit format: %v", err)
	}
	if !strings.Contains(string(data), "\"numerical_value\": 92") {
		t.Errorf("json export missing seeded result: %s", data)
	}
}

func TestExportSession_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Export: config.ExportConfig{Format: "xml", Dir: t.TempDir()}}
	if err := exportSession(seededSession(t), nil, ui.New(false), cfg, "", "reading"); err == nil {
		t.Error("expected error for unknown configured format")
	}
}

func TestReadCommand_FlagWiring(t *testing.T) {
	t.Parallel()

	flags := readCmd.Flags()
	for name, defValue := range map[string]string{
		"summary": "false",
		"export":  "false",
		"format":  "",
		"out":     "",
	} {
		f := flags.Lookup(name)
		if f == nil {
			t.Errorf("read is missing the --%s flag", name)
			continue
		}
		if f.DefValue != defValue {
			t.Errorf("--%s default = %q, want %q", name, f.DefValue, defValue)
		}
	}
}

func TestWatchCommand_FlagWiring(t *testing.T) {
	t.Parallel()

	flags := watchCmd.Flags()
	for _, name := range []string{"export", "format", "out"} {
		if flags.Lookup(name) == nil {
			t.Errorf("watch is missing the --%s flag", name)
		}
	}
	if f := flags.Lookup("export"); f != nil && f.Value.Type() != "bool" {
		t.Errorf("--export type = %q, want bool", f.Value.Type())
	}
}
