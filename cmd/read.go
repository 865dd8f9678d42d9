package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/burjlab/ruhani/internal/config"
	"github.com/burjlab/ruhani/internal/export"
	"github.com/burjlab/ruhani/internal/reading"
	"github.com/burjlab/ruhani/internal/session"
	"github.com/burjlab/ruhani/internal/telemetry"
	"github.com/burjlab/ruhani/internal/ui"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Run the analyses requested by a TOML reading file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func init() {
	readCmd.Flags().Bool("summary", false, "print a session summary after the analyses")
	readCmd.Flags().Bool("export", false, "export the session history after the analyses")
	readCmd.Flags().String("format", "", "export format: json or csv (default from config)")
	readCmd.Flags().String("out", "", "export base file name (default ruhani_<timestamp>)")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	req, err := reading.Load(args[0])
	if err != nil {
		return err
	}

	sess, em, printer, cleanup, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	runner := &reading.Runner{Session: sess, Emitter: em, DefaultMethod: cfg.DefaultMethod}
	results, err := runner.Run(req)
	if err != nil {
		return err
	}
	for _, res := range results {
		printer.Result(res)
	}

	if wantSummary, _ := cmd.Flags().GetBool("summary"); wantSummary {
		sum, err := sess.Summary()
		if err != nil {
			return err
		}
		printer.Summary(sum)
	}

	if doExport, _ := cmd.Flags().GetBool("export"); doExport {
		formatStr, _ := cmd.Flags().GetString("format")
		baseName, _ := cmd.Flags().GetString("out")
		return exportSession(sess, em, printer, cfg, formatStr, baseName)
	}
	return nil
}

// exportSession writes the session history to disk and records the export.
// An empty formatStr falls back to the configured export format.
func exportSession(sess *session.Session, em *telemetry.Emitter, printer *ui.Printer, cfg config.Config, formatStr, baseName string) error {
	if formatStr == "" {
		formatStr = cfg.Export.Format
	}
	format, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	path, err := export.Write(sess.History(), format, cfg.Export.Dir, baseName)
	if err != nil {
		return err
	}
	em.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindExportDone,
		Data:      map[string]string{"path": path, "format": string(format)},
	})
	printer.Exported(path)
	return nil
}
