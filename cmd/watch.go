package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/burjlab/ruhani/internal/reading"
	"github.com/burjlab/ruhani/internal/telemetry"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and run reading files as they change",
	Long: `Watches a directory for TOML reading files. Whenever a reading file is
created or modified, its analyses are run against the shared session. With
--export set, the accumulated history is re-exported after every run.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("export", false, "re-export the session history after each reading")
	watchCmd.Flags().String("format", "", "export format: json or csv (default from config)")
	watchCmd.Flags().String("out", "", "export base file name (default ruhani_<timestamp>)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sess, em, printer, cleanup, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := reading.NewWatcher(args[0], debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	printer.WatchStart(args[0])

	runner := &reading.Runner{Session: sess, Emitter: em, DefaultMethod: cfg.DefaultMethod}
	doExport, _ := cmd.Flags().GetBool("export")
	formatStr, _ := cmd.Flags().GetString("format")
	baseName, _ := cmd.Flags().GetString("out")

	for {
		select {
		case change := <-w.Changes:
			if change.Kind != reading.ChangeModified {
				continue
			}
			em.Emit(telemetry.Event{
				Timestamp: time.Now(),
				Kind:      telemetry.KindWatchEvent,
				Source:    change.File,
			})
			printer.WatchFile(change.File)

			req, err := reading.Load(change.File)
			if err != nil {
				printer.Error(err.Error())
				continue
			}
			results, err := runner.Run(req)
			if err != nil {
				printer.Error(err.Error())
				continue
			}
			for _, res := range results {
				printer.Result(res)
			}
			if doExport {
				if err := exportSession(sess, em, printer, cfg, formatStr, baseName); err != nil {
					printer.Error(err.Error())
				}
			}

		case <-sigCh:
			printer.Info("shutting down")
			return nil
		}
	}
}
