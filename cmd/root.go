package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/burjlab/ruhani/internal/config"
	"github.com/burjlab/ruhani/internal/session"
	"github.com/burjlab/ruhani/internal/telemetry"
	"github.com/burjlab/ruhani/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "ruhani",
	Short: "Arabic numerology and spiritual chart calculator",
	Long: `Ruhani computes traditional Arabic letter-value (abjad) analyses, jafr
readings from a name and mother's name, and spiritual tower charts from
birth data. Results accumulate in a session that can be summarized and
exported as JSON or CSV.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .ruhani.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print full interpretation texts")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ruhani")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("RUHANI")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig loads the config and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newSession builds a session and printer from config. The returned cleanup
// closes the telemetry emitter and must be called when the command finishes.
func newSession(cfg config.Config) (*session.Session, *telemetry.Emitter, *ui.Printer, func(), error) {
	var em *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		var err error
		em, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}
	cleanup := func() { _ = em.Close() }
	return session.New(em), em, ui.New(cfg.Verbose), cleanup, nil
}
