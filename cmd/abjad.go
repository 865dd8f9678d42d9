package cmd

import (
	"github.com/spf13/cobra"

	"github.com/burjlab/ruhani/internal/abjad"
)

var abjadCmd = &cobra.Command{
	Use:   "abjad <text>",
	Short: "Compute the letter-value analysis of an Arabic name or phrase",
	Args:  cobra.ExactArgs(1),
	RunE:  runAbjad,
}

func init() {
	abjadCmd.Flags().StringP("method", "m", "", "calculation method: kabir, saghir, or muqatta (default from config)")
	rootCmd.AddCommand(abjadCmd)
}

func runAbjad(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	methodStr, _ := cmd.Flags().GetString("method")
	if methodStr == "" {
		methodStr = cfg.DefaultMethod
	}
	method, err := abjad.ParseMethod(methodStr)
	if err != nil {
		return err
	}

	sess, _, printer, cleanup, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := sess.Abjad(args[0], method)
	if err != nil {
		return err
	}
	printer.Result(res)
	return nil
}
