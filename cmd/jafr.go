package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var jafrCmd = &cobra.Command{
	Use:   "jafr <name> <mother-name>",
	Short: "Compute a jafr reading from a name, mother's name, and birth date",
	Args:  cobra.ExactArgs(2),
	RunE:  runJafr,
}

func init() {
	jafrCmd.Flags().StringP("birth", "b", "", "birth date as YYYY-MM-DD (required)")
	jafrCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(jafrCmd)
}

func runJafr(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	birthStr, _ := cmd.Flags().GetString("birth")
	birth, err := time.Parse("2006-01-02", birthStr)
	if err != nil {
		return fmt.Errorf("birth date %q must be YYYY-MM-DD", birthStr)
	}

	sess, _, printer, cleanup, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := sess.Jafr(args[0], args[1], birth)
	if err != nil {
		return err
	}
	printer.Result(res)
	return nil
}
