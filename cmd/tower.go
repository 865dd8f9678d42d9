package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/burjlab/ruhani/internal/tower"
)

var towerCmd = &cobra.Command{
	Use:   "tower",
	Short: "Compute a spiritual tower chart from birth date, time, and place",
	RunE:  runTower,
}

func init() {
	towerCmd.Flags().StringP("birth", "b", "", "birth date as YYYY-MM-DD (required)")
	towerCmd.Flags().StringP("time", "t", "", "birth time as HH:MM or HH:MM:SS (required)")
	towerCmd.Flags().Float64("lat", 0, "birth latitude in degrees (required)")
	towerCmd.Flags().Float64("lon", 0, "birth longitude in degrees (required)")
	towerCmd.MarkFlagRequired("birth")
	towerCmd.MarkFlagRequired("time")
	towerCmd.MarkFlagRequired("lat")
	towerCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(towerCmd)
}

func runTower(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	birthStr, _ := cmd.Flags().GetString("birth")
	birth, err := time.Parse("2006-01-02", birthStr)
	if err != nil {
		return fmt.Errorf("birth date %q must be YYYY-MM-DD", birthStr)
	}

	timeStr, _ := cmd.Flags().GetString("time")
	tod, err := tower.ParseTimeOfDay(timeStr)
	if err != nil {
		return err
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")

	sess, _, printer, cleanup, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := sess.Tower(birth, tod, lat, lon)
	if err != nil {
		return err
	}
	printer.Result(res)
	return nil
}
