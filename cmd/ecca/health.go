// ABOUTME: CLI commands for health records: add, list, delete.
// ABOUTME: Values are free-form strings so blood pressure reads as 120/80.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eccahealth/ecca/internal/models"
)

var (
	healthNotes string
	healthLimit int
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Track health measurements",
}

var healthAddCmd = &cobra.Command{
	Use:   "add <type> <value>",
	Short: "Record a health measurement",
	Long: `Record a health measurement.

Examples:
  ecca health add blood_pressure 120/80
  ecca health add heart_rate 72
  ecca health add weight 154 --notes "after breakfast"

Valid types: blood_pressure, heart_rate, temperature, glucose, weight`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		kind := args[0]
		if !models.IsValidMetricKind(kind) {
			return fmt.Errorf("unknown metric type: %s\nValid types: blood_pressure, heart_rate, temperature, glucose, weight", kind)
		}

		if err := db.CreateHealthRecord(userID, models.MetricKind(kind), args[1], optionalFlag(healthNotes)); err != nil {
			return fmt.Errorf("failed to add health record: %w", err)
		}

		color.Green("✓ Recorded %s", models.MetricLabels[models.MetricKind(kind)])
		fmt.Printf("  %s %s\n", args[1], models.MetricUnits[models.MetricKind(kind)])
		return nil
	},
}

var healthListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent health records",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		records, err := db.ListHealthRecords(userID, healthLimit)
		if err != nil {
			return fmt.Errorf("failed to list health records: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No health records found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			notes := ""
			if r.Notes != nil && *r.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*r.Notes, 30))
			}
			fmt.Printf("%s %s %s %s %s%s\n",
				faint.Sprintf("%-4d", r.ID),
				faint.Sprint(r.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(r.Kind), 16),
				r.Value,
				models.MetricUnits[r.Kind],
				notes)
		}
		return nil
	},
}

var healthDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a health record by id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireUser(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := db.DeleteHealthRecord(id); err != nil {
			return fmt.Errorf("failed to delete health record: %w", err)
		}
		fmt.Printf("Deleted health record %d\n", id)
		return nil
	},
}

func init() {
	healthAddCmd.Flags().StringVar(&healthNotes, "notes", "", "notes for the record")
	healthListCmd.Flags().IntVarP(&healthLimit, "limit", "n", 50, "max number of results")
	healthCmd.AddCommand(healthAddCmd, healthListCmd, healthDeleteCmd)
	rootCmd.AddCommand(healthCmd)
}
