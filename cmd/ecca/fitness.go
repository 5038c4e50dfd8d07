// ABOUTME: CLI commands for fitness activities: add, list, delete.
// ABOUTME: Distances are entered in miles and converted only for display.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eccahealth/ecca/internal/models"
	"github.com/eccahealth/ecca/internal/settings"
)

var (
	fitnessDuration int
	fitnessDistance float64
	fitnessCalories int
	fitnessNotes    string
	fitnessLimit    int
)

var fitnessCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Track fitness activities",
}

var fitnessAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Log a fitness activity",
	Long: `Log a fitness activity.

Examples:
  ecca fitness add walking --duration 30 --distance 1.5
  ecca fitness add strength --duration 45 --calories 200

Valid types: walking, running, cycling, swimming, yoga, strength`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		kind := args[0]
		if !models.IsValidActivityKind(kind) {
			return fmt.Errorf("unknown activity type: %s\nValid types: walking, running, cycling, swimming, yoga, strength", kind)
		}

		var duration *int
		if fitnessDuration > 0 {
			duration = &fitnessDuration
		}
		var distance *float64
		if fitnessDistance > 0 {
			distance = &fitnessDistance
		}
		var calories *int
		if fitnessCalories > 0 {
			calories = &fitnessCalories
		}

		if err := db.CreateFitnessActivity(userID, models.ActivityKind(kind), duration, distance, calories, optionalFlag(fitnessNotes)); err != nil {
			return fmt.Errorf("failed to add fitness activity: %w", err)
		}

		color.Green("✓ Logged %s", models.ActivityLabels[models.ActivityKind(kind)])
		return nil
	},
}

var fitnessListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent fitness activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		activities, err := db.ListFitnessActivities(userID, fitnessLimit)
		if err != nil {
			return fmt.Errorf("failed to list fitness activities: %w", err)
		}
		if len(activities) == 0 {
			fmt.Println("No fitness activities found.")
			return nil
		}

		units := setSvc.Get().Units
		faint := color.New(color.Faint)
		for _, a := range activities {
			details := ""
			if a.DurationMinutes != nil {
				details += fmt.Sprintf(" %d min", *a.DurationMinutes)
			}
			if a.DistanceMiles != nil {
				details += " " + settings.FormatDistance(a.DistanceMiles, units)
			}
			if a.Calories != nil {
				details += fmt.Sprintf(" %d kcal", *a.Calories)
			}
			notes := ""
			if a.Notes != nil && *a.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*a.Notes, 30))
			}
			fmt.Printf("%s %s %s%s%s\n",
				faint.Sprintf("%-4d", a.ID),
				faint.Sprint(a.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(a.Kind), 10),
				details,
				notes)
		}
		return nil
	},
}

var fitnessDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a fitness activity by id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireUser(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := db.DeleteFitnessActivity(id); err != nil {
			return fmt.Errorf("failed to delete fitness activity: %w", err)
		}
		fmt.Printf("Deleted fitness activity %d\n", id)
		return nil
	},
}

func init() {
	fitnessAddCmd.Flags().IntVar(&fitnessDuration, "duration", 0, "duration in minutes")
	fitnessAddCmd.Flags().Float64Var(&fitnessDistance, "distance", 0, "distance in miles")
	fitnessAddCmd.Flags().IntVar(&fitnessCalories, "calories", 0, "calories burned")
	fitnessAddCmd.Flags().StringVar(&fitnessNotes, "notes", "", "notes for the activity")
	fitnessListCmd.Flags().IntVarP(&fitnessLimit, "limit", "n", 50, "max number of results")
	fitnessCmd.AddCommand(fitnessAddCmd, fitnessListCmd, fitnessDeleteCmd)
	rootCmd.AddCommand(fitnessCmd)
}
