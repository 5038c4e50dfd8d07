// ABOUTME: CLI commands for medications: add, list, taken, today, history, stop.
// ABOUTME: "stop" soft-deletes so past taken-logs stay retrievable.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	medDosage    string
	medFrequency string
	medTimes     string
	medNotes     string
	takenNotes   string
	historyLimit int
)

var medsCmd = &cobra.Command{
	Use:   "meds",
	Short: "Track medications and taken-logs",
}

var medsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a medication",
	Long: `Add a medication.

Examples:
  ecca meds add Lisinopril --dosage 10mg --frequency "Once daily" --times "8:00 AM"
  ecca meds add Metformin --dosage 500mg --frequency "Twice daily"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}
		if medDosage == "" || medFrequency == "" {
			return fmt.Errorf("--dosage and --frequency are required")
		}

		if err := db.CreateMedication(userID, args[0], medDosage, medFrequency, optionalFlag(medTimes), optionalFlag(medNotes)); err != nil {
			return fmt.Errorf("failed to add medication: %w", err)
		}

		color.Green("✓ Added %s %s, %s", args[0], medDosage, medFrequency)
		return nil
	},
}

var medsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List active medications",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		meds, err := db.ListMedications(userID)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}
		if len(meds) == 0 {
			fmt.Println("No active medications.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meds {
			times := ""
			if m.Times != nil && *m.Times != "" {
				times = faint.Sprintf(" at %s", *m.Times)
			}
			fmt.Printf("%s %s %s, %s%s\n",
				faint.Sprintf("%-4d", m.ID),
				padRight(m.Name, 20),
				m.Dosage,
				m.Frequency,
				times)
		}
		return nil
	},
}

var medsTakenCmd = &cobra.Command{
	Use:   "taken <id>",
	Short: "Mark a medication as taken now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := db.LogTaken(id, userID, optionalFlag(takenNotes)); err != nil {
			return fmt.Errorf("failed to log medication: %w", err)
		}
		color.Green("✓ Marked as taken")
		return nil
	},
}

var medsTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List medications taken today",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		logs, err := db.ListTodaysLogs(userID)
		if err != nil {
			return fmt.Errorf("failed to list today's logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No medications taken today.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			med, err := db.GetMedication(l.MedicationID)
			name := fmt.Sprintf("medication %d", l.MedicationID)
			if err == nil {
				name = med.Name
			}
			fmt.Printf("%s %s\n",
				faint.Sprint(l.TakenAt.Local().Format("15:04")),
				name)
		}
		return nil
	},
}

var medsHistoryCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "List taken-logs for one medication",
	Long: `List taken-logs for one medication, newest first.

Works for stopped medications too; stopping a medication keeps its history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireUser(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		logs, err := db.ListMedicationLogs(id, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list medication logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No taken-logs for this medication.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			notes := ""
			if l.Notes != nil && *l.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*l.Notes, 30))
			}
			fmt.Printf("%s%s\n", l.TakenAt.Local().Format("2006-01-02 15:04"), notes)
		}
		return nil
	},
}

var medsStopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Stop a medication (kept in history)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireUser(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := db.DeactivateMedication(id); err != nil {
			return fmt.Errorf("failed to stop medication: %w", err)
		}
		fmt.Printf("Stopped medication %d. Its taken-history is kept.\n", id)
		return nil
	},
}

func init() {
	medsAddCmd.Flags().StringVar(&medDosage, "dosage", "", "dosage, e.g. 10mg")
	medsAddCmd.Flags().StringVar(&medFrequency, "frequency", "", "schedule, e.g. \"Once daily\"")
	medsAddCmd.Flags().StringVar(&medTimes, "times", "", "display times, e.g. \"8:00 AM, 8:00 PM\"")
	medsAddCmd.Flags().StringVar(&medNotes, "notes", "", "notes for the medication")
	medsTakenCmd.Flags().StringVar(&takenNotes, "notes", "", "notes for this dose")
	medsHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "max number of results")
	medsCmd.AddCommand(medsAddCmd, medsListCmd, medsTakenCmd, medsTodayCmd, medsHistoryCmd, medsStopCmd)
	rootCmd.AddCommand(medsCmd)
}
