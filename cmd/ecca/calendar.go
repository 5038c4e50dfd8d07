// ABOUTME: CLI commands for calendar events: add, list, month, upcoming, delete.
// ABOUTME: Event dates are plain YYYY-MM-DD strings; times are free-form display text.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eccahealth/ecca/internal/models"
)

var (
	eventTime     string
	eventNotes    string
	upcomingLimit int
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Manage calendar events",
}

var calendarAddCmd = &cobra.Command{
	Use:   "add <date> <title>",
	Short: "Add a calendar event",
	Long: `Add a calendar event on a YYYY-MM-DD date.

Examples:
  ecca calendar add 2026-09-15 "Dr. Smith checkup" --time "10:30 AM"
  ecca calendar add 2026-09-20 "Flu shot"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		if _, err := time.Parse(models.DateLayout, args[0]); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
		}

		if err := db.CreateCalendarEvent(userID, args[1], args[0], optionalFlag(eventTime), optionalFlag(eventNotes)); err != nil {
			return fmt.Errorf("failed to add event: %w", err)
		}

		color.Green("✓ Added %s on %s", args[1], args[0])
		return nil
	},
}

var calendarListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all events in date order",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		events, err := db.ListCalendarEvents(userID)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		printEvents(events)
		return nil
	},
}

var calendarMonthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "List events for one month (default: current)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			parsed, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
			}
			year, month = parsed.Year(), parsed.Month()
		}

		events, err := db.ListEventsByMonth(userID, year, month)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		printEvents(events)
		return nil
	},
}

var calendarUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List upcoming events, soonest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		events, err := db.ListUpcomingEvents(userID, upcomingLimit)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		printEvents(events)
		return nil
	},
}

var calendarDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an event",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireUser(); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := db.DeleteCalendarEvent(id); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		fmt.Printf("Deleted event %d.\n", id)
		return nil
	},
}

func printEvents(events []*models.CalendarEvent) {
	if len(events) == 0 {
		fmt.Println("No events.")
		return
	}

	faint := color.New(color.Faint)
	for _, e := range events {
		timeCol := ""
		if e.Time != nil && *e.Time != "" {
			timeCol = " " + padRight(*e.Time, 9)
		}
		notes := ""
		if e.Notes != nil && *e.Notes != "" {
			notes = faint.Sprintf(" (%s)", truncate(*e.Notes, 30))
		}
		fmt.Printf("%s %s%s %s%s\n",
			faint.Sprintf("%-4d", e.ID),
			e.EventDate,
			timeCol,
			truncate(e.Title, 40),
			notes)
	}
}

func init() {
	calendarAddCmd.Flags().StringVar(&eventTime, "time", "", "display time, e.g. \"10:30 AM\"")
	calendarAddCmd.Flags().StringVar(&eventNotes, "notes", "", "notes for the event")
	calendarUpcomingCmd.Flags().IntVarP(&upcomingLimit, "limit", "n", 10, "max number of results")
	calendarCmd.AddCommand(calendarAddCmd, calendarListCmd, calendarMonthCmd, calendarUpcomingCmd, calendarDeleteCmd)
	rootCmd.AddCommand(calendarCmd)
}
