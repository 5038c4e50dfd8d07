// ABOUTME: CLI commands for app preferences: show and per-key set.
// ABOUTME: Validates the closed textSize/theme/units vocabularies before saving.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eccahealth/ecca/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change app preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := setSvc.Get()

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", faint.Sprint(padRight("text size", 22)), s.TextSize)
		fmt.Printf("%s %s\n", faint.Sprint(padRight("theme", 22)), s.Theme)
		fmt.Printf("%s %s\n", faint.Sprint(padRight("units", 22)), s.Units)
		fmt.Printf("%s %s\n", faint.Sprint(padRight("notifications", 22)), onOff(s.Notifications))
		fmt.Printf("%s %s\n", faint.Sprint(padRight("activity reminders", 22)), onOff(s.ActivityReminders))
		fmt.Printf("%s %s\n", faint.Sprint(padRight("medication reminders", 22)), onOff(s.MedicationReminders))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one preference",
	Long: `Change one preference.

Keys and their values:
  text-size              small | medium | large | extra-large
  theme                  light | dark
  units                  imperial | metric
  notifications          on | off
  activity-reminders     on | off
  medication-reminders   on | off`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := setSvc.Get()
		key, value := args[0], args[1]

		switch key {
		case "text-size":
			switch settings.TextSize(value) {
			case settings.TextSmall, settings.TextMedium, settings.TextLarge, settings.TextExtraLarge:
				s.TextSize = settings.TextSize(value)
			default:
				return fmt.Errorf("invalid text size %q (small, medium, large, extra-large)", value)
			}
		case "theme":
			switch settings.Theme(value) {
			case settings.ThemeLight, settings.ThemeDark:
				s.Theme = settings.Theme(value)
			default:
				return fmt.Errorf("invalid theme %q (light, dark)", value)
			}
		case "units":
			switch settings.Units(value) {
			case settings.UnitsImperial, settings.UnitsMetric:
				s.Units = settings.Units(value)
			default:
				return fmt.Errorf("invalid units %q (imperial, metric)", value)
			}
		case "notifications", "activity-reminders", "medication-reminders":
			on, err := parseOnOff(value)
			if err != nil {
				return err
			}
			switch key {
			case "notifications":
				s.Notifications = on
			case "activity-reminders":
				s.ActivityReminders = on
			case "medication-reminders":
				s.MedicationReminders = on
			}
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if !setSvc.Save(s) {
			return fmt.Errorf("failed to save settings")
		}
		color.Green("✓ Set %s to %s", key, value)
		return nil
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage the emergency contact",
}

var contactShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the emergency contact",
	RunE: func(cmd *cobra.Command, args []string) error {
		contact := setSvc.EmergencyContact()
		if contact == nil {
			fmt.Println("No emergency contact set.")
			return nil
		}
		fmt.Printf("%s  %s\n", contact.Name, settings.FormatPhoneNumber(contact.Phone))
		return nil
	},
}

var contactSetCmd = &cobra.Command{
	Use:   "set <name> <phone>",
	Short: "Set the emergency contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !setSvc.SaveEmergencyContact(settings.EmergencyContact{Name: args[0], Phone: args[1]}) {
			return fmt.Errorf("failed to save emergency contact")
		}
		color.Green("✓ Emergency contact set to %s", args[0])
		return nil
	},
}

var contactClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the emergency contact",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !setSvc.DeleteEmergencyContact() {
			return fmt.Errorf("failed to remove emergency contact")
		}
		fmt.Println("Emergency contact removed.")
		return nil
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value %q (on, off)", s)
	}
	return b, nil
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	contactCmd.AddCommand(contactShowCmd, contactSetCmd, contactClearCmd)
	rootCmd.AddCommand(settingsCmd, contactCmd)
}
