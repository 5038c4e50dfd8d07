// ABOUTME: CLI commands for exporting and importing a full data snapshot.
// ABOUTME: Export writes JSON or YAML; import reads JSON only.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export your data as JSON or YAML",
	Long: `Export all of your data as a snapshot.

Writes to stdout unless a file is given. The format follows the
--format flag, or the file extension when the flag is unset.

Examples:
  ecca export backup.json
  ecca export backup.yaml
  ecca export --format yaml > backup.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		format := exportFormat
		if format == "" {
			format = "json"
			if len(args) == 1 && (strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml")) {
				format = "yaml"
			}
		}

		var raw []byte
		switch format {
		case "json":
			raw, err = db.ExportJSON(userID)
		case "yaml", "yml":
			raw, err = db.ExportYAML(userID)
		default:
			return fmt.Errorf("unknown format %q (json, yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(string(raw))
			return nil
		}

		if err := os.WriteFile(args[0], raw, 0600); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}
		color.Green("✓ Exported to %s", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON snapshot into your account",
	Long: `Import a previously exported JSON snapshot.

Imported rows are added to your existing data; nothing is deleted.
Medication taken-logs stay attached to their medications.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := requireUser()
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		if err := db.ImportJSON(userID, raw); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "output format: json or yaml")
	rootCmd.AddCommand(exportCmd, importCmd)
}
