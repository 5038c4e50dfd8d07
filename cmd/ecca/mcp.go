// ABOUTME: CLI command that serves the MCP stdio interface.
// ABOUTME: Lets assistants read and record data for the logged-in user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eccahealth/ecca/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the Model Context Protocol interface on stdio",
	Long: `Serve the Model Context Protocol interface on stdio.

Exposes tools for recording and listing health data, fitness
activities, medications, and calendar events, scoped to the
currently logged-in user. Intended to be launched by an MCP client,
not run by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireUser(); err != nil {
			return err
		}

		server, err := mcp.NewServer(db, authSvc)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
