// ABOUTME: CLI commands for identity: register, login, logout, whoami.
// ABOUTME: Biometric restore is gated by a confirmation prompt on this host.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eccahealth/ecca/internal/auth"
)

var (
	registerName  string
	registerEmail string
	loginEmail    string
	loginBio      bool
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if registerName == "" || registerEmail == "" {
			return fmt.Errorf("--name and --email are required")
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		if !authSvc.Register(registerName, registerEmail, password) {
			return fmt.Errorf("registration failed: email may already be in use")
		}

		color.Green("✓ Registered and logged in as %s", strings.ToLower(registerEmail))
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password, or restore via --biometric",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginBio {
			return biometricLogin()
		}

		if loginEmail == "" {
			return fmt.Errorf("--email is required")
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		if !authSvc.Login(loginEmail, password) {
			return fmt.Errorf("login failed")
		}

		color.Green("✓ Logged in as %s", strings.ToLower(loginEmail))
		return nil
	},
}

func biometricLogin() error {
	if !authSvc.BiometricEnabled() {
		return fmt.Errorf("biometric login is not enabled: run 'ecca login' once, then 'ecca biometric enable'")
	}

	gate := terminalGate{}
	if !gate.Authenticate() {
		return fmt.Errorf("authentication cancelled")
	}

	if !authSvc.LoginWithBiometric() {
		return fmt.Errorf("no linked account: log in with a password first")
	}

	color.Green("✓ Welcome back, %s", authSvc.LastEmail())
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long: `End the current session.

The biometric link is kept so 'ecca login --biometric' keeps working
after a manual logout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc.Logout()
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := authSvc.CurrentUser()
		if user == nil {
			fmt.Println("Not logged in.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		fmt.Printf("  %s\n", faint.Sprintf("member since %s", user.CreatedAt.Format("2006-01-02")))
		return nil
	},
}

var biometricCmd = &cobra.Command{
	Use:   "biometric <enable|disable>",
	Short: "Opt in or out of biometric login",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "enable":
			if _, err := requireUser(); err != nil {
				return err
			}
			if !authSvc.EnableBiometric() {
				return fmt.Errorf("failed to enable biometric login")
			}
			color.Green("✓ Biometric login enabled")
		case "disable":
			if !authSvc.DisableBiometric() {
				return fmt.Errorf("failed to disable biometric login")
			}
			fmt.Println("Biometric login disabled.")
		default:
			return fmt.Errorf("expected 'enable' or 'disable', got %q", args[0])
		}
		return nil
	},
}

// terminalGate is the biometric capability on a plain terminal: there is no
// sensor, so it falls back to an explicit confirmation prompt.
type terminalGate struct{}

var _ auth.Capability = terminalGate{}

func (terminalGate) Supported() bool { return false }
func (terminalGate) Enrolled() bool  { return false }
func (terminalGate) Kind() string    { return "Confirmation" }

func (terminalGate) Authenticate() bool {
	fmt.Print("Confirm it's you [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// readPassword prompts without echoing when stdin is a terminal.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	loginCmd.Flags().BoolVar(&loginBio, "biometric", false, "restore the linked session without a password")
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd, biometricCmd)
}
