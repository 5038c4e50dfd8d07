// ABOUTME: Integration tests for the ecca CLI.
// ABOUTME: Builds the binary and drives a full register-track-export workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	eccaBinary := filepath.Join(projectRoot, "ecca")

	buildCmd := exec.Command("go", "build", "-o", eccaBinary, "./cmd/ecca")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(eccaBinary)

	// Isolate all state in temp directories
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"ECCA_BCRYPT_COST=4",
	)

	run := func(stdin string, args ...string) (string, error) {
		cmd := exec.Command(eccaBinary, args...)
		cmd.Env = env
		if stdin != "" {
			cmd.Stdin = strings.NewReader(stdin)
		}
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Register; the password comes over stdin
	output, err := run("secret123\n", "register", "--name", "Mary", "--email", "mary@example.com")
	if err != nil {
		t.Fatalf("Failed to register: %v\n%s", err, output)
	}
	if !strings.Contains(output, "mary@example.com") {
		t.Errorf("Expected email in register output, got: %s", output)
	}

	// whoami reflects the session
	output, err = run("", "whoami")
	if err != nil {
		t.Fatalf("Failed to whoami: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Mary") {
		t.Errorf("Expected 'Mary' in whoami output, got: %s", output)
	}

	// Health records
	output, err = run("", "health", "add", "blood_pressure", "120/80")
	if err != nil {
		t.Fatalf("Failed to add health record: %v\n%s", err, output)
	}
	output, err = run("", "health", "list")
	if err != nil {
		t.Fatalf("Failed to list health records: %v\n%s", err, output)
	}
	if !strings.Contains(output, "120/80") {
		t.Errorf("Expected '120/80' in health list, got: %s", output)
	}

	// Fitness
	output, err = run("", "fitness", "add", "walking", "--duration", "30", "--distance", "1.5")
	if err != nil {
		t.Fatalf("Failed to add fitness activity: %v\n%s", err, output)
	}
	output, err = run("", "fitness", "list")
	if err != nil {
		t.Fatalf("Failed to list fitness activities: %v\n%s", err, output)
	}
	if !strings.Contains(output, "walking") {
		t.Errorf("Expected 'walking' in fitness list, got: %s", output)
	}

	// Medications: add, mark taken, check today, stop
	output, err = run("", "meds", "add", "Lisinopril", "--dosage", "10mg", "--frequency", "Once daily")
	if err != nil {
		t.Fatalf("Failed to add medication: %v\n%s", err, output)
	}
	output, err = run("", "meds", "list")
	if err != nil {
		t.Fatalf("Failed to list medications: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Lisinopril") {
		t.Errorf("Expected 'Lisinopril' in meds list, got: %s", output)
	}

	output, err = run("", "meds", "taken", "1")
	if err != nil {
		t.Fatalf("Failed to mark taken: %v\n%s", err, output)
	}
	output, err = run("", "meds", "today")
	if err != nil {
		t.Fatalf("Failed to list today's logs: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Lisinopril") {
		t.Errorf("Expected 'Lisinopril' in today output, got: %s", output)
	}

	output, err = run("", "meds", "stop", "1")
	if err != nil {
		t.Fatalf("Failed to stop medication: %v\n%s", err, output)
	}
	output, _ = run("", "meds", "list")
	if strings.Contains(output, "Lisinopril") {
		t.Errorf("Expected stopped medication out of list, got: %s", output)
	}
	output, err = run("", "meds", "history", "1")
	if err != nil {
		t.Fatalf("Failed to list history: %v\n%s", err, output)
	}
	if strings.Contains(output, "No taken-logs") {
		t.Errorf("Expected history after stop, got: %s", output)
	}

	// Calendar
	output, err = run("", "calendar", "add", "2030-05-10", "Dr. Smith checkup", "--time", "10:30 AM")
	if err != nil {
		t.Fatalf("Failed to add event: %v\n%s", err, output)
	}
	output, err = run("", "calendar", "upcoming")
	if err != nil {
		t.Fatalf("Failed to list upcoming: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Dr. Smith checkup") {
		t.Errorf("Expected event in upcoming output, got: %s", output)
	}

	// Settings round trip
	output, err = run("", "settings", "set", "units", "metric")
	if err != nil {
		t.Fatalf("Failed to set units: %v\n%s", err, output)
	}
	output, err = run("", "settings", "show")
	if err != nil {
		t.Fatalf("Failed to show settings: %v\n%s", err, output)
	}
	if !strings.Contains(output, "metric") {
		t.Errorf("Expected 'metric' in settings, got: %s", output)
	}

	// Emergency contact
	output, err = run("", "contact", "set", "John", "5551234567")
	if err != nil {
		t.Fatalf("Failed to set contact: %v\n%s", err, output)
	}
	output, err = run("", "contact", "show")
	if err != nil {
		t.Fatalf("Failed to show contact: %v\n%s", err, output)
	}
	if !strings.Contains(output, "(555) 123-4567") {
		t.Errorf("Expected formatted phone in contact output, got: %s", output)
	}

	// Export to a file
	exportPath := filepath.Join(tmpDir, "backup.json")
	output, err = run("", "export", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	raw, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("Export file missing: %v", err)
	}
	if !strings.Contains(string(raw), "120/80") {
		t.Errorf("Expected health record in export, got: %s", raw)
	}

	// Logout ends the session but keeps the biometric link
	output, err = run("", "logout")
	if err != nil {
		t.Fatalf("Failed to logout: %v\n%s", err, output)
	}
	output, _ = run("", "whoami")
	if !strings.Contains(output, "Not logged in") {
		t.Errorf("Expected logged-out whoami, got: %s", output)
	}

	// Biometric restore: enable needs a session, so log back in first
	output, err = run("secret123\n", "login", "--email", "mary@example.com")
	if err != nil {
		t.Fatalf("Failed to login: %v\n%s", err, output)
	}
	output, err = run("", "biometric", "enable")
	if err != nil {
		t.Fatalf("Failed to enable biometric: %v\n%s", err, output)
	}
	run("", "logout")
	output, err = run("y\n", "login", "--biometric")
	if err != nil {
		t.Fatalf("Failed biometric login: %v\n%s", err, output)
	}
	if !strings.Contains(output, "mary@example.com") {
		t.Errorf("Expected welcome-back email, got: %s", output)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	eccaBinary := filepath.Join(projectRoot, "ecca-badpass")

	buildCmd := exec.Command("go", "build", "-o", eccaBinary, "./cmd/ecca")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(eccaBinary)

	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"ECCA_BCRYPT_COST=4",
	)

	run := func(stdin string, args ...string) (string, error) {
		cmd := exec.Command(eccaBinary, args...)
		cmd.Env = env
		cmd.Stdin = strings.NewReader(stdin)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	if output, err := run("secret123\n", "register", "--name", "Mary", "--email", "mary@example.com"); err != nil {
		t.Fatalf("Failed to register: %v\n%s", err, output)
	}
	run("", "logout")

	// Wrong password and unknown email fail the same way
	if _, err := run("wrong\n", "login", "--email", "mary@example.com"); err == nil {
		t.Error("Expected login to fail with wrong password")
	}
	if _, err := run("secret123\n", "login", "--email", "nobody@example.com"); err == nil {
		t.Error("Expected login to fail for unknown email")
	}
}
