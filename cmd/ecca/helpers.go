// ABOUTME: Small output helpers shared by the list-style commands.
// ABOUTME: Flag-to-pointer conversion plus fixed-width text formatting.
package main

func optionalFlag(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	for len(s) < length {
		s += " "
	}
	return s
}
