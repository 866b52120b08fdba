package display

import (
	"fmt"
	"os"
	"strings"
)

const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"
)

func Header(text string) {
	fmt.Printf("\n%s%s%s\n", Bold+Cyan, text, Reset)
	fmt.Println(strings.Repeat("─", min(len(text)+4, 80)))
}

func SubHeader(text string) {
	fmt.Printf("%s%s%s\n", Bold+White, text, Reset)
}

func Success(text string) {
	fmt.Printf("%s✓%s %s\n", Green, Reset, text)
}

func Error(text string) {
	fmt.Fprintf(os.Stderr, "%s✗%s %s\n", Red, Reset, text)
}

func Warn(text string) {
	fmt.Printf("%s!%s %s\n", Yellow, Reset, text)
}

func Info(label, value string) {
	fmt.Printf("  %s%-20s%s %s\n", Dim, label, Reset, value)
}

func Spinner(text string) {
	fmt.Printf("\r%s⟳%s %s", Yellow, Reset, text)
}

func ClearLine() {
	fmt.Print("\r\033[K")
}

// Risk level display for security analyses
func RiskLabel(level string) string {
	labels := map[string]string{
		"low":      Green + "🟢 LOW" + Reset,
		"medium":   Yellow + "🟡 MEDIUM" + Reset,
		"high":     Red + "🟠 HIGH" + Reset,
		"critical": Bold + Red + "🔴 CRITICAL" + Reset,
	}
	if label, ok := labels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return label
	}
	return Gray + level + Reset
}

// Workflow status display for issue search results
func StatusLabel(status string) string {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "progress"), strings.Contains(s, "development"):
		return Yellow + status + Reset
	case strings.Contains(s, "done"), strings.Contains(s, "closed"), strings.Contains(s, "resolved"):
		return Green + status + Reset
	default:
		return Blue + status + Reset
	}
}

func ValidLabel(valid bool) string {
	if valid {
		return Green + "✅ VALID" + Reset
	}
	return Red + "❌ INVALID" + Reset
}

func ConnectionLabel(ok bool) string {
	if ok {
		return Green + "✓ Connected" + Reset
	}
	return Red + "✗ Failed" + Reset
}

func ConfiguredLabel(configured bool) string {
	if configured {
		return Green + "configured" + Reset
	}
	return Yellow + "not configured" + Reset
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
