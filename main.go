package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"jira-assistant-cli/internal/api"
	"jira-assistant-cli/internal/config"
	"jira-assistant-cli/internal/display"
	"jira-assistant-cli/internal/service"
	"jira-assistant-cli/internal/tui"
)

const version = "0.1.0"

var activeProfile string

func main() {
	args := os.Args[1:]

	// Parse global flags first (--profile)
	args = parseGlobalFlags(args)

	// No args → launch interactive mode (default)
	if len(args) == 0 {
		if err := tui.Run(version, activeProfile); err != nil {
			display.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	// Explicit -i flag also launches interactive mode
	if args[0] == "-i" || args[0] == "--interactive" || args[0] == "interactive" {
		if err := tui.Run(version, activeProfile); err != nil {
			display.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	var err error

	switch args[0] {
	case "query", "ask":
		err = cmdQuery(args[1:])
	case "validate":
		err = cmdValidate(args[1:])
	case "security":
		err = cmdSecurity(args[1:])
	case "health":
		err = cmdHealth(args[1:])
	case "connections":
		err = cmdConnections(args[1:])
	case "set":
		err = cmdSet(args[1:])
	case "config":
		err = cmdConfig()
	case "profiles":
		err = cmdProfiles()
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Printf("jira-assistant %s\n", version)
	default:
		display.Error(fmt.Sprintf("Unknown command: %s", args[0]))
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		display.Error(err.Error())
		os.Exit(1)
	}
}

// ─── query ──────────────────────────────────────────────────────────────────

func cmdQuery(args []string) error {
	var debugMode bool
	var positional []string

	for _, arg := range args {
		if arg == "--debug" {
			debugMode = true
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) == 0 {
		fmt.Println("Usage: jira-assistant query <question>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println(`  jira-assistant query "Show me open bugs in PROJ"`)
		fmt.Println(`  jira-assistant query "What is assigned to me this sprint?"`)
		return nil
	}
	question := strings.TrimSpace(strings.Join(positional, " "))
	if question == "" {
		return fmt.Errorf("query text is empty")
	}

	client, err := newClient(debugMode)
	if err != nil {
		return err
	}

	display.Spinner("Searching Jira issues...")
	data, err := client.Query(question)
	display.ClearLine()
	if err != nil {
		return err
	}

	printSearch(service.BuildSearchDisplay(service.DefaultEngine(), data))
	return nil
}

func printSearch(d service.SearchDisplay) {
	if d.NoResults {
		display.Warn("No issues found matching your query.")
		return
	}

	display.Header(fmt.Sprintf("Found %d issue(s)", d.Total))

	for _, issue := range d.Issues {
		fmt.Printf("\n  %s%s%s %s\n", display.Bold, issue.Key, display.Reset, issue.Summary)
		display.Info("Status:", display.StatusLabel(issue.Status))
		display.Info("Type:", issue.Type)
		display.Info("Assignee:", issue.Assignee)
		if issue.Priority != "" {
			display.Info("Priority:", issue.Priority)
		}
		if issue.Created != "" {
			display.Info("Created:", issue.Created)
		}
		if issue.Excerpt != "" {
			fmt.Printf("    %s%s%s\n", display.Gray, issue.Excerpt, display.Reset)
		}
	}

	if d.Remaining > 0 {
		fmt.Printf("\n  %s... and %d more issues%s\n", display.Dim, d.Remaining, display.Reset)
	}
	fmt.Println()
}

// ─── validate ───────────────────────────────────────────────────────────────

func cmdValidate(args []string) error {
	var debugMode bool
	var positional []string

	for _, arg := range args {
		if arg == "--debug" {
			debugMode = true
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) < 2 {
		fmt.Println("Usage: jira-assistant validate <order-number> <location-code>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  jira-assistant validate ORD-1001 WH-EAST")
		fmt.Println("  jira-assistant validate 20044511 dal01")
		return nil
	}

	orderNumber := strings.TrimSpace(positional[0])
	locationCode := strings.TrimSpace(positional[1])
	if orderNumber == "" || locationCode == "" {
		return fmt.Errorf("order number and location code are required")
	}

	client, err := newClient(debugMode)
	if err != nil {
		return err
	}

	display.Spinner("Validating order...")
	result, err := client.ValidateOrder(orderNumber, locationCode)
	display.ClearLine()
	if err != nil {
		return err
	}

	printValidation(service.BuildValidationDisplay(service.DefaultEngine(), result))
	return nil
}

func printValidation(d service.ValidationDisplay) {
	display.Header(fmt.Sprintf("Order %s @ %s", d.OrderNumber, d.LocationCode))
	fmt.Printf("  %s\n", display.ValidLabel(d.IsValid))

	if len(d.MissingFields) > 0 {
		fmt.Println()
		display.Warn("Missing Fields: " + strings.Join(d.MissingFields, ", "))
	}

	if len(d.Mandatory) > 0 {
		fmt.Println()
		display.SubHeader("  Mandatory Fields")
		for _, row := range d.Mandatory {
			if row.IsValid {
				display.Success(row.Label)
			} else {
				fmt.Printf("  %s✗%s %s\n", display.Red, display.Reset, row.Label)
			}
		}
	}

	if len(d.Details) > 0 {
		fmt.Println()
		display.SubHeader("  Order Details")
		for _, row := range d.Details {
			display.Info(row.Label+":", row.Value)
		}
	}
	fmt.Println()
}

// ─── security ───────────────────────────────────────────────────────────────

func cmdSecurity(args []string) error {
	var debugMode bool
	var positional []string

	for _, arg := range args {
		if arg == "--debug" {
			debugMode = true
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) == 0 {
		fmt.Println("Usage: jira-assistant security <issue-key>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  jira-assistant security PROJ-123")
		return nil
	}

	issueKey := strings.TrimSpace(positional[0])
	if issueKey == "" {
		return fmt.Errorf("issue key is required")
	}

	client, err := newClient(debugMode)
	if err != nil {
		return err
	}

	display.Spinner("Analyzing security...")
	result, err := client.AnalyzeSecurity(issueKey)
	display.ClearLine()
	if err != nil {
		return err
	}

	printSecurity(service.BuildSecurityDisplay(result))
	return nil
}

func printSecurity(d service.SecurityDisplay) {
	display.Header("Security Analysis: " + d.IssueKey)
	display.Info("Risk Level:", display.RiskLabel(d.RiskLabel))

	if d.Analysis != "" {
		fmt.Println()
		for _, line := range wrapText(d.Analysis, 76) {
			fmt.Printf("  %s\n", line)
		}
	}

	if len(d.Recommendations) > 0 {
		fmt.Println()
		display.SubHeader("  Recommendations")
		for i, rec := range d.Recommendations {
			fmt.Printf("  %s%d.%s %s\n", display.Cyan, i+1, display.Reset, rec)
		}
	}
	fmt.Println()
}

// ─── health ─────────────────────────────────────────────────────────────────

func cmdHealth(args []string) error {
	debugMode := len(args) > 0 && args[0] == "--debug"

	client, err := newClient(debugMode)
	if err != nil {
		return err
	}

	display.Spinner("Checking backend health...")
	health, err := client.Health()
	display.ClearLine()
	if err != nil {
		return err
	}

	display.Header("Backend Health")
	display.Info("Status:", health.Status)
	display.Info("Jira:", display.ConfiguredLabel(health.JiraConfigured))
	display.Info("OpenAI:", display.ConfiguredLabel(health.OpenAIConfigured))
	display.Info("Oracle:", display.ConfiguredLabel(health.OracleConfigured))

	if len(health.Services) > 0 {
		fmt.Println()
		display.SubHeader("  Services")
		for _, name := range sortedKeys(health.Services) {
			if health.Services[name] {
				display.Success(name)
			} else {
				fmt.Printf("  %s✗%s %s\n", display.Red, display.Reset, name)
			}
		}
	}
	fmt.Println()

	return nil
}

// ─── connections ────────────────────────────────────────────────────────────

func cmdConnections(args []string) error {
	debugMode := len(args) > 0 && args[0] == "--debug"

	client, err := newClient(debugMode)
	if err != nil {
		return err
	}

	display.Spinner("Testing backend connections...")
	conns, err := client.TestConnections()
	display.ClearLine()
	if err != nil {
		return err
	}

	display.Header("Connection Tests")

	for _, name := range sortedKeys(conns) {
		test := conns[name]
		line := fmt.Sprintf("  %s: %s", name, display.ConnectionLabel(test.Success))
		if test.Success && test.Message != "" {
			line += display.Dim + " — " + test.Message + display.Reset
		}
		if !test.Success && test.Error != "" {
			line += " — " + test.Error
		}
		fmt.Println(line)
	}
	fmt.Println()

	return nil
}

// ─── set ────────────────────────────────────────────────────────────────────

func cmdSet(args []string) error {
	if len(args) < 2 {
		fmt.Println("Usage: jira-assistant set <key> <value>")
		fmt.Println()
		fmt.Println("Keys:")
		fmt.Println("  server   Assistant backend URL  (e.g. http://localhost:5000)")
		return nil
	}

	cfg, err := config.Load(activeProfile)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]

	switch key {
	case "server":
		cfg.Server = value
	default:
		return fmt.Errorf("unknown config key: %s (valid: server)", key)
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	display.Success(fmt.Sprintf("%s set to %s", key, value))
	return nil
}

// ─── config ─────────────────────────────────────────────────────────────────

func cmdConfig() error {
	cfg, err := config.Load(activeProfile)
	if err != nil {
		return err
	}

	display.Header("Jira AI Assistant Configuration")

	display.Info("Profile:", config.ProfileName(activeProfile))

	server := cfg.Server
	if server == "" {
		server = display.Dim + "(not set)" + display.Reset
	}
	display.Info("Server:", server)
	fmt.Println()

	return nil
}

// ─── profiles ───────────────────────────────────────────────────────────────

func cmdProfiles() error {
	profiles, err := config.ListProfiles()
	if err != nil {
		return err
	}

	display.Header(fmt.Sprintf("Profiles (%d)", len(profiles)))

	if len(profiles) == 0 {
		display.Warn("No profiles found.")
		return nil
	}

	for _, p := range profiles {
		marker := " "
		if p == config.ProfileName(activeProfile) {
			marker = display.Green + "●" + display.Reset
		}
		fmt.Printf("  %s %s\n", marker, p)
	}
	fmt.Println()

	return nil
}

// ─── helpers ────────────────────────────────────────────────────────────────

func newClient(debug bool) (*api.Client, error) {
	cfg, err := config.Load(activeProfile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := api.NewClient(cfg)
	client.SetDebug(debug)
	return client, nil
}

func wrapText(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}
		words := strings.Fields(paragraph)
		current := ""
		for _, word := range words {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseGlobalFlags(args []string) []string {
	var remaining []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--profile" {
			if i+1 < len(args) {
				i++
				activeProfile = args[i]
			}
			continue
		}
		remaining = append(remaining, args[i])
	}
	return remaining
}

// ─── usage ──────────────────────────────────────────────────────────────────

func printUsage() {
	fmt.Printf(`%sJira AI Assistant%s — terminal client (v%s)

%sUsage:%s
  jira-assistant                                      Launch interactive mode (default)
  jira-assistant [--profile <name>] <command> [args]  Run a specific command

%sGetting Started:%s
  set server <url>          Point at the assistant backend
  config                    Show current configuration
  health                    Check backend health
  connections               Test the backend's Jira and Oracle connections

%sAssistant:%s
  query|ask "<question>"    Ask about Jira issues in natural language
  validate <order> <loc>    Validate an order's mandatory fields
  security <issue-key>      Run a security impact analysis for an issue

%sProfiles:%s
  profiles                  List all config profiles
  --profile <name>          Use a named config profile (default: unnamed)

%sExamples:%s
  jira-assistant                                      # Start interactive mode
  jira-assistant set server http://localhost:5000
  jira-assistant query "Show me open bugs in PROJ"
  jira-assistant validate ORD-1001 WH-EAST
  jira-assistant security PROJ-123
  jira-assistant --profile staging health

`, display.Bold, display.Reset, version,
		display.Cyan, display.Reset,
		display.Cyan, display.Reset,
		display.Cyan, display.Reset,
		display.Cyan, display.Reset,
		display.Cyan, display.Reset)
}
