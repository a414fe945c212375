package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pleimann/swipe-pad/internal/utils"
)

type example struct {
	cmd  string
	desc string
}

// PrintUsage prints the top level help
func PrintUsage(version string) {
	name := utils.ExecutableName()

	PrintVersion(version)
	fmt.Println(Muted("Touch pad swipes as keystrokes for TUI applications"))
	fmt.Println()

	printSection("Usage", []string{
		name + " [flags]              Run the middleware",
		name + " list-devices         List available HID devices",
		name + " set-device [args]    Configure the touch pad",
		name + " trace [flags]        Print swipes as they are recognized",
		name + " help                 Show this help message",
	})

	printSection("Flags", []string{
		"-config string    Path to configuration file (default \"config.yaml\")",
		"-verbose          Enable verbose logging",
		"-version          Print version and exit",
	})

	fmt.Println(Bold("Commands"))
	cmdStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	for _, c := range []struct{ name, desc, more string }{
		{"list-devices", "List available HID devices, touch pads first", ""},
		{"set-device", "Set the touch pad in the config file", "set-device --help"},
		{"trace", "Bind to the touch pad and print every swipe", "trace --help"},
	} {
		fmt.Printf("  %s\n", cmdStyle.Render(c.name))
		fmt.Printf("      %s\n", c.desc)
		if c.more != "" {
			fmt.Printf("      Run %s for more information\n", Code(name+" "+c.more))
		}
		fmt.Println()
	}

	fmt.Println(Bold("Examples"))
	printExamples([]example{
		{name, "Run with default config.yaml"},
		{name + " -config my.yaml", "Run with custom config file"},
		{name + " list-devices", "List connected HID devices"},
		{name + " set-device", "Interactive device selection"},
		{name + " trace -raw", "Show raw touch samples too"},
	})
}

func printSection(title string, items []string) {
	fmt.Println(Bold(title))
	for _, item := range items {
		fmt.Printf("  %s\n", item)
	}
	fmt.Println()
}

func printExamples(examples []example) {
	cmdStyle := lipgloss.NewStyle().Foreground(ColorSecondary)

	width := 0
	for _, ex := range examples {
		width = max(width, len(ex.cmd))
	}
	for _, ex := range examples {
		padding := strings.Repeat(" ", width-len(ex.cmd)+2)
		fmt.Printf("  %s%s%s\n", cmdStyle.Render(ex.cmd), padding, Muted(ex.desc))
	}
	fmt.Println()
}

func printOptions(options [][2]string) {
	fmt.Println(Bold("Options"))
	for _, o := range options {
		fmt.Printf("  %s    %s\n", SubtitleStyle.Render(o[0]), o[1])
	}
	fmt.Println()
}

// PrintSetDeviceUsage prints help for set-device
func PrintSetDeviceUsage() {
	name := utils.ExecutableName()

	fmt.Println(Bold("Usage:"), name+" set-device [options] [vendor_id product_id]")
	fmt.Println()
	fmt.Println("Set the touch pad in the configuration file.")
	fmt.Println()
	fmt.Println(Muted("With vendor_id and product_id, updates the config directly."))
	fmt.Println(Muted("Otherwise, lists connected devices to choose from."))
	fmt.Println(Muted("A missing config file is created with default swipes."))
	fmt.Println()

	fmt.Println(Bold("Arguments"))
	fmt.Printf("  %s    Device vendor ID (hex with 0x prefix or decimal)\n", SubtitleStyle.Render("vendor_id"))
	fmt.Printf("  %s   Device product ID (hex with 0x prefix or decimal)\n", SubtitleStyle.Render("product_id"))
	fmt.Println()

	printOptions([][2]string{
		{"-config string", "Path to configuration file (default \"config.yaml\")"},
	})

	fmt.Println(Bold("Examples"))
	printExamples([]example{
		{name + " set-device", "Interactive selection"},
		{name + " set-device 0x1234 0x5678", "Direct specification"},
		{name + " set-device -config my.yaml", "Use different config"},
	})
}

// PrintTraceUsage prints help for trace
func PrintTraceUsage() {
	name := utils.ExecutableName()

	fmt.Println(Bold("Usage:"), name+" trace [options]")
	fmt.Println()
	fmt.Println("Open the configured touch pad and print swipes as they are recognized.")
	fmt.Println(Muted("No keys are sent and no TUI is started. Ctrl+C to stop."))
	fmt.Println()

	printOptions([][2]string{
		{"-config string", "Path to configuration file (default \"config.yaml\")"},
		{"-raw          ", "Also print every raw touch sample"},
		{"-axis string  ", "Only print swipes on one axis: x, y, horizontal or vertical"},
		{"-verbose      ", "Enable verbose logging"},
	})
}

// PrintVersion prints the program name and version
func PrintVersion(version string) {
	banner := TitleStyle.Render(utils.ExecutableName())
	fmt.Printf("%s %s\n", banner, SuccessStyle.Render("v"+version))
}

func PrintError(message string) {
	fmt.Println(Error(message))
}

// PrintFatalError prints an error headline with detail under it
func PrintFatalError(context, message string) {
	fmt.Println()
	fmt.Println(Error(context))
	fmt.Printf("  %s\n", Muted(message))
	fmt.Println()
}
