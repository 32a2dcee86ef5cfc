package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mpgo/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	// Accept the path as a flag or a positional argument; with neither the
	// TUI runs the built-in example configuration.
	configPath := *configFlag
	if configPath == "" && flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Configuration file not found: %s\n", configPath)
			os.Exit(1)
		}
	}

	model := tui.NewModel(configPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
