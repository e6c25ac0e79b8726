package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pwgo/paycheck-waterfall/internal/config"
	"github.com/pwgo/paycheck-waterfall/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: pwgo-tui <plan-file>")
		os.Exit(1)
	}
	planPath := os.Args[1]

	plan, err := config.NewInputParser().LoadFromFile(planPath)
	if err != nil {
		fmt.Printf("Error loading plan: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(plan),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
