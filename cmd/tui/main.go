package main

import (
	"fmt"
	"os"

	"github.com/billow-app/billow/cmd/tui/client"
	"github.com/billow-app/billow/cmd/tui/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	baseURL := os.Getenv("BILLOW_SERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	api, err := client.New(baseURL)
	if err != nil {
		fmt.Printf("Failed to initialize client: %v\n", err)
		os.Exit(1)
	}

	// A stored token skips the login screen when it still validates.
	var userName, userEmail string
	authenticated := false
	if api.Token() != "" {
		if profile, err := api.Me(); err == nil {
			authenticated = true
			userName = profile.Name
			userEmail = profile.Email
		}
	}

	p := tea.NewProgram(
		ui.NewModel(api, authenticated, userName, userEmail),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
