package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wordmuse/internal/datamuse"
	"wordmuse/internal/trace"
	"wordmuse/internal/ui"
)

func main() {
	ctx := context.Background()

	provider, err := trace.Init(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up tracing: %v\n", err)
		os.Exit(1)
	}
	defer provider.Shutdown(ctx)

	opts := []datamuse.Option{datamuse.WithTracer(provider.Tracer())}
	if base := os.Getenv("WORDMUSE_API_URL"); base != "" {
		opts = append(opts, datamuse.WithBaseURL(base))
	}
	client := datamuse.New(opts...)

	model := ui.NewAppModel(client).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
