package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/panoscope/internal/panos"
	"github.com/atomicstack/panoscope/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	BaseURL     string
	APIVersion  string
	Location    string
	APIKey      string
	Insecure    bool
	MinInterval time.Duration
	Timeout     time.Duration
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
}

// ClientOptions maps the configuration onto the PAN-OS client.
func (c Config) ClientOptions() panos.Options {
	return panos.Options{
		BaseURL:     c.BaseURL,
		APIVersion:  c.APIVersion,
		Location:    c.Location,
		APIKey:      c.APIKey,
		Insecure:    c.Insecure,
		Timeout:     c.Timeout,
		MinInterval: c.MinInterval,
	}
}

// NewModel builds the UI model backed by a PAN-OS client. Lookups started
// by the model stop when ctx is cancelled.
func NewModel(ctx context.Context, cfg Config) (*ui.Model, error) {
	client, err := panos.New(cfg.ClientOptions())
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return ui.NewModel(ui.Options{
		Source:     client,
		Context:    ctx,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	}), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
