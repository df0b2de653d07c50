package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/atomicstack/panoscope/internal/app"
	"github.com/atomicstack/panoscope/internal/config"
	"github.com/atomicstack/panoscope/internal/logging"
	"github.com/atomicstack/panoscope/internal/logging/events"
	"github.com/atomicstack/panoscope/internal/panos"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// consoleDetails describes the Panorama endpoint a session talks to.
type consoleDetails struct {
	BaseURL     string `json:"base_url"`
	Host        string `json:"host,omitempty"`
	APIVersion  string `json:"api_version"`
	Location    string `json:"location"`
	Insecure    bool   `json:"insecure,omitempty"`
	MinInterval string `json:"min_interval,omitempty"`
	Timeout     string `json:"timeout,omitempty"`
	KeySource   string `json:"key_source,omitempty"`
}

func describeConsole(cfg config.Config) consoleDetails {
	c := consoleDetails{
		BaseURL:    cfg.App.BaseURL,
		APIVersion: cfg.App.APIVersion,
		Location:   cfg.App.Location,
		Insecure:   cfg.App.Insecure,
		KeySource:  cfg.Flags["keySource"],
	}
	if c.APIVersion == "" {
		c.APIVersion = panos.DefaultAPIVersion
	}
	if c.Location == "" {
		c.Location = panos.DefaultLocation
	}
	if u, err := url.Parse(cfg.App.BaseURL); err == nil {
		c.Host = u.Host
	}
	if cfg.App.MinInterval > 0 {
		c.MinInterval = cfg.App.MinInterval.String()
	}
	if cfg.App.Timeout > 0 {
		c.Timeout = cfg.App.Timeout.String()
	}
	return c
}

// startupTracePayload records where the session points and what terminal it
// got, with the API key redacted.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg.Redacted(),
		"console": describeConsole(cfg),
		"tty":     probeTerminal(cfg.App.Width, cfg.App.Height),
		"logFile": logging.Path(),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	return payload
}

// terminalDetails tells whether the window desktop gets a real terminal and
// how large it will be.
type terminalDetails struct {
	Viewport viewportSize `json:"viewport"`
	Probes   []fdProbe    `json:"probes"`
}

type viewportSize struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
}

type fdProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal checks the standard descriptors. Fixed --width/--height
// values override whatever size the terminal reports.
func probeTerminal(width, height int) terminalDetails {
	fds := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	out := terminalDetails{Probes: make([]fdProbe, 0, len(fds))}
	for _, fd := range fds {
		p := fdProbe{Name: fd.name}
		n := int(fd.file.Fd())
		if n >= 0 && term.IsTerminal(n) {
			p.IsTerminal = true
			w, h, err := term.GetSize(n)
			if err != nil {
				p.Error = err.Error()
			} else {
				p.Width, p.Height = w, h
				if out.Viewport.Source == "" {
					out.Viewport = viewportSize{Width: w, Height: h, Source: fd.name}
				}
			}
		}
		out.Probes = append(out.Probes, p)
	}
	if width > 0 {
		out.Viewport.Width = width
		out.Viewport.Source = "flags"
	}
	if height > 0 {
		out.Viewport.Height = height
		out.Viewport.Source = "flags"
	}
	return out
}
