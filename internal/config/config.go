package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/panoscope/internal/app"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string // YAML file the settings were layered on, if any
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the flag names so a YAML file can set any of them.
type fileConfig struct {
	BaseURL     string        `yaml:"base-url"`
	APIVersion  string        `yaml:"api-version"`
	Location    string        `yaml:"location"`
	APIKey      string        `yaml:"api-key"`
	APIKeyFile  string        `yaml:"api-key-file"`
	Insecure    bool          `yaml:"insecure"`
	MinInterval time.Duration `yaml:"min-interval"`
	Timeout     time.Duration `yaml:"timeout"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Footer      bool          `yaml:"footer"`
	Verbose     bool          `yaml:"verbose"`
	Trace       bool          `yaml:"trace"`
	LogFile     string        `yaml:"log-file"`
}

const (
	envConfigFile  = "PANOSCOPE_CONFIG"
	envBaseURL     = "PANOSCOPE_BASE_URL"
	envAPIVersion  = "PANOSCOPE_API_VERSION"
	envLocation    = "PANOSCOPE_LOCATION"
	envAPIKey      = "PANOSCOPE_API_KEY"
	envAPIKeyFile  = "PANOSCOPE_API_KEY_FILE"
	envInsecure    = "PANOSCOPE_INSECURE"
	envMinInterval = "PANOSCOPE_MIN_INTERVAL"
	envTimeout     = "PANOSCOPE_TIMEOUT"
	envWidth       = "PANOSCOPE_WIDTH"
	envHeight      = "PANOSCOPE_HEIGHT"
	envShowFooter  = "PANOSCOPE_FOOTER"
	envVerbose     = "PANOSCOPE_VERBOSE"
	envTrace       = "PANOSCOPE_TRACE"
	envLogFile     = "PANOSCOPE_LOG_FILE"
)

const redacted = "[redacted]"

var (
	ErrNoBaseURL = errors.New("base URL is required (--base-url or " + envBaseURL + ")")
	ErrNoAPIKey  = errors.New("API key is required (--api-key, --api-key-file or " + envAPIKey + ")")
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the YAML file named by --config.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := configPath(args, env)
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("panoscope", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a YAML configuration file")
	baseURL := fs.String("base-url", envOrDefault(env, envBaseURL, file.BaseURL), "Panorama console URL, e.g. https://panorama.example.com")
	apiVersion := fs.String("api-version", envOrDefault(env, envAPIVersion, file.APIVersion), "PAN-OS REST API version (default v11.0)")
	location := fs.String("location", envOrDefault(env, envLocation, file.Location), "object location query value (default shared)")
	apiKey := fs.String("api-key", envOrDefault(env, envAPIKey, file.APIKey), "PAN-OS API key sent as X-PAN-KEY")
	apiKeyFile := fs.String("api-key-file", envOrDefault(env, envAPIKeyFile, file.APIKeyFile), "read the API key from this file")
	insecure := fs.Bool("insecure", envOrBool(env, envInsecure, file.Insecure), "skip TLS certificate verification")
	minInterval := fs.Duration("min-interval", envOrDuration(env, envMinInterval, file.MinInterval), "minimum spacing between API requests (0 disables)")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, file.Timeout), "per-request timeout (0 means none)")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.Footer), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, file.Verbose), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *minInterval < 0 {
		return Config{}, fmt.Errorf("min-interval must be >= 0 (got %s)", *minInterval)
	}
	if *timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be >= 0 (got %s)", *timeout)
	}

	key := strings.TrimSpace(*apiKey)
	keySource := ""
	if key != "" {
		keySource = "inline"
	}
	if key == "" && strings.TrimSpace(*apiKeyFile) != "" {
		data, err := os.ReadFile(*apiKeyFile)
		if err != nil {
			return Config{}, fmt.Errorf("read api key file: %w", err)
		}
		key = strings.TrimSpace(string(data))
		keySource = "file"
	}

	cfg := Config{
		App: app.Config{
			BaseURL:     strings.TrimSpace(*baseURL),
			APIVersion:  strings.TrimSpace(*apiVersion),
			Location:    strings.TrimSpace(*location),
			APIKey:      key,
			Insecure:    *insecure,
			MinInterval: *minInterval,
			Timeout:     *timeout,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"baseURL":     *baseURL,
			"apiVersion":  *apiVersion,
			"location":    *location,
			"apiKey":      redact(key),
			"apiKeyFile":  *apiKeyFile,
			"keySource":   keySource,
			"insecure":    strconv.FormatBool(*insecure),
			"minInterval": minInterval.String(),
			"timeout":     timeout.String(),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
		},
		Args: redactArgs(args),
	}

	return cfg, nil
}

// configPath finds --config ahead of the real parse, since the file
// supplies the flag defaults.
func configPath(args []string, env map[string]string) string {
	path := envOrDefault(env, envConfigFile, "")
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		switch {
		case name == "config" && i+1 < len(args):
			path = args[i+1]
			i++
		case strings.HasPrefix(name, "config="):
			path = strings.TrimPrefix(name, "config=")
		}
	}
	return strings.TrimSpace(path)
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	if path == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}

// redactArgs hides the value of --api-key in the recorded argv.
func redactArgs(args []string) []string {
	out := append([]string(nil), args...)
	for i := 0; i < len(out); i++ {
		name := strings.TrimLeft(out[i], "-")
		if name == out[i] {
			continue
		}
		switch {
		case name == "api-key" && i+1 < len(out):
			out[i+1] = redacted
			i++
		case strings.HasPrefix(name, "api-key="):
			out[i] = strings.TrimSuffix(out[i], name) + "api-key=" + redacted
		}
	}
	return out
}

// Redacted returns a copy safe to write to trace logs.
func (c Config) Redacted() Config {
	c.App.APIKey = redact(c.App.APIKey)
	return c
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.BaseURL == "" {
		return ErrNoBaseURL
	}
	if cfg.App.APIKey == "" {
		return ErrNoAPIKey
	}
	return nil
}
