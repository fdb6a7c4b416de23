package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bindkit-dev/bindkit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "bindkit.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultEventsAttr is the default event-list attribute name.
	DefaultEventsAttr = "data-events"

	// DefaultHandlersAttr is the default handler-list attribute name.
	DefaultHandlersAttr = "data-handlers"

	// DefaultDelimiter is the default list delimiter.
	DefaultDelimiter = ","

	// PortEnvVar overrides the configured port when set.
	PortEnvVar = "BINDKIT_PORT"
)

// Config represents the complete bindkit.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Host is the host the server binds to.
	Host string `json:"host,omitempty"`

	// Port is the server port.
	Port int `json:"port,omitempty"`

	// Document is the path to the HTML document to serve and bind.
	Document string `json:"document,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `json:"static,omitempty"`

	// Binding contains binding pass configuration.
	Binding BindingConfig `json:"binding,omitempty"`

	// Metrics enables the Prometheus /metrics endpoint.
	Metrics bool `json:"metrics,omitempty"`

	// LogLevel is the slog level: debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for static files (default: "/static").
	Prefix string `json:"prefix,omitempty"`
}

// BindingConfig contains binding pass configuration.
type BindingConfig struct {
	// EventsAttr is the event-list attribute name.
	EventsAttr string `json:"eventsAttr,omitempty"`

	// HandlersAttr is the handler-list attribute name.
	HandlersAttr string `json:"handlersAttr,omitempty"`

	// Delimiter separates list tokens.
	Delimiter string `json:"delimiter,omitempty"`

	// FailFast aborts the pass on the first element error.
	FailFast bool `json:"failFast,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Host: DefaultHost,
		Port: DefaultPort,
		Static: StaticConfig{
			Prefix: "/static",
		},
		Binding: BindingConfig{
			EventsAttr:   DefaultEventsAttr,
			HandlersAttr: DefaultHandlersAttr,
			Delimiter:    DefaultDelimiter,
		},
		LogLevel: "info",
	}
}

// Load reads configuration from the specified directory.
// It looks for bindkit.json in the directory; a missing file yields
// the defaults rather than an error.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := New()
		cfg.applyEnv()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("B120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("B120").
			WithDetail("Failed to parse bindkit.json: " + err.Error()).
			WithSuggestion("Check that bindkit.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static"
	}
	if c.Binding.EventsAttr == "" {
		c.Binding.EventsAttr = DefaultEventsAttr
	}
	if c.Binding.HandlersAttr == "" {
		c.Binding.HandlersAttr = DefaultHandlersAttr
	}
	if c.Binding.Delimiter == "" {
		c.Binding.Delimiter = DefaultDelimiter
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// applyEnv applies environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv(PortEnvVar); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("B121").WithSubject(strconv.Itoa(c.Port))
	}
	if err := validAttrName(c.Binding.EventsAttr); err != nil {
		return err
	}
	if err := validAttrName(c.Binding.HandlersAttr); err != nil {
		return err
	}
	if c.Binding.EventsAttr == c.Binding.HandlersAttr {
		return errors.New("B122").
			WithSubject(c.Binding.EventsAttr).
			WithDetail("The event-list and handler-list attributes must differ.")
	}
	return nil
}

func validAttrName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\n\"'<>/=") {
		return errors.New("B122").WithSubject(name)
	}
	return nil
}

// Addr returns the host:port address the server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
