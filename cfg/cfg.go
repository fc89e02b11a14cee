// Package cfg loads the declarative configuration of a selection stage from
// a YAML file with environment-variable overrides, and builds the configured
// selector. Model-driven selectors (cutoff) need injected model instances
// and are constructed programmatically instead.
package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/OlgaCeban/LightAutoML/selection"
)

// Selector types accepted in configuration.
const (
	TypeEmpty      = "empty"
	TypePredefined = "predefined"
	TypeComposed   = "composed"
)

// SelectorConfig describes one selector. Composed selectors nest their
// children.
type SelectorConfig struct {
	Type     string           `yaml:"type"`
	Columns  []string         `yaml:"columns"`
	Children []SelectorConfig `yaml:"children"`
}

// Settings is the resolved configuration of the selection stage.
type Settings struct {
	Selector    SelectorConfig
	DataPath    string
	MetricsPort int
}

// ConfigFile mirrors the YAML layout.
type ConfigFile struct {
	Selection SelectorConfig `yaml:"selection"`

	System struct {
		DataPath    string `yaml:"dataPath"`
		MetricsPort int    `yaml:"metricsPort"`
	} `yaml:"system"`
}

// Load reads settings from the file named by CONFIG_FILE, falling back to
// environment variables alone. A .env file, if present, is loaded first.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var s Settings
	if configPath := os.Getenv("CONFIG_FILE"); configPath != "" {
		loaded, err := loadFromYAML(configPath)
		if err != nil {
			return Settings{}, err
		}
		s = loaded
	}

	applyEnv(&s)

	if s.Selector.Type == "" {
		s.Selector.Type = TypeEmpty
	}
	if s.DataPath == "" {
		s.DataPath = "data"
	}
	return s, nil
}

func loadFromYAML(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return Settings{
		Selector:    config.Selection,
		DataPath:    config.System.DataPath,
		MetricsPort: config.System.MetricsPort,
	}, nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv("SELECTION_TYPE"); v != "" {
		s.Selector.Type = v
	}
	if v := os.Getenv("SELECTION_COLUMNS"); v != "" {
		cols := strings.Split(v, ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		s.Selector.Columns = cols
	}
	if v := os.Getenv("DATA_PATH"); v != "" {
		s.DataPath = v
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.MetricsPort = port
		} else {
			log.Warn().Str("value", v).Msg("invalid METRICS_PORT, keeping previous value")
		}
	}
}

// BuildSelector constructs the configured selector tree.
func BuildSelector(c SelectorConfig) (selection.Selector, error) {
	switch c.Type {
	case TypeEmpty, "":
		return selection.NewEmptySelector(), nil

	case TypePredefined:
		if len(c.Columns) == 0 {
			return nil, fmt.Errorf("predefined selector requires columns")
		}
		return selection.NewPredefinedSelector(c.Columns), nil

	case TypeComposed:
		if len(c.Children) == 0 {
			return nil, fmt.Errorf("composed selector requires children")
		}
		children := make([]selection.Selector, len(c.Children))
		for i, cc := range c.Children {
			child, err := BuildSelector(cc)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			children[i] = child
		}
		return selection.NewComposedSelector(children...), nil

	default:
		return nil, fmt.Errorf("unknown selector type %q", c.Type)
	}
}
