package format

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configuration drives how values are rendered in failure messages.
type Configuration struct {
	// MaxElements is the number of elements of a slice, array or map that are rendered
	// before the representation is cut with "...". Zero or less renders everything.
	MaxElements int `mapstructure:"max_elements"`
	// MaxLineLength cuts single line representations longer than this. Zero or less disables it.
	MaxLineLength int `mapstructure:"max_line_length"`
}

const envPrefix = "ASSERTIONS"

var (
	current     Configuration
	currentOnce sync.Once
	currentLock sync.RWMutex
)

func DefaultConfiguration() Configuration {
	return Configuration{
		MaxElements:   1000,
		MaxLineLength: 0,
	}
}

// LoadConfiguration reads the configuration from the ASSERTIONS_MAX_ELEMENTS and
// ASSERTIONS_MAX_LINE_LENGTH environment variables, falling back to the defaults.
func LoadConfiguration() (Configuration, error) {
	defaults := DefaultConfiguration()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("max_elements", defaults.MaxElements)
	v.SetDefault("max_line_length", defaults.MaxLineLength)

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, errors.Wrap(err, "invalid assertions configuration in the environment")
	}
	return cfg, nil
}

// Configure replaces the configuration used by Represent.
func Configure(cfg Configuration) {
	currentOnce.Do(func() {})
	currentLock.Lock()
	defer currentLock.Unlock()
	current = cfg
}

// Current returns the configuration in use, loading it from the environment on first use.
func Current() Configuration {
	currentOnce.Do(func() {
		cfg, err := LoadConfiguration()
		if err != nil {
			logger.Error(err, "using the default configuration")
		}
		currentLock.Lock()
		current = cfg
		currentLock.Unlock()
	})
	currentLock.RLock()
	defer currentLock.RUnlock()
	return current
}
