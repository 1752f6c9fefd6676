package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Defaults of the compound filter.
const (
	DefaultMinWordSize      = 5
	DefaultOnlyLongestMatch = false
	DefaultPreserveOriginal = true
)

// Parameter names accepted by ConfigFromArgs.
const (
	ParamMinWordSize      = "minWordSize"
	ParamOnlyLongestMatch = "onlyLongestMatch"
	ParamPreserveOriginal = "preserveOriginal"
)

// Config controls a CompoundFilter.
type Config struct {
	// MinWordSize is the minimum length in code points of a word to be
	// decomposed. Shorter words are passed through.
	MinWordSize int `mapstructure:"min_word_size"`
	// OnlyLongestMatch keeps only the decomposition with the fewest,
	// longest terms.
	OnlyLongestMatch bool `mapstructure:"only_longest_match"`
	// PreserveOriginal emits the original word in front of its parts.
	PreserveOriginal bool `mapstructure:"preserve_original"`
}

// DefaultConfig returns the filter defaults.
func DefaultConfig() Config {
	return Config{
		MinWordSize:      DefaultMinWordSize,
		OnlyLongestMatch: DefaultOnlyLongestMatch,
		PreserveOriginal: DefaultPreserveOriginal,
	}
}

// Validate checks a configuration filled from outside sources.
func (c Config) Validate() error {
	if c.MinWordSize < 0 {
		return fmt.Errorf("parameter %s must not be negative: %d", ParamMinWordSize, c.MinWordSize)
	}
	return nil
}

// ConfigFromArgs builds a configuration from a parameter map, as found in
// analyzer definitions. Missing parameters take their defaults; unknown
// parameters are an error.
func ConfigFromArgs(args map[string]string) (Config, error) {
	config := DefaultConfig()
	rest := make(map[string]string, len(args))
	for k, v := range args {
		rest[k] = v
	}
	if v, ok := rest[ParamMinWordSize]; ok {
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			return config, fmt.Errorf("parameter %s: %w", ParamMinWordSize, err)
		}
		config.MinWordSize = n
		if err := config.Validate(); err != nil {
			return config, err
		}
		delete(rest, ParamMinWordSize)
	}
	for name, target := range map[string]*bool{
		ParamOnlyLongestMatch: &config.OnlyLongestMatch,
		ParamPreserveOriginal: &config.PreserveOriginal,
	} {
		v, ok := rest[name]
		if !ok {
			continue
		}
		b, err := cast.ToBoolE(strings.TrimSpace(v))
		if err != nil {
			return config, fmt.Errorf("parameter %s: %w", name, err)
		}
		*target = b
		delete(rest, name)
	}
	if len(rest) > 0 {
		unknown := make([]string, 0, len(rest))
		for k := range rest {
			unknown = append(unknown, k)
		}
		sort.Strings(unknown)
		return config, fmt.Errorf("unknown parameters: %v", unknown)
	}
	return config, nil
}
