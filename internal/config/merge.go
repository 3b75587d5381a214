package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySearch  = "search"
	keyOutput  = "output"
	keyLogging = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keySearch:  true,
	keyOutput:  true,
	keyLogging: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level sections onto target.
// A section present in the file replaces the whole target section; keys it leaves out
// take their default values, not the target's current ones. Absent sections are left
// unchanged.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling config section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying config section %q from %s: %w", key, path, err)
		}
	}

	return nil
}

// unmarshalSection decodes data onto a fresh default section and stores it in target.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keySearch:
		v := defaultSearch()
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Search = v
		return nil
	case keyOutput:
		v := defaultOutput()
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Output = v
		return nil
	case keyLogging:
		v := defaultLogging()
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
