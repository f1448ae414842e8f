package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadSuffixes reads the enabled domain suffixes from a JSON configuration
// file. Two layouts are accepted, optionally wrapped in an object under a
// "suffixes" key:
//
//  1. ["com", "io"]
//  2. [{"suffix": "com", "enabled": true}]
//
// Suffixes are trimmed, stripped of leading dots and lower-cased; disabled or
// empty entries are dropped. Order follows the source. An unreadable or
// malformed source, or one that leaves no suffix enabled, is a ConfigError.
func LoadSuffixes(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Reason: fmt.Sprintf("cannot read file: %v", err)}
	}

	var doc any
	if err := json.Unmarshal(bytes.TrimPrefix(raw, utf8BOM), &doc); err != nil {
		return nil, &ConfigError{Source: path, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if wrapper, ok := doc.(map[string]any); ok {
		doc = wrapper["suffixes"]
	}
	entries, ok := doc.([]any)
	if !ok {
		return nil, &ConfigError{Source: path, Reason: "expected a suffixes array"}
	}

	var suffixes []string
	for _, entry := range entries {
		var suffix string
		enabled := true
		switch v := entry.(type) {
		case string:
			suffix = v
		case map[string]any:
			suffix, _ = v["suffix"].(string)
			if flag, ok := v["enabled"].(bool); ok {
				enabled = flag
			}
		default:
			continue
		}
		suffix = strings.TrimLeft(strings.TrimSpace(suffix), ".")
		if suffix == "" || !enabled {
			continue
		}
		suffixes = append(suffixes, strings.ToLower(suffix))
	}

	if len(suffixes) == 0 {
		return nil, &ConfigError{Source: path, Reason: "no enabled domain suffixes"}
	}
	return suffixes, nil
}
