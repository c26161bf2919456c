package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RCName is the rc file name looked up in the working directory first and
// the user's home directory second.
const RCName = ".standuprc"

// Config holds the optional settings an rc file can supply. Empty strings
// and a nil repo list mean "unset"; Copy defaults to true unless the file
// says otherwise.
type Config struct {
	Format string
	Team   string
	Copy   bool
	Repos  []string

	// Source is the rc file the values came from, empty when running on
	// defaults.
	Source string
}

func Default() Config {
	return Config{Copy: true}
}

// rcPathsFunc is a function variable to allow testing with different paths
var rcPathsFunc = defaultRCPaths

func defaultRCPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, RCName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, RCName))
	}
	return paths
}

// Paths returns the rc file locations in precedence order.
func Paths() []string {
	return rcPathsFunc()
}

// Load reads the first rc file that exists. A file that cannot be parsed
// falls back to defaults rather than failing the run.
func Load() Config {
	for _, path := range rcPathsFunc() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		cfg, err := parse(data)
		if err != nil {
			return Default()
		}
		cfg.Source = path
		return cfg
	}

	return Default()
}

// parse accepts either a JSON object or flat key=value lines with "#"
// comments. Recognized keys: format, team, copy, no_copy, repos.
func parse(data []byte) (Config, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return Default(), nil
	}

	values := make(map[string]any)
	if strings.HasPrefix(raw, "{") {
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return Config{}, fmt.Errorf("failed to parse rc file: %w", err)
		}
	} else {
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			values[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	cfg := Default()
	cfg.Format, _ = values["format"].(string)
	cfg.Team, _ = values["team"].(string)
	cfg.Copy = parseBool(values["copy"], true)
	if noCopy, ok := values["no_copy"]; ok {
		cfg.Copy = !parseBool(noCopy, false)
	}
	cfg.Repos = normalizeRepos(values["repos"])

	return cfg, nil
}

// parseBool accepts booleans and the usual truthy/falsy strings, keeping
// the fallback for anything unrecognized.
func parseBool(value any, fallback bool) bool {
	switch v := value.(type) {
	case nil:
		return fallback
	case bool:
		return v
	}

	switch strings.ToLower(strings.TrimSpace(fmt.Sprint(value))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// normalizeRepos accepts a comma-separated string or a JSON list, dropping
// empty entries.
func normalizeRepos(value any) []string {
	var raw []string
	switch v := value.(type) {
	case string:
		raw = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			raw = append(raw, fmt.Sprint(item))
		}
	}

	var repos []string
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			repos = append(repos, r)
		}
	}
	return repos
}
