// Package config discovers and loads docstruct's optional YAML/JSON config
// file, supplying the defaults the CLI flags override (spec §6 CLI surface).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the docstruct defaults a config file can set; every field
// has a zero value the CLI's flag defaults fall back to when unset.
type Config struct {
	DefaultDPI      int    `yaml:"default_dpi,omitempty" json:"default_dpi,omitempty"`
	DefaultFormat   string `yaml:"default_format,omitempty" json:"default_format,omitempty"`
	OcrBridgePath   string `yaml:"ocr_bridge_path,omitempty" json:"ocr_bridge_path,omitempty"`
	OcrLanguage     string `yaml:"ocr_language,omitempty" json:"ocr_language,omitempty"`
	RenderCacheDir  string `yaml:"render_cache_dir,omitempty" json:"render_cache_dir,omitempty"`
}

// Default returns the built-in defaults used when no config file is found.
func Default() *Config {
	return &Config{
		DefaultDPI:     200,
		DefaultFormat:  "json",
		OcrLanguage:    "eng+kor",
		RenderCacheDir: GetAppCacheDir("docstruct"),
	}
}

// LoadConfig searches GetAppConfigPaths("docstruct") in order and parses the
// first file found; missing files are not an error, since Default() alone is
// a valid configuration.
func LoadConfig() (*Config, error) {
	cfg := Default()

	for _, path := range GetAppConfigPaths("docstruct") {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from a fixed, non-user-controlled search list
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return cfg, nil
}

// GetConfigPaths returns default config search paths for fulmen ecosystem
// Deprecated: Use GetAppConfigPaths() with your app name for non-Fulmen tools
func GetConfigPaths() []string {
	return GetAppConfigPaths("fulmen", "gofulmen")
}

// GetAppConfigPaths returns config search paths for a given app name
// Searches in order:
//  1. XDG config dir (e.g., ~/.config/appName/config.yaml)
//  2. Dot-directory in home (e.g., ~/.appName/config.yaml)
//  3. Dot-file in home (e.g., ~/.appName.yaml)
//  4. Current directory (e.g., ./appName.yaml)
//
// If legacyNames are provided, also searches those locations for backward compatibility
func GetAppConfigPaths(appName string, legacyNames ...string) []string {
	xdg := GetXDGBaseDirs()
	home := os.Getenv("HOME")

	var paths []string

	// 1. XDG config directory (preferred)
	paths = append(paths,
		filepath.Join(xdg.ConfigHome, appName, "config.yaml"),
		filepath.Join(xdg.ConfigHome, appName, "config.json"),
	)

	// 2. Dot-directory in home
	if home != "" {
		paths = append(paths,
			filepath.Join(home, "."+appName, "config.yaml"),
			filepath.Join(home, "."+appName, "config.json"),
		)
	}

	// 3. Dot-file in home (single file)
	if home != "" {
		paths = append(paths,
			filepath.Join(home, "."+appName+".yaml"),
			filepath.Join(home, "."+appName+".json"),
		)
	}

	// 4. Current directory
	paths = append(paths,
		"./"+appName+".yaml",
		"./"+appName+".json",
		"./."+appName+".yaml",
		"./."+appName+".json",
	)

	// 5. Legacy locations (if provided)
	for _, legacyName := range legacyNames {
		if legacyName != appName {
			paths = append(paths,
				filepath.Join(xdg.ConfigHome, legacyName, "config.json"),
			)
			if home != "" {
				paths = append(paths,
					filepath.Join(home, "."+legacyName+".json"),
				)
			}
		}
	}

	return paths
}

// SaveConfig saves configuration to the specified path
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	// #nosec G301 -- config directories use 0755 for multi-user access compatibility
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// #nosec G304 -- intentional user-controlled file creation for saving configuration to user-specified path
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return nil
}
