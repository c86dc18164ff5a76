package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	// BasePathFs only accepts paths under an absolute base.
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return LoadFs(afero.NewBasePathFs(afero.NewOsFs(), abs))
}

// LoadFs loads config.yaml from the root of fsys. Fields the file leaves out
// keep their default values.
func LoadFs(fsys afero.Fs) (*Configuration, error) {
	configContents, err := afero.ReadFile(fsys, ConfigurationName)
	if err != nil {
		return nil, err
	}

	out := defaultConfig()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigurationName, err)
	}
	out.configFs = fsys
	return out, nil
}

// Initialize writes the default configuration into dir, creating it if
// needed. An existing config.yaml is left alone.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(abs, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return InitializeFs(afero.NewBasePathFs(osFs, abs), logger)
}

// InitializeFs is Initialize over an arbitrary filesystem root.
func InitializeFs(fsys afero.Fs, logger *log.Logger) (*Configuration, error) {
	exists, err := afero.Exists(fsys, ConfigurationName)
	switch {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("%s already exists, skipping\n", ConfigurationName)
	default:
		if err := afero.WriteFile(fsys, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, fmt.Errorf("write %s: %w", ConfigurationName, err)
		}
		logger.Printf("Created %s\n", ConfigurationName)
	}

	return LoadFs(fsys)
}
