package config

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration from a juokse.yaml file or a directory
// holding one. Settings missing from the file keep their default values.
func Load(path string) (*Configuration, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs is like Load but reads from the given file system.
func LoadFs(fsys afero.Fs, path string) (*Configuration, error) {
	if isDir, _ := afero.IsDir(fsys, path); isDir {
		path = filepath.Join(path, ConfigurationName)
	}

	configContents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadOrDefault loads the configuration like Load but falls back to the
// defaults if the file doesn't exist.
func LoadOrDefault(path string) (*Configuration, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Initialize writes the default configuration into dir unless a
// configuration already exists there.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	return InitializeFs(afero.NewOsFs(), dir, logger)
}

// InitializeFs is like Initialize but writes to the given file system.
func InitializeFs(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	switch exists, err := afero.Exists(fsys, path); {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("Configuration already exists: %s\n", path)
	default:
		logger.Printf("Writing default configuration: %s\n", path)
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		if err := afero.WriteFile(fsys, path, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	}

	return LoadFs(fsys, path)
}
