// Package config holds the settings of the juokse command line tool.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/juokse.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "juokse.yaml"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	TimeStampFormat string            `json:"time_stamp_format"`
	StripANSI       bool              `json:"strip_ansi"`
	Color           string            `json:"color" validate:"required,oneof=always auto never"`
	Path            []string          `json:"path" validate:"dive,required"`
	Environment     map[string]string `json:"environment" validate:"dive,keys,required,endkeys"`
	HistoryFile     string            `json:"history_file"`
	EventLog        string            `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// HistoryPath returns the location of the interactive history with a leading
// "~" replaced by the home directory. It's empty if history is disabled.
func (c *Configuration) HistoryPath() string {
	return expandHome(c.HistoryFile)
}

// EventLogPath returns the location of the event log, or an empty string if
// it's disabled.
func (c *Configuration) EventLogPath() string {
	return expandHome(c.EventLog)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
