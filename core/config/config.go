package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
)

type Configuration struct {
	configFs afero.Fs

	ShellName string `json:"shell_name" validate:"required"`
	Banner    string `json:"banner"`

	Prompt   string `json:"prompt" validate:"required"`
	User     string `json:"user" validate:"required"`
	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
	Color    string `json:"color" validate:"oneof=always auto never"`

	Tokenizer  string `json:"tokenizer" validate:"oneof=fields shlex"`
	LineEditor string `json:"line_editor" validate:"oneof=plain readline"`

	HistoryFile  string `json:"history_file"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`

	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`

	CommandTimeoutSeconds int `json:"command_timeout_seconds" validate:"gte=0"`
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

// CommandTimeout is the limit on external commands, zero for none.
func (c *Configuration) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

// HasDir reports whether the configuration was loaded from a directory.
// Defaults have nowhere to keep logs or history.
func (c *Configuration) HasDir() bool {
	return c.configFs != nil
}

// Fs returns the configuration directory.
func (c *Configuration) Fs() afero.Fs {
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.Fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.Fs().OpenFile(AppLogName, os.O_RDONLY, 0600)
}

// Default returns the built in configuration, which isn't tied to a
// directory.
func Default() *Configuration {
	return defaultConfig()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
