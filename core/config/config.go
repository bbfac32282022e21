package config

import (
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

const (
	// EnvColor selects prompt colouring: always, auto or never.
	EnvColor = "MINSH_COLOR"
	// EnvEventLog is the path of the JSON lines session event log.
	EnvEventLog = "MINSH_EVENT_LOG"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Configuration holds the interpreter's settings. There is no configuration
// file; every value comes from the environment at startup.
type Configuration struct {
	configFs afero.Fs

	Color    string `json:"color" validate:"oneof=always auto never"`
	EventLog string `json:"event_log"`
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

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// OpenEventLog opens the event log in an append only state. If no log is
// configured, writes are discarded.
func (c *Configuration) OpenEventLog() (io.WriteCloser, error) {
	if c.EventLog == "" {
		return nopWriteCloser{io.Discard}, nil
	}
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func defaultConfig() *Configuration {
	return &Configuration{
		Color: ColorAuto,
	}
}
