// Package config handles input from etc/*.toml files and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// JSONEnv holds a JSON document merged over the toml file.
	JSONEnv = "PORTFOLIO_CONFIG_JSON"

	masked = "********"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(JSONEnv)
	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	// single secrets and the port come from plain env vars
	if err = applyEnv(&c); err != nil {
		return c, err
	}

	setDefaults(&c)

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	t := toml.NewEncoder(&buffer)
	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Masked returns a copy of the config with all secrets replaced.
func (c Config) Masked() Config {
	mask := func(s *string) {
		if *s != "" {
			*s = masked
		}
	}

	mask(&c.Webserver.SecretKey)
	mask(&c.Mail.Password)
	mask(&c.Admin.Password)
	mask(&c.DB.Password)

	return c
}

func setDefaults(c *Config) {
	if c.Title == "" {
		c.Title = "Portfolio"
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.BodyLimitMB == 0 {
		c.Webserver.BodyLimitMB = 100
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = 24 * time.Hour
	}

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EnginePostgres
	}

	if c.Mail.Host == "" {
		c.Mail.Host = "smtp.gmail.com"
	}

	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}

	if c.Mail.FallbackPort == 0 {
		c.Mail.FallbackPort = 465
	}

	if c.Mail.Timeout == 0 {
		c.Mail.Timeout = 10 * time.Second
	}

	setMediaDefaults(&c.Media)
}

func setMediaDefaults(m *Media) {
	if m.UploadDir == "" {
		m.UploadDir = "uploads"
	}

	if m.OutputDir == "" {
		m.OutputDir = "outputs"
	}

	if m.FFmpegPath == "" {
		m.FFmpegPath = "ffmpeg"
	}

	if m.Bitrate == "" {
		m.Bitrate = "192k"
	}

	if m.Timeout == 0 {
		m.Timeout = 5 * time.Minute
	}

	if len(m.AllowedExtensions) == 0 {
		m.AllowedExtensions = []string{".m4a", ".wav", ".flac", ".ogg", ".aac", ".wma"}
	}
}

// validate minimal config settings needed to serve.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.SecretKey == "" {
		return errors.Wrap(ErrEmptySecretKey, invalidErrMessage)
	}

	if c.Admin.Password == "" {
		return errors.Wrap(ErrEmptyAdminPassword, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EnginePostgres, EngineMySQL, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	return nil
}
