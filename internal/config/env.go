package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// envBinding maps one environment variable onto a config field.
type envBinding struct {
	key   string
	env   string
	apply func(c *Config, v *viper.Viper, key string)
}

func setString(field func(c *Config) *string) func(*Config, *viper.Viper, string) {
	return func(c *Config, v *viper.Viper, key string) {
		*field(c) = v.GetString(key)
	}
}

// envBindings are the variable names the site has always been deployed with.
var envBindings = []envBinding{ //nolint:gochecknoglobals
	{"webserver.secretkey", "SECRET_KEY", setString(func(c *Config) *string { return &c.Webserver.SecretKey })},
	{"webserver.port", "PORT", func(c *Config, v *viper.Viper, key string) { c.Webserver.Port = v.GetInt(key) }},
	{"mail.sender", "SENDER_EMAIL", setString(func(c *Config) *string { return &c.Mail.Sender })},
	{"mail.password", "EMAIL_PASSWORD", setString(func(c *Config) *string { return &c.Mail.Password })},
	{"mail.inbox", "RECEIVE_EMAIL", setString(func(c *Config) *string { return &c.Mail.Inbox })},
	{"mail.host", "SMTP_HOST", setString(func(c *Config) *string { return &c.Mail.Host })},
	{"admin.password", "ADMIN_PASSWORD", setString(func(c *Config) *string { return &c.Admin.Password })},
	{"db.password", "POSTGRES_PASSWORD", setString(func(c *Config) *string { return &c.DB.Password })},
	{"db.host", "DB_HOST", setString(func(c *Config) *string { return &c.DB.Host })},
}

// applyEnv overrides config fields with the environment variables that are set.
func applyEnv(c *Config) error {
	v := viper.New()

	for _, b := range envBindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return errors.Wrapf(err, "failed to bind env %s", b.env)
		}

		if v.IsSet(b.key) {
			b.apply(c, v, b.key)
		}
	}

	return nil
}
