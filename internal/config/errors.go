package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")
	// ErrEmptySecretKey error if no cookie secret is configured.
	ErrEmptySecretKey = errors.New("webserver.secretkey (SECRET_KEY) can not be empty")
	// ErrEmptyAdminPassword error if no admin password is configured.
	ErrEmptyAdminPassword = errors.New("admin.password (ADMIN_PASSWORD) can not be empty")
	// ErrUnknownGormEngine error if db.gormengine is not supported.
	ErrUnknownGormEngine = errors.New("db.gormengine must be postgres, mysql or sqlite")
)
