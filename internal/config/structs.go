package config

import (
	"time"

	"github.com/KittyCore/portfolio/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Mail      Mail
	Admin     Admin
	Media     Media
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic bool    // enable static file browsing (for development purposes only)
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	SecretKey    string  // secret used to derive the cookie encryption key
	BodyLimitMB  int     // max request body size, uploads included
	Session      Session // session settings
}

// Mail holds the notification mail settings.
type Mail struct {
	Host         string
	Port         int // STARTTLS submission port
	FallbackPort int // implicit TLS port, tried once if Port fails
	Sender       string
	Password     string
	Inbox        string // destination of all notifications
	Timeout      time.Duration
}

// Admin holds the shared admin credential.
type Admin struct {
	// Password is either plain text or an argon2id hash ("$argon2id$...").
	Password string
}

// Media holds the audio converter settings.
type Media struct {
	UploadDir         string
	OutputDir         string
	FFmpegPath        string
	Bitrate           string
	AllowedExtensions []string
	Timeout           time.Duration // upper bound for one ffmpeg run
}
