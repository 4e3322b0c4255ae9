package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool // human readable output instead of json lines
}

// Rotation describes one rolling log file.
type Rotation struct {
	Name       string `toml:"name"`
	MaxSize    int    `toml:"maxSize"` // megabytes
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"` // days
}

// LogFile implements a file based logger, one file per level group.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	Access Rotation `toml:"access"`
	Error  Rotation `toml:"error"` // error, fatal and panic
	Info   Rotation `toml:"info"`  // info and debug
	Trace  Rotation `toml:"trace"`
	Warn   Rotation `toml:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.

	// EnableAccessLogToConsole writes the http access log to stdout.
	// Has no effect while Console.Enabled is false.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	AppName     string
	ServiceName string

	Console Console
	File    LogFile `toml:"file"`
}
