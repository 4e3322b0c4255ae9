package config

const (
	// EnginePostgres selects the postgres gorm driver.
	EnginePostgres = "postgres"
	// EngineMySQL selects the mysql gorm driver.
	EngineMySQL = "mysql"
	// EngineSQLite selects the pure go sqlite driver, Name is the file path.
	EngineSQLite = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string
}
