// Package dsn builds connection strings for gorm and the session storage.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/KittyCore/portfolio/internal/config"
)

// Create builds the gorm Data Source Name for the configured engine.
func Create(cfg *config.Config) string {
	db := cfg.DB

	switch db.GormEngine {
	case config.EngineMySQL:
		return MySQL(cfg)
	case config.EngineSQLite:
		return db.Name
	default:
		out := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
			db.Host,
			db.User,
			db.Password,
			db.Name,
			db.Port,
		)
		if db.Extras != "" {
			out += " " + db.Extras
		}

		return out
	}
}

// MySQL builds the go-sql-driver DSN, also accepted by the mysql session storage.
func MySQL(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// PostgresURI builds a postgres:// URI for the postgres session storage.
// Extras use the key=value form of the gorm DSN and are turned into query parameters.
func PostgresURI(cfg *config.Config) string {
	db := cfg.DB

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:   "/" + db.Name,
	}

	q := url.Values{}

	for _, kv := range splitExtras(db.Extras) {
		q.Set(kv[0], kv[1])
	}

	u.RawQuery = q.Encode()

	return u.String()
}

func splitExtras(extras string) [][2]string {
	var out [][2]string

	fields := strings.FieldsFunc(extras, func(r rune) bool { return r == ' ' || r == '&' })
	for _, f := range fields {
		if k, v, ok := strings.Cut(f, "="); ok {
			out = append(out, [2]string{k, v})
		}
	}

	return out
}
