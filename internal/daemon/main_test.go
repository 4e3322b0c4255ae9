package daemon

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KittyCore/portfolio/internal/config"
	"github.com/KittyCore/portfolio/internal/web/webtest"
)

func TestNew(t *testing.T) {
	cfg := webtest.Config(t)
	cfg.DB.Name = filepath.Join(t.TempDir(), "portfolio.db")

	d, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, d.webService)
	require.NotNil(t, d.dispatcher)
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestSessionStorage(t *testing.T) {
	cfg := webtest.Config(t)

	storage, err := sessionStorage(cfg)
	require.NoError(t, err)
	require.NotNil(t, storage)

	cfg.DB.GormEngine = "oracle"

	_, err = sessionStorage(cfg)
	assert.ErrorIs(t, err, config.ErrUnknownGormEngine)
}

func TestSendTimeoutCoversBothAttempts(t *testing.T) {
	m := config.Mail{Timeout: 10 * time.Second}

	assert.Greater(t, SendTimeout(m), 2*m.Timeout)
	assert.Zero(t, SendTimeout(config.Mail{}))
}
