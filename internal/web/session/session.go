// Package session keeps server side admin sessions in a fiber storage backend.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the cookie holding the session id.
const CookieName = "session"

// ErrNoSession is returned when the request carries no valid session.
var ErrNoSession = errors.New("no valid session")

// Data represents the session data structure.
type Data struct {
	Admin   bool
	LoginAt time.Time
}

// Store reads and writes sessions.
type Store struct {
	storage fiber.Storage
	expiry  time.Duration
	secure  bool
}

// New returns a store on top of storage. Sessions expire after expiry.
// secure marks the cookie https only.
func New(storage fiber.Storage, expiry time.Duration, secure bool) *Store {
	if storage == nil {
		panic("storage is nil")
	}

	return &Store{storage: storage, expiry: expiry, secure: secure}
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// Write stores data under sessionID.
func (s *Store) Write(sessionID string, data *Data) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return s.storage.Set(sessionID, out, s.expiry)
}

// Read loads the data stored under sessionID.
func (s *Store) Read(sessionID string) (*Data, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	raw, err := s.storage.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	// storages report a missing or expired key as nil
	if len(raw) == 0 {
		return nil, ErrNoSession
	}

	data := new(Data)
	if err = json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return data, nil
}

// Start creates a new session for data and sets the session cookie.
func (s *Store) Start(c *fiber.Ctx, data *Data) error {
	sessionID, err := GenerateSessionID()
	if err != nil {
		return fmt.Errorf("failed to generate session id: %w", err)
	}

	if err = s.Write(sessionID, data); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(s.expiry.Seconds()),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

// Current returns the session of the request.
func (s *Store) Current(c *fiber.Ctx) (*Data, error) {
	return s.Read(c.Cookies(CookieName))
}

// Destroy removes the session of the request and expires its cookie.
func (s *Store) Destroy(c *fiber.Ctx) error {
	var err error

	if sessionID := c.Cookies(CookieName); sessionID != "" {
		err = s.storage.Delete(sessionID)
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   s.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return err
}
