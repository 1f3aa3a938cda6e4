// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/verdantgeo/verdant/internal/config"
	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/metrics"
)

// ErrInvalidCredentials is returned by Login for any credential
// mismatch. The message deliberately does not say which part failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Gate authenticates the single admin credential pair and manages the
// session cookie. The plaintext password is hashed at construction and
// never kept.
type Gate struct {
	username     string
	passwordHash []byte
	store        SessionStore
	ttl          time.Duration
	cookieName   string
	secureCookie bool
}

// NewGate hashes the configured password and wires the session store.
// Cookies are marked Secure only in production so local development
// over plain HTTP keeps working.
func NewGate(cfg config.SecurityConfig, production bool, store SessionStore) (*Gate, error) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin credentials are not configured")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &Gate{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		store:        store,
		ttl:          cfg.SessionTTL,
		cookieName:   cfg.CookieName,
		secureCookie: production,
	}, nil
}

// Login verifies the credential pair and, on success, creates a session
// and sets its cookie on w. Username comparison is constant time and
// the bcrypt check runs regardless so timing does not reveal which
// field was wrong.
func (g *Gate) Login(w http.ResponseWriter, username, password string) (*Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		logging.Warn().Str("username", username).Msg("admin login rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(g.ttl),
	}
	if err := g.store.Put(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(g.ttl.Seconds()),
		HttpOnly: true,
		Secure:   g.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	logging.Info().Str("username", username).Msg("admin login")
	return session, nil
}

// IsAuthenticated reports whether the request carries a live session
// cookie, returning the session when it does.
func (g *Gate) IsAuthenticated(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(g.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return g.store.Get(cookie.Value)
}

// Logout deletes the request's session, if any, and clears the cookie.
// Logging out without a session is not an error.
func (g *Gate) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(g.cookieName); err == nil && cookie.Value != "" {
		if err := g.store.Delete(cookie.Value); err != nil {
			logging.Error().Err(err).Msg("failed to delete session")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     g.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// CookieName returns the configured session cookie name.
func (g *Gate) CookieName() string {
	return g.cookieName
}
