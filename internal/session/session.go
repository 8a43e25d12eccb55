// Package session holds the authenticated session and the derived admin
// flag, the server-side equivalent of the web client's auth context.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"alwanstore/internal/localstore"
	"alwanstore/internal/log"
	"alwanstore/internal/metrics"
	"alwanstore/internal/remote"
)

// ErrAuthRequired is returned by mutating service operations when no
// session is active; the remote call is never attempted.
var ErrAuthRequired = errors.New("authentication required")

// Session is the locally cached state of a signed-in user.
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	ExpiresAt    time.Time `json:"expiresAt"`
	IsAdmin      bool      `json:"isAdmin"`
}

type userRoleRow struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Store resolves, caches and persists the session. When the remote client
// is nil (no backend configured) it falls back to a single local admin
// credential checked with bcrypt, so the admin surface stays usable in
// development.
type Store struct {
	rc *remote.Client
	ls *localstore.Store

	adminEmail string
	adminHash  string

	mu  sync.RWMutex
	cur *Session
}

func NewStore(rc *remote.Client, ls *localstore.Store, adminEmail, adminHash string) *Store {
	return &Store{rc: rc, ls: ls, adminEmail: adminEmail, adminHash: adminHash}
}

// Resolve hydrates a persisted session on startup. Expired or malformed
// sessions are dropped silently; the store starts signed out.
func (s *Store) Resolve(ctx context.Context) {
	var sess Session
	ok, err := s.ls.Get(localstore.KeySession, &sess)
	if err != nil || !ok {
		return
	}
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		_ = s.ls.Delete(localstore.KeySession)
		return
	}
	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	if s.rc != nil {
		s.rc.SetBearer(sess.AccessToken)
		// Roles can change between runs; re-derive the admin flag.
		sess.IsAdmin = s.lookupAdmin(ctx, sess.UserID)
		s.mu.Lock()
		s.cur = &sess
		s.mu.Unlock()
	}
}

// Login authenticates and reports success. Failures are logged, never
// propagated as errors: the caller only branches on the flag.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	if s.rc == nil {
		return s.loginLocal(email, password)
	}

	as, err := s.rc.SignInWithPassword(ctx, email, password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("fail").Inc()
		log.Security(nil, "auth.login.fail", map[string]any{"email": email})
		return false
	}

	sess := Session{
		AccessToken:  as.AccessToken,
		RefreshToken: as.RefreshToken,
		UserID:       as.User.ID,
		Email:        as.User.Email,
		ExpiresAt:    tokenExpiry(as),
	}
	s.rc.SetBearer(sess.AccessToken)
	sess.IsAdmin = s.lookupAdmin(ctx, sess.UserID)

	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	if err := s.ls.Put(localstore.KeySession, sess); err != nil {
		log.Error(nil, "auth.session.persist.fail", err, nil)
	}
	metrics.AuthAttempts.WithLabelValues("ok").Inc()
	return true
}

func (s *Store) loginLocal(email, password string) bool {
	if s.adminEmail == "" || s.adminHash == "" || email != s.adminEmail {
		metrics.AuthAttempts.WithLabelValues("fail").Inc()
		return false
	}
	if bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)) != nil {
		metrics.AuthAttempts.WithLabelValues("fail").Inc()
		return false
	}
	sess := Session{UserID: "local-admin", Email: email, IsAdmin: true}
	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	_ = s.ls.Put(localstore.KeySession, sess)
	metrics.AuthAttempts.WithLabelValues("ok").Inc()
	return true
}

// lookupAdmin checks user_roles for an admin row. A failed lookup (the RLS
// misconfiguration hits this exact table) means not-admin rather than an
// error; the storefront keeps working read-only.
func (s *Store) lookupAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}
	var rows []userRoleRow
	q := remote.NewQuery().Eq("user_id", userID)
	if err := s.rc.Select(ctx, "user_roles", q, &rows); err != nil {
		log.Error(nil, "auth.roles.lookup.fail", err, map[string]any{"user_id": userID})
		return false
	}
	for _, r := range rows {
		if r.Role == "admin" {
			return true
		}
	}
	return false
}

// Logout revokes the remote session best-effort and clears local state.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	cur := s.cur
	s.cur = nil
	s.mu.Unlock()

	if s.rc != nil {
		if cur != nil && cur.AccessToken != "" {
			if err := s.rc.SignOut(ctx, cur.AccessToken); err != nil {
				log.Error(nil, "auth.logout.remote.fail", err, nil)
			}
		}
		s.rc.ClearBearer()
	}
	_ = s.ls.Delete(localstore.KeySession)
}

// Current returns the active session, or nil when signed out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return nil
	}
	cp := *s.cur
	return &cp
}

func (s *Store) IsAdmin() bool {
	cur := s.Current()
	return cur != nil && cur.IsAdmin
}

// RequireAuth gates mutating operations.
func (s *Store) RequireAuth() error {
	if s.Current() == nil {
		return ErrAuthRequired
	}
	return nil
}

// tokenExpiry prefers the exp claim of the access token; expires_in is the
// fallback. Claims are read unverified: the signing secret lives on the
// backend and the value only schedules local re-login.
func tokenExpiry(as *remote.AuthSession) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(as.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if as.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(as.ExpiresIn) * time.Second)
	}
	return time.Time{}
}
