package session_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"alwanstore/internal/localstore"
	"alwanstore/internal/session"
)

func newStore(t *testing.T) (*session.Store, *localstore.Store) {
	t.Helper()
	ls, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = ls.Close() })
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return session.NewStore(nil, ls, "admin@alwan.iq", string(hash)), ls
}

func TestLocalLogin(t *testing.T) {
	st, _ := newStore(t)
	ctx := context.Background()

	if st.Current() != nil {
		t.Fatal("store should start signed out")
	}
	if st.Login(ctx, "admin@alwan.iq", "wrong") {
		t.Fatal("wrong password must fail")
	}
	if st.Login(ctx, "other@alwan.iq", "correct-horse") {
		t.Fatal("unknown email must fail")
	}
	if !st.Login(ctx, "admin@alwan.iq", "correct-horse") {
		t.Fatal("valid credentials must succeed")
	}

	cur := st.Current()
	if cur == nil || cur.Email != "admin@alwan.iq" {
		t.Fatalf("session missing after login: %+v", cur)
	}
	if !st.IsAdmin() {
		t.Fatal("local admin session must be admin")
	}
	if err := st.RequireAuth(); err != nil {
		t.Fatalf("RequireAuth should pass when signed in: %v", err)
	}
}

func TestRequireAuth_SignedOut(t *testing.T) {
	st, _ := newStore(t)
	if err := st.RequireAuth(); !errors.Is(err, session.ErrAuthRequired) {
		t.Fatalf("want ErrAuthRequired, got %v", err)
	}
}

func TestLogout_ClearsSessionAndPersistence(t *testing.T) {
	st, ls := newStore(t)
	ctx := context.Background()
	if !st.Login(ctx, "admin@alwan.iq", "correct-horse") {
		t.Fatal("login should succeed")
	}
	st.Logout(ctx)

	if st.Current() != nil || st.IsAdmin() {
		t.Fatal("logout should clear the session")
	}
	var saved session.Session
	if ok, _ := ls.Get(localstore.KeySession, &saved); ok {
		t.Fatal("logout should remove the persisted session")
	}
}

func TestResolve_HydratesPersistedSession(t *testing.T) {
	st, ls := newStore(t)
	ctx := context.Background()
	if !st.Login(ctx, "admin@alwan.iq", "correct-horse") {
		t.Fatal("login should succeed")
	}

	// A second store over the same local storage picks the session up,
	// the restart path.
	hash, _ := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	st2 := session.NewStore(nil, ls, "admin@alwan.iq", string(hash))
	st2.Resolve(ctx)
	cur := st2.Current()
	if cur == nil || cur.Email != "admin@alwan.iq" || !cur.IsAdmin {
		t.Fatalf("persisted session not hydrated: %+v", cur)
	}
}
