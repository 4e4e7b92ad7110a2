package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marlinswim/clubgate/internal/club/mail"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/internal/club/store/drivers/sqlite"
	"github.com/marlinswim/clubgate/pkg/cryptox"
)

func TestMain(m *testing.M) {
	// Password hashing needs a pepper file; keep it out of the repo tree.
	dir, err := os.MkdirTemp("", "clubgate-service-test")
	if err != nil {
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// newTestStore returns a migrated in-memory store torn down with the test.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// fakeMailer records every message and optionally fails all sends.
type fakeMailer struct {
	mu       sync.Mutex
	sent     []mail.Message
	failNext bool
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext {
		return errors.New("relay unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) messages() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}

func newInviteService(t *testing.T) (*InvitationService, *fakeMailer) {
	t.Helper()

	mailer := &fakeMailer{}
	svc := &InvitationService{
		Store:   newTestStore(t),
		Mailer:  mailer,
		BaseURL: "https://club.example.com",
	}
	return svc, mailer
}
