package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bludee/authcore/pkg/auth"
	"github.com/bludee/authcore/pkg/directory"
	"github.com/bludee/authcore/pkg/roles"
	"github.com/bludee/authcore/pkg/session"
)

// newTestService wires the demo directory and an in-memory session store.
// MinCost keeps the bcrypt work factor out of the test runtime.
func newTestService(t *testing.T, opts ...auth.Option) (*auth.Service, *directory.MemoryStore, *session.MemoryStore) {
	t.Helper()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	accounts, err := directory.DemoAccounts(hasher.Hash)
	require.NoError(t, err)

	accountStore := directory.NewMemoryStore(accounts...)
	sessionStore := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = sessionStore.Close() })

	opts = append([]auth.Option{auth.WithHasher(hasher)}, opts...)
	return auth.New(accountStore, sessionStore, opts...), accountStore, sessionStore
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful login", func(t *testing.T) {
		t.Parallel()

		svc, accountStore, _ := newTestService(t)

		info, err := svc.Authenticate(ctx, "admin", "admin2025")
		require.NoError(t, err)
		assert.Equal(t, auth.MsgLoginOK, auth.Message(err))

		assert.Equal(t, "admin", info.Username)
		assert.Equal(t, "Administrador Sistema", info.Name)
		assert.Equal(t, roles.Admin, info.Role)
		assert.Equal(t, "Sistema Bludee", info.Organization)
		assert.Equal(t, "admin@bludee.pr", info.Email)
		assert.NotEmpty(t, info.SessionToken)

		wantCaps, err := roles.CapabilitiesOf(roles.Admin)
		require.NoError(t, err)
		assert.Equal(t, wantCaps, info.Capabilities)

		wantMods, err := roles.ModulesOf(roles.Admin)
		require.NoError(t, err)
		assert.Equal(t, wantMods, info.Modules)

		// Last login is stamped on success.
		account, err := accountStore.FindAccount(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, account.LastLogin)
		assert.WithinDuration(t, time.Now(), *account.LastLogin, 5*time.Second)
	})

	t.Run("user not found", func(t *testing.T) {
		t.Parallel()

		svc, accountStore, _ := newTestService(t)

		_, err := svc.Authenticate(ctx, "ghost", "anything")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		assert.Equal(t, auth.MsgUserNotFound, auth.Message(err))

		_, err = accountStore.FindAccount(ctx, "ghost")
		assert.ErrorIs(t, err, directory.ErrAccountNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		svc, accountStore, _ := newTestService(t)

		_, err := svc.Authenticate(ctx, "carlos.rodriguez", "wrongpass")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Equal(t, auth.MsgInvalidCredentials, auth.Message(err))

		// A failed login never stamps last_login.
		account, err := accountStore.FindAccount(ctx, "carlos.rodriguez")
		require.NoError(t, err)
		assert.Nil(t, account.LastLogin)
	})

	t.Run("disabled account wins over wrong password", func(t *testing.T) {
		t.Parallel()

		svc, accountStore, _ := newTestService(t)

		account, err := accountStore.FindAccount(ctx, "ana.lopez")
		require.NoError(t, err)
		account.Active = false
		require.NoError(t, accountStore.Put(ctx, *account))

		// Disabled is reported regardless of password correctness.
		_, err = svc.Authenticate(ctx, "ana.lopez", "hospital456")
		assert.ErrorIs(t, err, auth.ErrAccountDisabled)

		_, err = svc.Authenticate(ctx, "ana.lopez", "wrongpass")
		assert.ErrorIs(t, err, auth.ErrAccountDisabled)
		assert.Equal(t, auth.MsgAccountDisabled, auth.Message(err))
	})

	t.Run("distinct tokens per login", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)

		first, err := svc.Authenticate(ctx, "maria.garcia", "123456")
		require.NoError(t, err)
		second, err := svc.Authenticate(ctx, "maria.garcia", "123456")
		require.NoError(t, err)

		assert.NotEqual(t, first.SessionToken, second.SessionToken)

		// Both sessions are live independently.
		ok, err := svc.CheckPermission(ctx, first.SessionToken, roles.CapRequests)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = svc.CheckPermission(ctx, second.SessionToken, roles.CapRequests)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("broken role configuration", func(t *testing.T) {
		t.Parallel()

		svc, accountStore, sessionStore := newTestService(t)

		hasher := auth.NewBcryptHasher(bcrypt.MinCost)
		hash, err := hasher.Hash("secret")
		require.NoError(t, err)

		require.NoError(t, accountStore.Put(ctx, directory.Account{
			Username:     "misconfigured",
			PasswordHash: hash,
			Role:         "SUPERVISOR",
			Active:       true,
			CreatedAt:    time.Now(),
		}))

		_, err = svc.Authenticate(ctx, "misconfigured", "secret")
		assert.ErrorIs(t, err, auth.ErrBrokenRole)
		assert.ErrorIs(t, err, roles.ErrUnknownRole)
		assert.Equal(t, auth.MsgAuthFailed, auth.Message(err))

		// No partial session is left behind.
		assert.Equal(t, 0, sessionStore.Len())
	})
}

func TestService_CheckPermission(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("admin capabilities", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)

		info, err := svc.Authenticate(ctx, "admin", "admin2025")
		require.NoError(t, err)

		ok, err := svc.CheckPermission(ctx, info.SessionToken, roles.CapInventory)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.CheckPermission(ctx, info.SessionToken, roles.CapHubShare)
		require.NoError(t, err)
		assert.True(t, ok)

		// ADMIN does not hold donors.
		ok, err = svc.CheckPermission(ctx, info.SessionToken, roles.CapDonors)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown token is a negative result, not an error", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)

		ok, err := svc.CheckPermission(ctx, "no-such-token", roles.CapInventory)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired session is evicted on observation", func(t *testing.T) {
		t.Parallel()

		svc, _, sessionStore := newTestService(t)

		stale := session.New("stale-token", "admin", roles.Admin, "Sistema Bludee", -time.Minute)
		require.NoError(t, sessionStore.Create(ctx, stale))

		ok, err := svc.CheckPermission(ctx, "stale-token", roles.CapInventory)
		require.NoError(t, err)
		assert.False(t, ok)

		// The observation removed the record from the store.
		_, err = sessionStore.Get(ctx, "stale-token")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("role snapshot survives account changes", func(t *testing.T) {
		t.Parallel()

		svc, accountStore, _ := newTestService(t)

		info, err := svc.Authenticate(ctx, "carlos.rodriguez", "banco123")
		require.NoError(t, err)

		ok, err := svc.CheckPermission(ctx, info.SessionToken, roles.CapDonors)
		require.NoError(t, err)
		assert.True(t, ok)

		// Demote the account after login.
		account, err := accountStore.FindAccount(ctx, "carlos.rodriguez")
		require.NoError(t, err)
		account.Role = roles.HospitalReceiver
		require.NoError(t, accountStore.Put(ctx, *account))

		// The live session still answers with the role captured at login.
		ok, err = svc.CheckPermission(ctx, info.SessionToken, roles.CapDonors)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("check does not extend expiry", func(t *testing.T) {
		t.Parallel()

		svc, _, sessionStore := newTestService(t)

		info, err := svc.Authenticate(ctx, "admin", "admin2025")
		require.NoError(t, err)

		before, err := sessionStore.Get(ctx, info.SessionToken)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			_, err := svc.CheckPermission(ctx, info.SessionToken, roles.CapInventory)
			require.NoError(t, err)
		}

		after, err := sessionStore.Get(ctx, info.SessionToken)
		require.NoError(t, err)
		assert.Equal(t, before.ExpiresAt, after.ExpiresAt)
	})
}

func TestService_Logout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t)

	info, err := svc.Authenticate(ctx, "ana.lopez", "hospital456")
	require.NoError(t, err)

	removed, err := svc.Logout(ctx, info.SessionToken)
	require.NoError(t, err)
	assert.True(t, removed)

	// Idempotent: the second logout reports nothing to remove.
	removed, err = svc.Logout(ctx, info.SessionToken)
	require.NoError(t, err)
	assert.False(t, removed)

	ok, err := svc.CheckPermission(ctx, info.SessionToken, roles.CapRequests)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_SessionInfo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("live session", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)

		info, err := svc.Authenticate(ctx, "maria.garcia", "123456")
		require.NoError(t, err)

		sess, err := svc.SessionInfo(ctx, info.SessionToken)
		require.NoError(t, err)
		assert.Equal(t, "maria.garcia", sess.Username)
		assert.Equal(t, roles.HospitalReceiver, sess.Role)
		assert.Equal(t, "Hospital San Juan", sess.Organization)
		assert.Greater(t, sess.Remaining(), 7*time.Hour)
	})

	t.Run("absent and expired sessions", func(t *testing.T) {
		t.Parallel()

		svc, _, sessionStore := newTestService(t)

		_, err := svc.SessionInfo(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)

		stale := session.New("stale", "admin", roles.Admin, "Sistema Bludee", -time.Second)
		require.NoError(t, sessionStore.Create(ctx, stale))

		_, err = svc.SessionInfo(ctx, "stale")
		assert.ErrorIs(t, err, session.ErrSessionExpired)

		// Lazy eviction: the expired record is gone after being observed.
		_, err = svc.SessionInfo(ctx, "stale")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestService_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t, auth.WithSessionTTL(150*time.Millisecond))

	info, err := svc.Authenticate(ctx, "admin", "admin2025")
	require.NoError(t, err)

	// Inside the lifetime the check answers from the role.
	ok, err := svc.CheckPermission(ctx, info.SessionToken, roles.CapInventory)
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(250 * time.Millisecond)

	// Past the absolute expiry the session is gone, without error.
	ok, err = svc.CheckPermission(ctx, info.SessionToken, roles.CapInventory)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.SessionInfo(ctx, info.SessionToken)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
