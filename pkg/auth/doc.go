// Package auth is the session and authorization engine of the Bludee
// platform core. It verifies credentials against a user directory, issues
// time-bounded sessions, and answers capability checks against the role
// snapshot captured at login.
//
// The Service composes a directory.Store, a session.Store and a
// PasswordHasher; all three are injected so production deployments can swap
// the in-memory demo table for real storage and the hashing scheme for a
// stronger KDF without touching the engine.
//
// Usage:
//
//	hasher := auth.NewBcryptHasher(0)
//	accounts, _ := directory.DemoAccounts(hasher.Hash)
//
//	svc := auth.New(
//	    directory.NewMemoryStore(accounts...),
//	    session.NewMemoryStore(0),
//	    auth.WithHasher(hasher),
//	)
//
//	info, err := svc.Authenticate(ctx, "admin", "admin2025")
//	if err != nil {
//	    msg := auth.Message(err) // client-facing Spanish message
//	}
//
//	ok, _ := svc.CheckPermission(ctx, info.SessionToken, roles.CapInventory)
//
// Failed authentications are sentinel errors (ErrUserNotFound,
// ErrAccountDisabled, ErrInvalidCredentials) so callers can branch with
// errors.Is; invalid or expired sessions are ordinary negative results, not
// errors.
package auth
