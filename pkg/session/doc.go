// Package session provides time-bounded login sessions for the Bludee
// authorization core: an opaque token, the owning username, a snapshot of the
// role taken at login time, and an absolute expiry.
//
// The package is storage-agnostic: any datastore that satisfies the Store
// interface can be plugged in. A concurrent in-memory implementation ships
// out of the box and a Redis-backed one maps the absolute expiry onto native
// key TTLs.
//
// Expired sessions are evicted lazily: a Get that observes an expired record
// removes it and reports ErrSessionExpired. Nothing in this package extends a
// session's lifetime after creation; expiry is absolute, never sliding.
//
// Usage:
//
//	store := session.NewMemoryStore(0)
//	defer store.Close()
//
//	token, _ := session.NewToken()
//	sess := session.New(token, "maria.garcia", roles.HospitalReceiver, "Hospital San Juan", 8*time.Hour)
//	_ = store.Create(ctx, sess)
//
//	sess, err := store.Get(ctx, token)
//	switch {
//	case errors.Is(err, session.ErrSessionNotFound):
//	    // no such session
//	case errors.Is(err, session.ErrSessionExpired):
//	    // observed stale, already evicted
//	}
package session
