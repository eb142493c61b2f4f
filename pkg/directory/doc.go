// Package directory provides the user directory of the Bludee authorization
// core: the mapping from username to credential record, role, organization
// and status.
//
// The Store interface is the seam where production storage replaces the
// in-memory table. The core only requires two operations: looking an account
// up by username and stamping its last successful login. A concurrent
// in-memory implementation ships out of the box together with a
// Postgres-backed one.
//
// A YAML seed fixture with the platform's demo accounts is embedded and can
// be loaded through any password hashing function:
//
//	accounts, err := directory.DemoAccounts(hasher.Hash)
//	store := directory.NewMemoryStore(accounts...)
package directory
