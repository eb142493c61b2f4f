// Package menu derives the navigation tree a client renders for a role.
//
// The menu is a pure projection of the role registry: four fixed sections
// (Distribution, Reception, Hub, Admin) with fixed, ordered candidate items.
// A section appears iff its module is enabled for the role and at least one
// of its candidate capabilities is granted; empty sections are never
// emitted. Section order, item order, display names and icons are part of
// the wire contract with existing clients and must not change.
//
// ForRole computes the tree directly from a role; Builder resolves a session
// token first, returning an empty tree for missing or expired sessions with
// the same lazy-eviction behavior as every other session lookup.
package menu
