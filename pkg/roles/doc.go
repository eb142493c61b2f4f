// Package roles defines the closed set of Bludee platform roles and the
// static capability and module tables behind them.
//
// A Role is a fixed bundle of modules and capabilities assigned to exactly
// one account. Capabilities gate access to individual features; modules are
// presentation groupings only and carry no access semantics of their own.
// The registry is defined at compile time and never mutated at runtime, so
// all lookups are pure and safe for concurrent use.
//
// Usage:
//
//	caps, err := roles.CapabilitiesOf(roles.Bank)
//	if err != nil {
//	    // roles.ErrUnknownRole: broken configuration, not a user error
//	}
//
//	if roles.HasCapability(roles.Admin, roles.CapInventory) {
//	    // grant access
//	}
package roles
