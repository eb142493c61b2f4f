package roles

import "slices"

// Role identifies one of the fixed platform roles. The set is closed: roles
// are never created or destroyed at runtime.
type Role string

const (
	// Bank is a blood bank with full distribution and hub access.
	Bank Role = "BANK"
	// HospitalFullBank is a hospital operating its own blood bank.
	HospitalFullBank Role = "HOSPITAL_FULL_BANK"
	// HospitalReceiver is a hospital that only receives components.
	HospitalReceiver Role = "HOSPITAL_RECEIVER"
	// Admin is the platform administrator.
	Admin Role = "ADMIN"
)

// Capability is a single named permission gating one feature.
// The literal values are part of the wire contract with clients.
type Capability string

const (
	CapInventory     Capability = "inventory"
	CapProcessing    Capability = "processing"
	CapDispatch      Capability = "dispatch"
	CapDonors        Capability = "donors"
	CapHubSearch     Capability = "hub-search"
	CapHubShare      Capability = "hub-share"
	CapTransfers     Capability = "transfers"
	CapRequests      Capability = "requests"
	CapReception     Capability = "reception"
	CapCompatibility Capability = "compatibility"
	CapIssuing       Capability = "issuing"
	CapUsers         Capability = "users"
	CapAudit         Capability = "audit"
	CapAlerts        Capability = "alerts"
)

// Module is a presentation grouping of capabilities under one menu section.
// It is not itself an access check.
type Module string

const (
	ModDistribution Module = "distribution"
	ModReception    Module = "reception"
	ModHub          Module = "hub"
	ModAdmin        Module = "admin"
)

// definition holds the static configuration of one role.
type definition struct {
	displayName  string
	modules      []Module
	capabilities []Capability
}

// registry is the process-wide role table. It is treated as immutable after
// package initialization; lookups return copies so callers cannot mutate it.
var registry = map[Role]definition{
	Bank: {
		displayName: "Banco de Sangre",
		modules:     []Module{ModDistribution, ModHub, ModReception},
		capabilities: []Capability{
			CapInventory, CapProcessing, CapDispatch, CapDonors,
			CapHubSearch, CapHubShare, CapTransfers, CapRequests,
			CapReception, CapCompatibility, CapIssuing,
		},
	},
	HospitalFullBank: {
		displayName: "Hospital Completo",
		modules:     []Module{ModDistribution, ModReception, ModHub},
		capabilities: []Capability{
			CapInventory, CapProcessing, CapDispatch, CapDonors,
			CapRequests, CapReception, CapCompatibility, CapIssuing,
			CapHubSearch, CapTransfers,
		},
	},
	HospitalReceiver: {
		displayName: "Hospital Receptor",
		modules:     []Module{ModReception, ModHub},
		capabilities: []Capability{
			CapRequests, CapReception, CapCompatibility,
			CapIssuing, CapHubSearch,
		},
	},
	Admin: {
		displayName: "Administrador",
		modules:     []Module{ModAdmin, ModDistribution, ModReception, ModHub},
		capabilities: []Capability{
			CapUsers, CapAudit, CapAlerts, CapInventory, CapProcessing,
			CapDispatch, CapRequests, CapReception, CapHubSearch,
			CapHubShare, CapTransfers,
		},
	},
}

// All returns every role in the registry in a stable order.
func All() []Role {
	return []Role{Bank, HospitalFullBank, HospitalReceiver, Admin}
}

// Valid reports whether r is part of the closed role set.
func Valid(r Role) bool {
	_, ok := registry[r]
	return ok
}

// DisplayNameOf returns the human-readable name of a role.
func DisplayNameOf(r Role) (string, error) {
	def, ok := registry[r]
	if !ok {
		return "", ErrUnknownRole
	}
	return def.displayName, nil
}

// CapabilitiesOf returns the capabilities granted to a role, in the fixed
// order they are defined. The returned slice is a copy.
func CapabilitiesOf(r Role) ([]Capability, error) {
	def, ok := registry[r]
	if !ok {
		return nil, ErrUnknownRole
	}
	return slices.Clone(def.capabilities), nil
}

// ModulesOf returns the modules enabled for a role, in the fixed order they
// are defined. The returned slice is a copy.
func ModulesOf(r Role) ([]Module, error) {
	def, ok := registry[r]
	if !ok {
		return nil, ErrUnknownRole
	}
	return slices.Clone(def.modules), nil
}

// HasCapability reports whether the role grants the capability.
// Unknown roles grant nothing.
func HasCapability(r Role, c Capability) bool {
	def, ok := registry[r]
	if !ok {
		return false
	}
	return slices.Contains(def.capabilities, c)
}

// HasModule reports whether the module is enabled for the role.
func HasModule(r Role, m Module) bool {
	def, ok := registry[r]
	if !ok {
		return false
	}
	return slices.Contains(def.modules, m)
}
