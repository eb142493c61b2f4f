package menu

import "github.com/bludee/authcore/pkg/roles"

// Item is one navigation entry. ID carries the capability literal the
// client uses for routing.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Section is one navigation group keyed by its module name.
type Section struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Items   []Item `json:"items"`
}

// candidate binds a capability to the item it contributes.
type candidate struct {
	capability roles.Capability
	item       Item
}

// sectionDef is the static template of one menu section.
type sectionDef struct {
	module     roles.Module
	title      string
	candidates []candidate
}

// sections is the fixed menu template. Order of sections and of candidates
// within each section is contractual.
var sections = []sectionDef{
	{
		module: roles.ModDistribution,
		title:  "🏥 Módulo Distribución",
		candidates: []candidate{
			{roles.CapInventory, Item{ID: "inventory", Name: "Inventario", Icon: "📦"}},
			{roles.CapProcessing, Item{ID: "processing", Name: "Procesamiento", Icon: "⚗️"}},
			{roles.CapDispatch, Item{ID: "dispatch", Name: "Despacho", Icon: "🚚"}},
			{roles.CapDonors, Item{ID: "donors", Name: "Donantes", Icon: "👥"}},
		},
	},
	{
		module: roles.ModReception,
		title:  "🏥 Módulo Recepción",
		candidates: []candidate{
			{roles.CapRequests, Item{ID: "requests", Name: "Solicitudes", Icon: "📋"}},
			{roles.CapReception, Item{ID: "reception", Name: "Recepción", Icon: "📥"}},
			{roles.CapCompatibility, Item{ID: "compatibility", Name: "Compatibilidad", Icon: "🧬"}},
			{roles.CapIssuing, Item{ID: "issuing", Name: "Emisión", Icon: "💉"}},
		},
	},
	{
		module: roles.ModHub,
		title:  "🌐 Hub Colaborativo",
		candidates: []candidate{
			{roles.CapHubSearch, Item{ID: "hub-search", Name: "Buscar Componentes", Icon: "🔍"}},
			{roles.CapHubShare, Item{ID: "hub-share", Name: "Compartir Inventario", Icon: "📤"}},
			{roles.CapTransfers, Item{ID: "transfers", Name: "Transferencias", Icon: "🔄"}},
		},
	},
	{
		module: roles.ModAdmin,
		title:  "⚙️ Administración",
		candidates: []candidate{
			{roles.CapUsers, Item{ID: "users", Name: "Usuarios", Icon: "👤"}},
			{roles.CapAudit, Item{ID: "audit", Name: "Auditoría", Icon: "📊"}},
			{roles.CapAlerts, Item{ID: "alerts", Name: "Alertas", Icon: "⚠️"}},
		},
	},
}

// ForRole derives the navigation tree for a role. Unknown roles get an
// empty tree.
func ForRole(role roles.Role) []Section {
	result := make([]Section, 0, len(sections))

	for _, def := range sections {
		if !roles.HasModule(role, def.module) {
			continue
		}

		items := make([]Item, 0, len(def.candidates))
		for _, c := range def.candidates {
			if roles.HasCapability(role, c.capability) {
				items = append(items, c.item)
			}
		}

		if len(items) == 0 {
			continue
		}

		result = append(result, Section{
			Section: string(def.module),
			Title:   def.title,
			Items:   items,
		})
	}

	return result
}
