package nav

import "strings"

// Routes served by other views. Only their paths are known here.
const (
	Home       = "/"
	Swap       = "/swap"
	Liquidity  = "/liquidity"
	Governance = "/governance"
	Dashboard  = "/dashboard"
)

// Item represents a landing page navigation action.
type Item struct {
	Path     string // e.g. "/swap"
	LabelKey string // i18n key, e.g. "nav.swap"
	Label    string // default (English) label
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Actions is the landing page navigation grid, in display order.
var Actions = []Item{
	{Path: Swap, LabelKey: "nav.swap", Label: "Swap Tokens"},
	{Path: Liquidity, LabelKey: "nav.liquidity", Label: "Add/Remove Liquidity"},
	{Path: Governance, LabelKey: "nav.governance", Label: "Governance"},
	{Path: Dashboard, LabelKey: "nav.dashboard", Label: "Dashboard"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = Home
	}
	items := make([]RenderedItem, 0, len(Actions))
	for _, it := range Actions {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Label:    it.Label,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

// Lookup returns the action registered for path.
func Lookup(path string) (Item, bool) {
	for _, it := range Actions {
		if it.Path == path {
			return it, true
		}
	}
	return Item{}, false
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == Home {
		return currentPath == Home
	}
	// match exact or prefix boundary: "/swap" or "/swap/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
