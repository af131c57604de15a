package service

// DefaultIcon is used whenever a source has no recognized icon identifier.
const DefaultIcon = "globe"

// DefaultColor is the neutral badge color for unregistered sources.
const DefaultColor = "#6b7280"

// knownIcons is the closed set of icon identifiers the dashboard ships.
// Lookups outside this set fall back to DefaultIcon; identifiers are never
// resolved dynamically.
var knownIcons = map[string]struct{}{
	"globe":     {},
	"facebook":  {},
	"instagram": {},
	"linkedin":  {},
	"twitter":   {},
	"youtube":   {},
	"envelope":  {},
	"phone":     {},
	"home":      {},
	"building":  {},
	"handshake": {},
	"sign":      {},
	"newspaper": {},
	"star":      {},
	"users":     {},
}

// NormalizeIcon maps an icon identifier to a member of the known icon set.
func NormalizeIcon(name string) string {
	if _, ok := knownIcons[name]; ok {
		return name
	}
	return DefaultIcon
}
