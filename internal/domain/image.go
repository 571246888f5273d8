package domain

// ImageRole is the semantic category assigned to a scraped product image.
type ImageRole string

const (
	RoleHero           ImageRole = "hero"
	RoleModeDualScreen ImageRole = "mode-dual-screen"
	RoleModeLaptop     ImageRole = "mode-laptop"
	RoleDesktopMode    ImageRole = "desktop-mode"
	RoleKickstand      ImageRole = "kickstand"
	RolePorts          ImageRole = "ports"
	RolePen            ImageRole = "pen"
	RoleLifestyle      ImageRole = "lifestyle"
)

// ImageEntry is a single scraped product image.
type ImageEntry struct {
	URL  string    `json:"url"`
	Alt  string    `json:"alt"`
	Role ImageRole `json:"role"`
}
