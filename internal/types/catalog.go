// Package types provides the game data model shared by the session engine, catalog stores and HTTP API.
package types

// Catalog is the full read-only game data set: portals, layouts and items.
type Catalog struct {
	Portals []Portal `json:"portals"`
	Layouts []Layout `json:"layouts"`
	Items   []Item   `json:"items"`
}
