// Package schemas holds the JSON Schemas for catalog files and generated sessions.
package schemas

import _ "embed"

// Catalog is the JSON Schema for catalog files.
//
//go:embed catalog.schema.json
var Catalog string

// Session is the JSON Schema for generated sessions.
//
//go:embed session.schema.json
var Session string
