package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/picture-match/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"catalog.schema.json",
	"session.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasType := schemaObj["type"]
			assert.True(t, hasSchema && hasType, "schema should declare $schema and type")
		})
	}
}

func TestEmbeddedSchemas_MatchFiles(t *testing.T) {
	data, err := os.ReadFile("catalog.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), Catalog)

	data, err = os.ReadFile("session.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), Session)
}

func TestCatalogSchema_AcceptsMinimalCatalog(t *testing.T) {
	doc := `{
		"portals": [{"id": "farm", "defaultMinCells": 2, "defaultMaxCells": 4, "layoutRef": "farm"}],
		"layouts": [{"id": "farm", "desktop": [
			{"id": "c1", "requiredCodes": ["r"], "position": {"x": 1, "y": 2}, "size": {"width": 10, "height": 10}}
		]}],
		"items": [{"id": "i1", "displayName": "Cow", "code": "r"}, {"id": "j", "displayName": "Star", "code": "*"}]
	}`
	assert.NoError(t, schemas.ValidateJSONString(Catalog, doc))
}

func TestCatalogSchema_RejectsLongCodes(t *testing.T) {
	doc := `{"portals": [], "layouts": [], "items": [{"id": "i1", "displayName": "Cow", "code": "abc"}]}`
	err := schemas.ValidateJSONString(Catalog, doc)
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok)
}

func TestCatalogSchema_RejectsUnknownVariant(t *testing.T) {
	doc := `{
		"portals": [{"id": "farm", "defaultMinCells": 2, "defaultMaxCells": 4, "layoutRef": "farm",
			"variantOverrides": {"adults": {"minCells": 1, "maxCells": 2}}}],
		"layouts": [], "items": []
	}`
	assert.Error(t, schemas.ValidateJSONString(Catalog, doc))
}

func TestSessionSchema(t *testing.T) {
	valid := `{"cells": [], "items": [], "levelType": "standard"}`
	assert.NoError(t, schemas.ValidateJSONString(Session, valid))

	invalid := `{"cells": [], "items": [], "levelType": "bonus"}`
	assert.Error(t, schemas.ValidateJSONString(Session, invalid))
}
