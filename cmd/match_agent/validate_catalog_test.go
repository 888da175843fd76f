package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCatalogCommand_Valid(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate-catalog", "--in", testCatalogPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Catalog is valid: 2 portal(s)")
}

func TestValidateCatalogCommand_ReportsProblems(t *testing.T) {
	binaryPath := getBinaryPath(t)
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
  "portals": [{"id": "p", "name": "P", "defaultMinCells": 3, "defaultMaxCells": 1, "layoutRef": "nope"}],
  "layouts": [],
  "items": [{"id": "i", "displayName": "I", "code": "a"}]
}`
	_ = os.WriteFile(path, []byte(content), 0644)

	cmd := exec.Command(binaryPath, "validate-catalog", "--in", path)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "portals.0")
	assert.Contains(t, string(output), "problem(s)")
}

func TestValidateCatalogCommand_MissingFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate-catalog", "--in", "/nonexistent/catalog.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "catalog file not found")
}
