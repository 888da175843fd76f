package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/picture-match/internal/config"
	"github.com/jonathan/picture-match/internal/session"
	"github.com/jonathan/picture-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSession(t *testing.T) {
	cfg := config.Config{Catalog: testCatalogPath}

	res, err := generateSession(context.Background(), cfg, &types.GenerateRequest{
		PortalID: "farm",
		Mode:     "advanced",
		Variant:  "expert",
		Seed:     11,
	})
	require.NoError(t, err)

	assert.Len(t, res.Session.Cells, 8)
	assert.Len(t, res.Session.Items, 10)
	assert.Equal(t, types.LevelExtended, res.Session.LevelType)
	assert.NoError(t, session.Validate(res.Session))
}

func TestGenerateSession_UnknownPortal(t *testing.T) {
	_, err := generateSession(context.Background(), config.Config{Catalog: testCatalogPath}, &types.GenerateRequest{PortalID: "space"})

	var notFound *session.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "portal", notFound.Kind)
}

func TestGenerateCommand_MissingPortalFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--catalog", testCatalogPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"portal\" not set")
}

func TestGenerateCommand_WritesSession(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outputFile := filepath.Join(t.TempDir(), "session.json")

	cmd := exec.Command(binaryPath, "generate",
		"--catalog", testCatalogPath,
		"--portal", "farm",
		"--variant", "kids",
		"--seed", "3",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var s types.Session
	require.NoError(t, json.Unmarshal(data, &s))
	assert.NotEmpty(t, s.Cells)
	assert.NotEmpty(t, s.Solution, "kids sessions are guided")
}
