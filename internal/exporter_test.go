package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/models"
)

func testSnapshot() models.ErrorExport {
	return models.ErrorExport{
		ExportedAt: time.Now(),
		Errors: []models.MockError{
			models.NewMockError(
				models.CategoryNetwork, "timeout", "Connection Timeout",
				"The request took too long to complete.",
				models.SeverityMedium, true,
				[]models.RecoveryActionKind{models.ActionRetry, models.ActionCheckConnection},
			),
			models.NewMockError(
				models.CategoryPermission, "denied", "Access Denied",
				"You do not have permission to perform this action.",
				models.SeverityHigh, false,
				[]models.RecoveryActionKind{models.ActionContactAdmin},
			),
		},
	}
}

func testExporter(t *testing.T) *Exporter {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.App.LogFile = filepath.Join(t.TempDir(), "test.log")
	cfg.Export.OutputDir = t.TempDir()

	exporter, err := NewExporter(cfg)
	require.NoError(t, err)
	return exporter
}

func TestExportJSON(t *testing.T) {
	exporter := testExporter(t)
	outputFile := filepath.Join(t.TempDir(), "export.json")

	result, err := exporter.Export(testSnapshot(), ExportOptions{
		Format:     "json",
		OutputFile: outputFile,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.RecordCount)
	assert.Greater(t, result.FileSize, int64(0))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var decoded models.ErrorExport
	require.NoError(t, sonic.Unmarshal(data, &decoded))
	require.Len(t, decoded.Errors, 2)
	assert.Equal(t, models.CategoryNetwork, decoded.Errors[0].Category)
	assert.Equal(t, "Access Denied", decoded.Errors[1].Title)
}

func TestExportCSV(t *testing.T) {
	exporter := testExporter(t)
	outputFile := filepath.Join(t.TempDir(), "export.csv")

	result, err := exporter.Export(testSnapshot(), ExportOptions{
		Format:     "csv",
		OutputFile: outputFile,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3) // header + 2 records
	assert.Contains(t, lines[0], "Category")
	assert.Contains(t, lines[1], "network")
	assert.Contains(t, lines[1], "retry|check_connection")
	assert.Contains(t, lines[2], "permission")
}

func TestExportYAML(t *testing.T) {
	exporter := testExporter(t)
	outputFile := filepath.Join(t.TempDir(), "export.yaml")

	result, err := exporter.Export(testSnapshot(), ExportOptions{
		Format:     "yaml",
		OutputFile: outputFile,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var decoded models.ErrorExport
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Errors, 2)
	assert.Equal(t, "Connection Timeout", decoded.Errors[0].Title)
}

func TestExportDefaultsFromConfig(t *testing.T) {
	exporter := testExporter(t)

	result, err := exporter.Export(testSnapshot(), ExportOptions{})
	require.NoError(t, err)

	assert.Equal(t, "json", result.Format)
	assert.True(t, strings.HasPrefix(filepath.Base(result.OutputFile), "faultdeck-export-"))
	assert.FileExists(t, result.OutputFile)
}

func TestExportRefusesOverwrite(t *testing.T) {
	exporter := testExporter(t)
	outputFile := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(outputFile, []byte("{}"), 0o644))

	_, err := exporter.Export(testSnapshot(), ExportOptions{
		Format:     "json",
		OutputFile: outputFile,
	})
	assert.Error(t, err)

	result, err := exporter.Export(testSnapshot(), ExportOptions{
		Format:     "json",
		OutputFile: outputFile,
		Overwrite:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := testExporter(t)

	_, err := exporter.Export(testSnapshot(), ExportOptions{
		Format:     "xml",
		OutputFile: filepath.Join(t.TempDir(), "export.xml"),
	})
	assert.Error(t, err)
}
