package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

func TestCatalogueCmd_Use(t *testing.T) {
	assert.Equal(t, "catalogue", catalogueCmd.Use)
}

func TestCatalogueStatusCmd_Short(t *testing.T) {
	assert.Equal(t, "Show the cached catalogue's source, size and freshness", catalogueStatusCmd.Short)
}

func TestCatalogueRefreshCmd_Long(t *testing.T) {
	assert.Contains(t, catalogueRefreshCmd.Long, "source chain")
	assert.Contains(t, catalogueRefreshCmd.Long, "never overwritten by a lower tier")
}

func TestCatalogueStatus_NoCache(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalogue", "status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No cached catalogue")
}

func TestCatalogueStatus_ShowsCacheDetails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogueService = &mockCatalogueService{cached: &domain.CachedCatalogue{
		Fonts:       testCatalogue(),
		Signature:   "4-98765",
		SourceStamp: "v42",
		SourceLabel: "Google metadata",
		Quality:     domain.QualityPrimary,
		FetchedAt:   time.Now(),
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalogue", "status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Google metadata")
	assert.Contains(t, output, "Families:  4")
	assert.Contains(t, output, "4-98765")
	assert.Contains(t, output, "Freshness: fresh")
}

func TestCatalogueStatus_StaleCache(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogueService = &mockCatalogueService{cached: &domain.CachedCatalogue{
		Fonts:       testCatalogue(),
		SourceLabel: "mirror",
		Quality:     domain.QualityMirror,
		FetchedAt:   time.Now().Add(-8 * 24 * time.Hour),
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalogue", "status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "stale")
}

func TestCatalogueStatus_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogueService = &mockCatalogueService{cached: &domain.CachedCatalogue{
		Fonts:       testCatalogue(),
		Signature:   "4-98765",
		SourceLabel: "Google metadata",
		Quality:     domain.QualityPrimary,
		FetchedAt:   time.Now(),
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalogue", "status", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		catalogueJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, `"sourceLabel"`)
	assert.Contains(t, output, `"families": 4`)
	assert.Contains(t, output, `"fresh": true`)
}

func TestCatalogueRefresh_PrintsResolution(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalogue", "refresh"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Loaded 4 fonts from Google metadata.")
}

func TestCatalogueRefresh_ReportsProvisionalCache(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogueService = &mockCatalogueService{cached: &domain.CachedCatalogue{
		Fonts:       testCatalogue(),
		SourceLabel: "mirror",
		Quality:     domain.QualityMirror,
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalogue", "refresh"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Using cached catalogue.")
	assert.Contains(t, output, "Loaded 4 fonts from Google metadata.")
}

func TestCatalogueStatus_ServiceNotConfigured(t *testing.T) {
	oldService := catalogueService
	catalogueService = nil
	defer func() {
		catalogueService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"catalogue", "status"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalogue service not configured")
}
