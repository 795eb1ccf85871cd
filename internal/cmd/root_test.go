package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/galho/internal/config"
)

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	return &config.Settings{
		BackgroundRemoval: true,
		Concurrency:       4,
		DataDir:           t.TempDir(),
		Format:            config.FormatYAML,
		Journal:           true,
		MaxLogFiles:       10,
	}
}

func TestOutputFormat(t *testing.T) {
	cli := &CLI{Settings: testSettings(t)}

	assert.Equal(t, config.FormatJSON, cli.outputFormat(config.FormatJSON))
	assert.Equal(t, config.FormatYAML, cli.outputFormat(""))
	assert.Equal(t, config.FormatTable, (&CLI{}).outputFormat(""))
}

func TestNewContainer(t *testing.T) {
	settings := testSettings(t)

	c, err := NewContainer(settings)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.NotNil(t, c.ListingService)
	assert.NotNil(t, c.RemovalService)
	assert.NotNil(t, c.HistoryService)
	assert.NotNil(t, c.Journal())
	assert.FileExists(t, config.JournalPath(settings.DataDir))
}

func TestNewContainer_JournalDisabled(t *testing.T) {
	settings := testSettings(t)
	settings.Journal = false

	c, err := NewContainer(settings)
	require.NoError(t, err)

	assert.Nil(t, c.HistoryService)
	assert.Nil(t, c.Journal())
	assert.NoError(t, c.Close())
	assert.ErrorIs(t, (&HistoryCmd{}).Run(&CLI{Container: c}), errJournalDisabled)
}
