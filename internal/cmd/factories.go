package cmd

import (
	"errors"
	"path/filepath"

	adaptergit "github.com/renato0307/galho/internal/adapters/git"
	adapterprocess "github.com/renato0307/galho/internal/adapters/process"
	adapterstorage "github.com/renato0307/galho/internal/adapters/storage"
	"github.com/renato0307/galho/internal/config"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
	"github.com/renato0307/galho/internal/services"
)

// errJournalDisabled is returned by commands that need the journal when
// it is turned off in the settings
var errJournalDisabled = errors.New("removal journal is disabled (set journal = true)")

// Container holds all dependencies for the application
type Container struct {
	// Services
	HistoryService *services.HistoryService // nil when the journal is disabled
	ListingService *services.ListingService
	RemovalService *services.RemovalService

	// Internal
	journal ports.RemovalJournal
	lockDir string
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	gitRepo := adaptergit.NewCLIRepository(adaptergit.NewCLIRunner())

	var journal ports.RemovalJournal
	if settings.Journal {
		sqliteJournal, err := adapterstorage.NewSQLiteJournal(config.JournalPath(settings.DataDir))
		if err != nil {
			// Removal still works without a journal
			logging.Logger.Warn("Removal journal unavailable", "error", err)
		} else {
			journal = sqliteJournal
		}
	}

	var background ports.BackgroundRemover
	if settings.BackgroundRemoval {
		background = adapterprocess.NewDetachedRemover("")
	}

	statsService := services.NewStatsService(gitRepo)
	upstreamService := services.NewUpstreamService(gitRepo)
	integrationService := services.NewIntegrationService(gitRepo)

	c := &Container{
		ListingService: services.NewListingService(
			gitRepo, statsService, upstreamService, settings.Concurrency, settings.DefaultBranch),
		RemovalService: services.NewRemovalService(
			gitRepo, integrationService, background, journal, settings.DefaultBranch),
		journal: journal,
		lockDir: filepath.Join(settings.DataDir, "locks"),
	}
	if journal != nil {
		c.HistoryService = services.NewHistoryService(gitRepo, journal)
	}
	return c, nil
}

// Journal returns the removal journal, nil when disabled
func (c *Container) Journal() ports.RemovalJournal {
	return c.journal
}

// LockDir is where per-repository lock files live
func (c *Container) LockDir() string {
	return c.lockDir
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.journal != nil {
		return c.journal.Close()
	}
	return nil
}
