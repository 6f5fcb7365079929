package main

import (
	"github.com/rs/zerolog"

	"github.com/sidecarr/sidecarr/internal/config"
	"github.com/sidecarr/sidecarr/internal/dailyseries"
	"github.com/sidecarr/sidecarr/internal/database"
	"github.com/sidecarr/sidecarr/internal/logger"
	"github.com/sidecarr/sidecarr/internal/metadata"
	"github.com/sidecarr/sidecarr/internal/metadata/fanart"
	"github.com/sidecarr/sidecarr/internal/metadata/tmdb"
	"github.com/sidecarr/sidecarr/internal/nfo"
)

// commandContext wires shared dependencies lazily so that commands
// which never touch the database or providers don't pay for them.
type commandContext struct {
	configFlag *string

	cfg *config.Config
	log *logger.Logger
	db  *database.DB
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) logger() (zerolog.Logger, error) {
	if c.log != nil {
		return c.log.Logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return zerolog.Nop(), err
	}
	c.log = logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Path:   cfg.Logging.Path,
	})
	return c.log.Logger, nil
}

// openDatabase opens the daily series database, migrating it on first
// use. Callers own the returned close function.
func (c *commandContext) openDatabase() (*database.DB, error) {
	if c.db != nil {
		return c.db, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	c.db = db
	return db, nil
}

// metadataService builds the aggregation service backed by the real
// providers and, when the database opens cleanly, the daily series
// store.
func (c *commandContext) metadataService() (*metadata.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log, err := c.logger()
	if err != nil {
		return nil, err
	}

	tmdbClient := tmdb.NewClient(cfg.TMDB, log)
	fanartClient := fanart.NewClient(cfg.Fanart, log)

	var daily metadata.DailySeriesChecker
	if db, dbErr := c.openDatabase(); dbErr == nil {
		daily = dailyseries.NewStore(db.Conn(), log)
	} else {
		log.Warn().Err(dbErr).Msg("Daily series store unavailable")
	}

	return metadata.NewService(tmdbClient, fanartClient, daily, nil, log), nil
}

func (c *commandContext) consumer() (*nfo.Consumer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log, err := c.logger()
	if err != nil {
		return nil, err
	}
	return nfo.NewConsumer(nfo.SettingsFromConfig(cfg.Metadata), log), nil
}

func (c *commandContext) close() {
	if c.db != nil {
		c.db.Close()
		c.db = nil
	}
	if c.log != nil {
		c.log.Close()
		c.log = nil
	}
}
