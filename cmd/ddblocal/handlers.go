package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/acksell/ddblocal/config"
	"github.com/acksell/ddblocal/ddbclient"
	"github.com/acksell/ddblocal/provision"
	"github.com/acksell/ddblocal/seed"
	"github.com/acksell/ddblocal/stage"
)

// dynamoAPI is the slice of the DynamoDB client the handlers use.
type dynamoAPI interface {
	provision.CreateTableAPI
	seed.BatchWriteAPI
}

// app wires the stage-gated operational handlers. The client is constructed
// lazily so a skipped run performs no connection setup at all.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
	client func(context.Context) (dynamoAPI, error)
	loader seed.Loader
}

func newApp(cfg config.Config, logger zerolog.Logger) *app {
	var shared dynamoAPI
	return &app{
		cfg:    cfg,
		logger: logger,
		loader: seed.FileLoader(cfg.SeedDir),
		client: func(ctx context.Context) (dynamoAPI, error) {
			if shared != nil {
				return shared, nil
			}
			c, err := ddbclient.New(ctx, cfg.ClientOptions())
			if err != nil {
				return nil, err
			}
			shared = c
			return shared, nil
		},
	}
}

// skipped logs and reports a stage-gate miss for the named operation.
func (a *app) skipped(op string) bool {
	if stage.ShouldExecute(a.cfg.Stage, a.cfg.Stages) {
		return false
	}
	a.logger.Info().Str("stage", a.cfg.Stage).Strs("enabledStages", a.cfg.Stages).
		Msgf("skipping %s: stage not enabled", op)
	return true
}

// migrate provisions every configured table, tolerating tables that already
// exist.
func (a *app) migrate(ctx context.Context) error {
	if a.skipped("migration") {
		return nil
	}
	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	return provision.New(client, a.logger).Provision(ctx, a.cfg.Tables)
}

// seed ingests the seed categories the run selected.
func (a *app) seed(ctx context.Context) error {
	if a.skipped("seeding") {
		return nil
	}
	if !a.cfg.Seed.Enabled() {
		a.logger.Info().Msg("seeding not requested, nothing to do")
		return nil
	}
	sources, err := seed.ResolveActiveSources(a.cfg.Seed, a.cfg.Categories)
	if err != nil {
		a.logger.Error().Err(err).Msg("resolving seed categories failed")
		return err
	}
	client, err := a.client(ctx)
	if err != nil {
		return err
	}
	pipeline := seed.NewPipeline(client, a.loader, a.logger,
		seed.WithConvertEmptyValues(a.cfg.ConvertEmptyValues))
	return pipeline.Seed(ctx, sources)
}

// start prepares a running local instance: the process itself is managed
// externally, so this only migrates and seeds according to configuration.
func (a *app) start(ctx context.Context) error {
	if a.skipped("start") {
		return nil
	}
	a.logger.Info().Str("host", a.cfg.Host).Int("port", a.cfg.Port).
		Msg("expecting a DynamoDB Local instance")
	if a.cfg.Migrate {
		if err := a.migrate(ctx); err != nil {
			return err
		}
	}
	if a.cfg.Seed.Enabled() {
		return a.seed(ctx)
	}
	return nil
}

// stop is gated like every other handler; instance shutdown is managed
// externally.
func (a *app) stop(context.Context) error {
	if a.skipped("stop") {
		return nil
	}
	a.logger.Info().Msg("local instance lifecycle is managed externally, nothing to stop")
	return nil
}
