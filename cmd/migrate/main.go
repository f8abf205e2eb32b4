// Command migrate runs the offline legacy-data migration: it reads legacy
// test results from a sqlite database, converts them to base units, validates
// the batch, and either persists the migrated triples or emits the equivalent
// SQL UPDATE statements for manual application.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/okian/uom/internal/adapters/repository"
	"github.com/okian/uom/internal/adapters/sqlgen"
	"github.com/okian/uom/internal/config"
	"github.com/okian/uom/internal/migrate"
	"github.com/okian/uom/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		dbPath  = flag.String("db", "", "path to the sqlite database (defaults to config db_path)")
		workers = flag.Int("workers", 0, "migration worker count (defaults to config migrate_workers)")
		emitSQL = flag.Bool("emit-sql", false, "print UPDATE statements instead of writing migrated rows")
		dryRun  = flag.Bool("dry-run", false, "migrate and validate without persisting anything")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		return 1
	}
	log := logger.Get().Named("migrate-job")

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 1
	}
	if *dbPath == "" {
		*dbPath = cfg.DBPath
	}
	if *workers <= 0 {
		*workers = cfg.MigrateWorkers
	}

	store, err := repository.Open(*dbPath)
	if err != nil {
		log.Error(ctx, "failed to open store", logger.Error(err))
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn(ctx, "failed to close store", logger.Error(err))
		}
	}()

	records, err := store.LegacyResults(ctx)
	if err != nil {
		log.Error(ctx, "failed to load legacy results", logger.Error(err))
		return 1
	}
	log.Info(ctx, "loaded legacy results", logger.Int("records", len(records)))

	migrator := migrate.New(
		migrate.WithWorkers(*workers),
		migrate.WithLogger(log),
	)
	migrated := migrator.Batch(ctx, records)
	report := migrate.Validate(records, migrated)

	for _, warning := range report.Warnings {
		log.Warn(ctx, "validation warning", logger.String("warning", warning))
	}
	for _, e := range report.Errors {
		log.Error(ctx, "validation error", logger.String("error", e))
	}
	log.Info(ctx, "validation complete",
		logger.Int("total", report.Stats.Total),
		logger.Int("converted", report.Stats.Converted),
		logger.Int("unchanged", report.Stats.Unchanged),
		logger.Int("failed", report.Stats.Failed))

	if !report.Success {
		log.Error(ctx, "validation failed; nothing persisted")
		return 1
	}

	switch {
	case *dryRun:
		log.Info(ctx, "dry run; nothing persisted")
	case *emitSQL:
		for _, stmt := range sqlgen.New().UpdateStatements(migrated) {
			fmt.Println(stmt)
		}
	default:
		if err := store.SaveMigrated(ctx, migrated); err != nil {
			log.Error(ctx, "failed to persist migrated results", logger.Error(err))
			return 1
		}
		log.Info(ctx, "migrated results persisted", logger.Int("records", len(migrated)))
	}

	return 0
}
