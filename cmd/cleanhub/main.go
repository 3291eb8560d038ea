// Command cleanhub cleans Ethiopic text corpora and trains classifiers on them.
package main

import (
	"os"

	"github.com/custodia-labs/cleanhub/internal/adapters/driven/cloud"
	"github.com/custodia-labs/cleanhub/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cleanhub/internal/adapters/driven/corpus"
	"github.com/custodia-labs/cleanhub/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cleanhub/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/cleanhub/internal/adapters/driving/cli"
	"github.com/custodia-labs/cleanhub/internal/classifier"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
	"github.com/custodia-labs/cleanhub/internal/core/services"
	"github.com/custodia-labs/cleanhub/internal/logger"
	"github.com/custodia-labs/cleanhub/internal/normalisers"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(buildServices); err != nil {
		os.Exit(1)
	}
}

func buildServices(configPath string, noHistory bool) (*cli.Services, error) {
	settings, err := file.NewLoader().Load(configPath)
	if err != nil {
		return nil, err
	}

	store := corpus.New()
	backend := classifier.NewBackend(classifier.OptionsFromSettings(settings.Model))
	objects := cloud.NewFactory(settings.Cloud.RequestsPerSecond)

	preprocess := services.NewPreprocessService(store, normalisers.DefaultRegistry())
	if settings.Cleaning.Workers > 0 {
		preprocess.SetWorkers(settings.Cleaning.Workers)
	}

	runStore, closeFn := openRunStore(settings.Runs.DBDir, noHistory)

	return &cli.Services{
		Preprocess: preprocess,
		Model:      services.NewModelService(store, backend),
		Cloud:      services.NewSyncService(&settings.Cloud, objects.NewObjectStore),
		Runs:       services.NewRunService(runStore),
		Settings:   settings,
		Close:      closeFn,
	}, nil
}

// openRunStore opens the SQLite history, falling back to memory when it
// cannot be opened so that pipeline commands still run.
func openRunStore(dir string, noHistory bool) (driven.RunStore, func() error) {
	if noHistory {
		return memory.NewRunStore(), nil
	}

	store, err := sqlite.NewStore(dir)
	if err != nil {
		logger.Warn("run history disabled: %v", err)
		return memory.NewRunStore(), nil
	}
	logger.Debug("run history at %s", store.Path())
	return store, store.Close
}
