// Package cli provides the cobra command tree for cleanhub.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
	"github.com/custodia-labs/cleanhub/internal/logger"
)

// skipServicesAnnotation marks commands that run without building services.
const skipServicesAnnotation = "cleanhub/skip-services"

var version = "dev"

var (
	verbose    bool
	configPath string
	noHistory  bool
)

// Services wired by Execute before a command runs.
var (
	preprocessService driving.PreprocessService
	modelService      driving.ModelService
	cloudSync         driving.CloudSync
	runService        driving.RunService
	settings          *domain.Settings
)

// Services bundles the driving ports the commands need.
type Services struct {
	Preprocess driving.PreprocessService
	Model      driving.ModelService
	Cloud      driving.CloudSync
	Runs       driving.RunService
	Settings   *domain.Settings

	// Close releases resources such as the run database. May be nil.
	Close func() error
}

// Builder constructs services from the persistent flags.
type Builder func(configPath string, noHistory bool) (*Services, error)

var (
	builder       Builder
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "cleanhub",
	Short: "Clean Ethiopic text and train text classifiers",
	Long: `cleanhub normalises raw Amharic/Ge'ez text corpora, trains a TF-IDF
logistic regression classifier on the cleaned data, evaluates it and
labels new text. Artifacts can be synced with S3, GCS or Azure Blob
Storage when a cloud section is configured.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug and info logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML or TOML config file")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "keep run history in memory only")
}

func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.Section(cmd.CommandPath())

	if cmd.Annotations[skipServicesAnnotation] == "true" || builder == nil {
		return nil
	}

	svc, err := builder(configPath, noHistory)
	if err != nil {
		return err
	}

	preprocessService = svc.Preprocess
	modelService = svc.Model
	cloudSync = svc.Cloud
	runService = svc.Runs
	settings = svc.Settings
	closeServices = svc.Close
	return nil
}

// Execute runs the root command. Services are built lazily by build so that
// commands like version work without a config file.
func Execute(build Builder) error {
	builder = build

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("closing services: %v", cerr)
		}
		closeServices = nil
	}
	return err
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// currentSettings returns the loaded settings or an empty value.
func currentSettings() *domain.Settings {
	if settings == nil {
		return &domain.Settings{}
	}
	return settings
}

// recordRun opens a run record and returns a closer that finishes it.
func recordRun(ctx context.Context, command string) func(detail string, metrics *domain.Metrics, err error) {
	if runService == nil {
		return func(string, *domain.Metrics, error) {}
	}
	run := runService.Start(ctx, command)
	return func(detail string, metrics *domain.Metrics, err error) {
		runService.Finish(ctx, run, detail, metrics, err)
	}
}

// syncDownload pulls an artifact kind when cloud sync is wired.
func syncDownload(ctx context.Context, what, localDir string) {
	if cloudSync != nil {
		cloudSync.MaybeDownload(ctx, what, localDir)
	}
}

// syncUpload pushes an artifact when cloud sync is wired.
func syncUpload(ctx context.Context, localPath, what string) {
	if cloudSync != nil {
		cloudSync.MaybeUpload(ctx, localPath, what)
	}
}

var errNoInput = errors.New("no input text")
