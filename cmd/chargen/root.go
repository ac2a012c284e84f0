package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/ninthworld/chargen/internal/config"
	"github.com/ninthworld/chargen/internal/domain/catalog"
	"github.com/ninthworld/chargen/internal/domain/validation"
	cherr "github.com/ninthworld/chargen/internal/errors"
	"github.com/ninthworld/chargen/internal/repositories/sheets"
	"github.com/ninthworld/chargen/internal/services/vault"
)

var (
	dataDir        string
	storageBackend string
	outputDir      string
)

var rootCmd = &cobra.Command{
	Use:   "chargen",
	Short: "Ninth World character generator",
	Long: `chargen assembles Numenera characters from TOML game data:
roll complete characters, validate the data files, and manage the
vault of finished sheets.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "catalog directory (default $DATA_DIR or ./data)")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "sheet storage backend: file, redis or memory")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "sheet directory for the file backend")
}

// loadConfig merges environment configuration with command-line flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if storageBackend != "" {
		cfg.Storage.Backend = storageBackend
	}
	if outputDir != "" {
		cfg.Storage.OutputDir = outputDir
	}
	return cfg, nil
}

// loadCatalog reads the game data and refuses to proceed when it
// carries blocking errors
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	report := validation.CheckCatalog(cat)
	if report.HasErrors() {
		for _, v := range report.Errors() {
			fmt.Fprintln(os.Stderr, v.String())
		}
		return nil, cherr.CorruptDataf("catalog in %s has %d errors", cfg.Data.Dir, len(report.Errors()))
	}

	return cat, nil
}

func newVault(cfg *config.Config) (vault.Service, error) {
	var (
		repo sheets.Repository
		err  error
	)

	switch cfg.Storage.Backend {
	case "file":
		repo, err = sheets.NewFileRepository(&sheets.FileRepoConfig{Dir: cfg.Storage.OutputDir})
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		repo, err = sheets.NewRedisRepository(&sheets.RedisRepoConfig{Client: client})
	case "memory":
		repo = sheets.NewInMemoryRepository()
	default:
		return nil, cherr.InvalidArgumentf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, err
	}

	return vault.NewService(&vault.ServiceConfig{Repository: repo})
}
