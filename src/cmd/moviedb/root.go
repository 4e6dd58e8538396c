package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"moviedb/src/internal/app"
	"moviedb/src/internal/config"
	"moviedb/src/internal/omdb"
	"moviedb/src/internal/store"
)

const defaultConfigPath = "config.toml"

func newRootCmd() *cobra.Command {
	var configPath string
	var noColor bool
	cmd := &cobra.Command{
		Use:   "moviedb [catalog-file]",
		Short: "Personal movie catalog (list, add, search, stats, website)",
		Long: "moviedb is an interactive movie catalog. It stores records in a " +
			"local file (.json, .csv or .yaml, chosen by extension), looks up " +
			"metadata on OMDb, and can render the catalog as a static website.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; it only exists to carry OMDB_API_KEY.
			_ = godotenv.Load()

			explicit := cmd.Flags().Changed("config")
			cfg, err := config.Load(configPath, explicit)
			if err != nil {
				return err
			}
			catalogPath := cfg.Catalog.Path
			if len(args) == 1 {
				catalogPath = args[0]
			}
			storage, err := store.Open(catalogPath)
			if err != nil {
				return err
			}

			if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
				text.DisableColors()
			}

			a, err := app.New(app.Options{
				Storage:      storage,
				In:           cmd.InOrStdin(),
				Out:          cmd.OutOrStdout(),
				OMDB:         omdb.Client{BaseURL: cfg.OMDB.BaseURL, APIKey: cfg.OMDB.APIKey},
				CountriesURL: cfg.Countries.BaseURL,
				WebsiteDir:   cfg.Website.OutputDir,
				Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
			})
			if err != nil {
				return err
			}
			a.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to config.toml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.AddCommand(newSampleConfigCmd())
	return cmd
}

// newSampleConfigCmd prints the annotated sample configuration.
func newSampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample-config",
		Short: "Print a documented sample config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(config.Sample()))
			return err
		},
	}
}

func execute(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
