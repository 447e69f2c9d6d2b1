package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wortkiste/internal/app"
	"wortkiste/internal/config"
	"wortkiste/internal/logging"
)

var (
	configFile  string
	appInstance *app.App
)

var rootCmd = &cobra.Command{
	Use:   "wortkiste",
	Short: "Dictionaries and flashcards for language learners",
	Long: `wortkiste manages local dictionary databases and a flashcard
collection.

Dictionaries are shipped as compressed blobs and decompressed into the data
directory on first use. Saved words live in a SQLite database next to them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		appInstance, err = app.New(cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appInstance == nil {
			return nil
		}
		return appInstance.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default ./config.yaml or $HOME/.config/wortkiste/config.yaml)")
}

// GetApp returns the initialized application
func GetApp() *app.App {
	return appInstance
}
