package main

import (
	"os"

	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// kdfFlags are shared by every subcommand; zero values fall back to env,
// the config file and the shipped defaults.
type kdfFlags struct {
	salt       string
	iterations int
	configPath string
	verbose    bool
}

var rootFlags kdfFlags

var rootCmd = &cobra.Command{
	Use:   "secret-encoder",
	Short: "Encrypts the secret message bundle behind a 6-digit passcode",
	Long: `secret-encoder turns a message, an image, an optional background tile and
an audio clip into the encrypted bundle served to the reveal client.`,
	SilenceUsage: true,
	Version:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(banner())
		return cmd.Help()
	},
}

func banner() string {
	return figure.NewFigure("secret", "", true).String()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.salt, "salt", "", "PBKDF2 salt (must match the client)")
	rootCmd.PersistentFlags().IntVar(&rootFlags.iterations, "iterations", 0, "PBKDF2 iteration count (must match the client)")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", "", "config file path (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newEncodeCmd(), newDecodeCmd())
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEncoder builds the encoder service for bundleDir. An empty bundleDir
// keeps the configured one.
func newEncoder(bundleDir string) (service.EncoderService, error) {
	cfg, err := config.GetEncoderConfig(&config.StructuredConfig{
		App: config.App{
			KDFSalt:       rootFlags.salt,
			KDFIterations: rootFlags.iterations,
		},
		Storage:      config.Storage{BundleDir: bundleDir},
		JSONFilePath: rootFlags.configPath,
	})
	if err != nil {
		return nil, err
	}

	log := logger.Nop()
	if rootFlags.verbose {
		log = logger.NewLoggerTo(os.Stderr, "secret-encoder")
	}

	return service.NewEncoder(cfg, log)
}
