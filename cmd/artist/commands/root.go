package commands

import (
	"fmt"

	"github.com/msuss/atelier/internal/app"
	"github.com/msuss/atelier/internal/config"
	"github.com/msuss/atelier/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	artistsDir   string
	templatesDir string
	provider     string
	logLevel     string
	seed         int64

	// atelier is built once flags are parsed.
	atelier *app.Atelier
	logger  *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "artist",
	Short: "Atelier - artist agents that create, critique and evolve",
	Long: `Atelier runs a studio of autonomous artist agents. Each artist has a
personality with emotions, concepts and confidence that shift as it creates
work, receives feedback and critiques its peers.

Artists live as plain files under the artists directory, so every command
works directly on the same state the server uses.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	cobra.OnInitialize(func() { _ = config.Load() })

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&artistsDir, "artists-dir", "", "Directory holding the artists (default from ARTISTS_DIR or ./artists)")
	flags.StringVar(&templatesDir, "templates-dir", "", "Directory holding custom templates (default from TEMPLATES_DIR)")
	flags.StringVar(&provider, "provider", "", "LLM provider: gemini, openai, anthropic, cerebras or mock (default from LLM_PROVIDER)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.Int64Var(&seed, "seed", 0, "Random seed for drift and pairing (0 is time based)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = logging.New(logLevel, true)
	if err != nil {
		return err
	}

	opts := app.Options{
		ArtistsDir:   orDefault(artistsDir, config.ArtistsDir()),
		TemplatesDir: orDefault(templatesDir, config.TemplatesDir()),
		Provider:     orDefault(provider, config.LLMProvider()),
		Model:        config.LLMModel(),
		BaseURL:      config.LLMBaseURL(),
		Timeout:      config.LLMTimeout(),
		Seed:         seed,
		GalleryTTL:   config.GalleryCacheTTL(),
	}
	if seed == 0 {
		opts.Seed = config.RandomSeed()
	}
	opts.APIKey = config.APIKeyFor(opts.Provider)

	atelier = app.New(opts, logger)
	return nil
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
