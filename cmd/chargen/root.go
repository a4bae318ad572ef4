package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/logger"
)

// rootOptions is shared by every subcommand
type rootOptions struct {
	envFile   string
	logLevel  string
	logFormat string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "chargen",
		Short: "Procedural D&D 5e character generator",
		Long: `chargen rolls complete level 1 D&D 5e characters: race, ability scores,
background, class, personality, languages, faith, alignment, proficiencies
and starting equipment.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides CHARGEN_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "text or json (overrides CHARGEN_LOG_FORMAT)")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newSavedCmd(opts),
		newDeleteCmd(opts),
		newSRDCmd(opts),
	)
	return cmd
}

// load reads configuration and installs the logger. Flags win over the
// environment.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load config")
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	if err := logger.Setup(cmd.ErrOrStderr(), logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}); err != nil {
		return err
	}

	o.cfg = cfg
	return nil
}
