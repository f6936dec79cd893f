// Package cli implements the lexorank command line tool.
package cli

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFileName      = ".lexorank"
	ConfigFileExtension = ".yaml"
	EnvPrefix           = "LEXORANK"
)

// Configuration keys.
const (
	KeyBucket   = "bucket"
	KeyOutput   = "output"
	KeyLogLevel = "log-level"
)

type app struct {
	v       *viper.Viper
	log     zerolog.Logger
	cfgFile string
}

// NewRootCommand returns the lexorank command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: zerolog.Nop(),
	}

	a.v.SetDefault(KeyBucket, "0")
	a.v.SetDefault(KeyOutput, OutputText)
	a.v.SetDefault(KeyLogLevel, zerolog.WarnLevel.String())

	root := &cobra.Command{
		Use:   "lexorank",
		Short: "Generate and compare lexicographically sortable ranks",
		Long: `lexorank generates rank strings that sort the same way as the positions
they stand for. New ranks can be placed before, after, or between existing
ranks without renumbering their neighbours.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/"+ConfigFileName+ConfigFileExtension+")")
	flags.String(KeyBucket, "0", "bucket used by min, max and initial")
	flags.StringP(KeyOutput, "o", OutputText, "output format: text, json or yaml")
	flags.String(KeyLogLevel, zerolog.WarnLevel.String(), "log level")

	for _, key := range []string{KeyBucket, KeyOutput, KeyLogLevel} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.minCommand(),
		a.maxCommand(),
		a.middleCommand(),
		a.initialCommand(),
		a.parseCommand(),
		a.nextCommand(),
		a.prevCommand(),
		a.betweenCommand(),
		a.moveCommand(),
		a.sortCommand(),
		versionCommand(),
	)

	return root
}

// Execute runs the command tree with the process arguments.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) (err error) {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		a.v.AddConfigPath(home)
		a.v.SetConfigName(ConfigFileName)
		a.v.SetConfigType(strings.TrimPrefix(ConfigFileExtension, "."))
	}

	loaded := true

	err = a.v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Error.New("error reading config file: %w", err)
		}

		loaded = false
	}

	level, err := zerolog.ParseLevel(a.v.GetString(KeyLogLevel))
	if err != nil {
		return err
	}

	a.log = zerolog.New(cmd.ErrOrStderr()).
		Level(level).
		With().
		Timestamp().
		Str("cmd", cmd.Name()).
		Logger()

	if loaded {
		a.log.Debug().Str("config", a.v.ConfigFileUsed()).Msg("loaded config")
	}

	return nil
}
