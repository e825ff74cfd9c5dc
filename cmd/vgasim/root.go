package main

import (
	"io"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"github.com/achilleasa/gopher-console/internal/config"
)

const skipConfigAnnotation = "vgasim/skip-config"

// app carries state shared by every subcommand.
type app struct {
	loader *config.Loader
	cfg    config.Config
	closer io.Closer
}

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *config.Loader) *cobra.Command {
	var configFile string

	a := &app{loader: loader, cfg: config.DefaultConfig()}
	r := newRunner(a)

	cmd := &cobra.Command{
		Use:           "vgasim [file]",
		Short:         "Hosted simulator for the VGA text console",
		Long:          "Hosted simulator for the VGA text console. Without a subcommand it behaves like run.",
		Args:          cobra.MaximumNArgs(1),
		RunE:          r.run,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
			if cmd.Annotations[skipConfigAnnotation] == "" {
				cfg, err := loader.Load()
				if err != nil {
					return err
				}
				a.cfg = cfg
			} else {
				a.cfg.Log.File = loader.Viper().GetString("log.file")
			}

			path := a.cfg.Log.File
			if path == "" {
				return nil
			}
			logger, closer, err := openFileLogger(path)
			if err != nil {
				return err
			}
			a.closer = closer
			cmd.SetContext(pslog.ContextWithLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer == nil {
				return nil
			}
			err := a.closer.Close()
			a.closer = nil
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("log-file", "", "append logs to this file instead of stderr (bare --log-file uses "+config.DefaultLogPath()+")")
	logFlag := cmd.PersistentFlags().Lookup("log-file")
	logFlag.NoOptDefVal = config.DefaultLogPath()
	_ = loader.Viper().BindPFlag("log.file", logFlag)
	r.register(cmd)

	cmd.AddCommand(NewRunCommand(a))
	cmd.AddCommand(NewDumpCommand(a))
	cmd.AddCommand(NewShowCommand(a))
	cmd.AddCommand(NewViewCommand(a))
	cmd.AddCommand(NewConfigCommand(a))

	return cmd
}
