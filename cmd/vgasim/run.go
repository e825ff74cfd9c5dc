package main

import (
	"github.com/spf13/cobra"

	"github.com/achilleasa/gopher-console/internal/config"
)

// runner holds the flags of the run command. The root command carries its
// own runner so that a bare "vgasim" behaves like "vgasim run".
type runner struct {
	a    *app
	in   inputFlags
	mode string
}

func newRunner(a *app) *runner {
	return &runner{a: a}
}

func (r *runner) register(cmd *cobra.Command) {
	r.in.register(cmd)
	cmd.Flags().StringVarP(&r.mode, "mode", "m", config.DefaultRenderMode, "output mode: auto, color or plain")
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	renderMode := r.a.cfg.Render.Mode
	if cmd.Flags().Changed("mode") {
		renderMode = r.mode
	}
	if err := checkMode(renderMode); err != nil {
		return err
	}

	attr, err := r.in.attr(cmd, r.a.cfg)
	if err != nil {
		return err
	}
	input, err := r.in.read(cmd, args)
	if err != nil {
		return err
	}
	buf, console, err := simulate(cmd.Context(), attr, input)
	if err != nil {
		return err
	}
	return writeGrid(cmd.Context(), cmd.OutOrStdout(), renderMode, buf, console)
}

// NewRunCommand builds the run command.
func NewRunCommand(a *app) *cobra.Command {
	r := newRunner(a)
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Write text through a simulated console and print the screen",
		Args:  cobra.MaximumNArgs(1),
		RunE:  r.run,
	}
	r.register(cmd)
	return cmd
}
