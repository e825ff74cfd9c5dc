package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/achilleasa/gopher-console/internal/config"
	"github.com/achilleasa/gopher-console/internal/vga"
)

// NewShowCommand builds the show command.
func NewShowCommand(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "show <image>",
		Short: "Print a raw video memory image saved by dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderMode := a.cfg.Render.Mode
			if cmd.Flags().Changed("mode") {
				renderMode = mode
			}
			if err := checkMode(renderMode); err != nil {
				return err
			}
			buf, err := loadImage(args[0])
			if err != nil {
				return err
			}
			return writeGrid(cmd.Context(), cmd.OutOrStdout(), renderMode, buf, nil)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", config.DefaultRenderMode, "output mode: auto, color or plain")

	return cmd
}

func loadImage(path string) (*vga.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	buf := vga.NewBuffer()
	if err := buf.LoadBytes(data); err != nil {
		return nil, err
	}
	return buf, nil
}
