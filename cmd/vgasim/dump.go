package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"github.com/achilleasa/gopher-console/internal/vga"
)

// NewDumpCommand builds the dump command.
func NewDumpCommand(a *app) *cobra.Command {
	var in inputFlags
	var output string

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Write text through a simulated console and save the raw video memory image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attr, err := in.attr(cmd, a.cfg)
			if err != nil {
				return err
			}
			input, err := in.read(cmd, args)
			if err != nil {
				return err
			}
			buf, _, err := simulate(cmd.Context(), attr, input)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			pslog.Ctx(cmd.Context()).Info("image written", "path", output, "size", vga.ImageSize)
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "image path, or - for stdout")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
