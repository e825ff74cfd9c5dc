package main

import (
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/achilleasa/gopher-console/internal/render"
	"github.com/achilleasa/gopher-console/internal/vga"
)

// NewViewCommand builds the view command.
func NewViewCommand(a *app) *cobra.Command {
	var in inputFlags
	var image string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show the simulated screen full-screen until a key is pressed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("view needs a terminal")
			}

			var (
				buf     *vga.Buffer
				console *vga.Writer
				err     error
			)
			if image != "" {
				buf, err = loadImage(image)
			} else {
				var attr vga.Attr
				var input []byte
				if attr, err = in.attr(cmd, a.cfg); err != nil {
					return err
				}
				if input, err = in.read(cmd, args); err != nil {
					return err
				}
				buf, console, err = simulate(cmd.Context(), attr, input)
			}
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			return view(screen, buf, console)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&image, "image", "", "show a raw image saved by dump instead of simulating input")

	return cmd
}

// view paints buf and waits for a key press. The cursor is shown only when
// console is set.
func view(screen tcell.Screen, buf *vga.Buffer, console *vga.Writer) error {
	paint := func() {
		screen.Clear()
		if console != nil {
			row, col := console.Position()
			render.Paint(screen, buf, row, col)
		} else {
			render.Paint(screen, buf, 0, 0)
			screen.HideCursor()
		}
		screen.Show()
	}

	paint()
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			paint()
			screen.Sync()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
