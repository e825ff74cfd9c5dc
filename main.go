package main

import (
	"github.com/achilleasa/gopher-console/internal/vga"
)

const greetings = 327

func main() {
	// console points to the physical memory address of the mapped VGA text
	// buffer.
	console := vga.NewWriter(vga.MapBuffer(vga.PhysAddr))

	// clear framebuffer.
	console.Clear()

	// print hello world, enough times to scroll the screen.
	for i := 0; i < greetings; i++ {
		console.MustPrintf("Hello Gophers! %d\n", i)
	}

	console.SetAttr(vga.MakeAttr(vga.Black, vga.Green))
	console.MustPrintf("halted")

	for {
	}
}
