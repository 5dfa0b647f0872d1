// focusdemo lays out a grid of inputs with a custom view to show how focus
// moves by screen position: j/k change rows, h/l move along a row.
package main

import (
	"context"
	"log"
	"os"

	. "mpctui"
)

func main() {
	cfg := DefaultConfig()
	cfg.Panel = PanelSize{Width: 48, Height: 12}

	app, err := NewApp(NewTerminal(os.Stdin, os.Stdout), cfg)
	if err != nil {
		log.Fatal(err)
	}

	app.SetView(func(f *Frame) {
		f.Title("Focus Demo - h/j/k/l to move, q to quit")
		f.Input("Name", "alice", 12)
		f.Input("Role", "drums", 8)
		f.NextRow()
		f.Input("BPM", "96.0", 0)
		f.NextRow()
		f.MoveRenderCursor(4, 1)
		f.Input("Bars", "16", 4)
		f.Input("Loop", "on", 4)
		f.Actions([]string{"Play", "Record", "Stop"}, f.ActiveAction())
	})

	if err := app.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
