package main

// The entry point of the vix editor. It handles command-line flags, acquires
// the terminal (termbox), registers the plugin chain, and runs the main
// loop: one input event, one dispatch-and-render cycle, strictly in order.

import (
	"flag"
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	InitConfig()

	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	InitFileTypes()

	if Config.ShowColors {
		PrintColors()
		return
	}

	if Config.ShowInfo {
		PrintInfo()
		return
	}

	// Acquire the terminal. The deferred Close restores it on every exit
	// path, including panics unwinding through main.
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		os.Exit(1)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)

	filename := ""
	if flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	width, height := termbox.Size()
	editor := NewEditor(width, height, filename)

	// Registration order is the dispatch order: input handlers first, then
	// the render layers bottom to top.
	plugins := []Plugin{
		&FileCommandPlugin{},
		&ModePlugin{},
		&CommandLinePlugin{},
		&MotionPlugin{},
		&InsertPlugin{},
		&BufferRenderPlugin{},
		NewSyntaxHighlightPlugin(),
		&StatusBarPlugin{},
		&CommandLineRenderPlugin{},
		&CursorRenderPlugin{},
	}

	for _, p := range plugins {
		p.Init(editor)
	}

	drawFrame(renderAll(plugins, editor))

	for {
		ev := termbox.PollEvent()

		// A resize updates the editor geometry but still flows through the
		// event chain like any other event.
		if ev.Type == termbox.EventResize {
			editor.setScreenSize(ev.Width, ev.Height)
		}

		dispatchEvent(plugins, editor, ev)

		for _, cmd := range editor.takeCommands() {
			dispatchCommand(plugins, editor, cmd)
		}

		// Quit is cooperative: checked once per tick, after command
		// processing, never mid-dispatch.
		if editor.shouldQuit {
			break
		}

		drawFrame(renderAll(plugins, editor))
	}
}
