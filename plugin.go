package main

// The plugin pipeline. Every editor behavior, from key handling to drawing
// the status bar, is a plugin registered in a fixed order. Events and
// commands stop at the first plugin that consumes them; rendering always
// runs every plugin, in order, so later plugins may overwrite what earlier
// ones drew.

import "github.com/nsf/termbox-go"

// EventResult reports whether a plugin consumed an event or command.
type EventResult int

const (
	Ignored EventResult = iota
	Consumed
)

// Plugin is an independently registered unit of editor behavior. The editor
// reference passed to each call is only valid for the duration of that call.
type Plugin interface {
	// Init runs once per plugin, in registration order, before the first
	// render.
	Init(e *Editor)
	// HandleEvent processes one input event. Returning Consumed stops the
	// chain.
	HandleEvent(e *Editor, ev termbox.Event) EventResult
	// HandleCommand processes one colon command. Returning Consumed stops
	// the chain.
	HandleCommand(e *Editor, cmd string) EventResult
	// Render draws into the shared frame context. Every plugin's Render
	// runs every frame.
	Render(e *Editor, ctx *RenderContext)
}

// BasePlugin provides no-op implementations so plugins only declare the
// capabilities they use.
type BasePlugin struct{}

func (BasePlugin) Init(e *Editor) {}

func (BasePlugin) HandleEvent(e *Editor, ev termbox.Event) EventResult {
	return Ignored
}

func (BasePlugin) HandleCommand(e *Editor, cmd string) EventResult {
	return Ignored
}

func (BasePlugin) Render(e *Editor, ctx *RenderContext) {}

// dispatchEvent runs the event chain: plugins in registration order, stopping
// at the first Consumed.
func dispatchEvent(plugins []Plugin, e *Editor, ev termbox.Event) {
	for _, p := range plugins {
		if p.HandleEvent(e, ev) == Consumed {
			break
		}
	}
}

// dispatchCommand runs the command chain for a single command string, with
// the same short-circuit contract as events.
func dispatchCommand(plugins []Plugin, e *Editor, cmd string) {
	for _, p := range plugins {
		if p.HandleCommand(e, cmd) == Consumed {
			break
		}
	}
}

// renderAll builds a fresh frame and runs every plugin's Render over it,
// unconditionally and in order.
func renderAll(plugins []Plugin, e *Editor) *RenderContext {
	ctx := NewRenderContext(e.screenWidth, e.screenHeight)
	for _, p := range plugins {
		p.Render(e, ctx)
	}
	return ctx
}

// Style is a foreground/background attribute pair for a run of cells.
type Style struct {
	Fg termbox.Attribute
	Bg termbox.Attribute
}

// StyledSpan colors a contiguous run of characters within one rendered row.
// Start and Len are rune offsets into the row text.
type StyledSpan struct {
	Start int
	Len   int
	Style Style
}

// RenderContext is the per-frame output surface. It is rebuilt from scratch
// every frame and never carries state across frames.
type RenderContext struct {
	width   int
	height  int
	lines   [][]rune
	spans   [][]StyledSpan
	cursorX int
	cursorY int
	// hasCursor is false until some plugin places the terminal cursor.
	hasCursor bool
}

// NewRenderContext creates an empty frame of the given size.
func NewRenderContext(width, height int) *RenderContext {
	return &RenderContext{
		width:  width,
		height: height,
		lines:  make([][]rune, height),
		spans:  make([][]StyledSpan, height),
	}
}

// SetLine replaces the text of a screen row, truncated to the frame width.
// Out-of-range rows are ignored.
func (ctx *RenderContext) SetLine(row int, text []rune) {
	if row < 0 || row >= len(ctx.lines) {
		return
	}
	if ctx.width <= 0 {
		ctx.lines[row] = nil
		return
	}
	if len(text) > ctx.width {
		text = text[:ctx.width]
	}
	ctx.lines[row] = append([]rune{}, text...)
}

// SetSpans replaces the styled spans of a screen row. Spans are expected to
// be non-overlapping and ordered by start.
func (ctx *RenderContext) SetSpans(row int, spans []StyledSpan) {
	if row < 0 || row >= len(ctx.spans) {
		return
	}
	ctx.spans[row] = spans
}

// SetCursor places the terminal cursor. The frame carries at most one
// placement; the last caller wins.
func (ctx *RenderContext) SetCursor(x, y int) {
	ctx.cursorX = x
	ctx.cursorY = y
	ctx.hasCursor = true
}
