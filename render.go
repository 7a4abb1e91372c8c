package main

// Rendering plugins. Each one writes its layer into the shared frame
// context; registration order makes later plugins overlay earlier ones.

import "fmt"

// BufferRenderPlugin draws the visible window of buffer text. Rows past the
// end of the buffer get the usual '~' marker.
type BufferRenderPlugin struct {
	BasePlugin
}

func (p *BufferRenderPlugin) Render(e *Editor, ctx *RenderContext) {
	height := e.contentHeight()
	for row := 0; row < height; row++ {
		bufferY := e.viewport.ScrollY + row
		if bufferY >= e.buffer.LineCount() {
			ctx.SetLine(row, []rune{'~'})
			ctx.SetSpans(row, []StyledSpan{{Start: 0, Len: 1, Style: themeStyle(ColorEmptyLineMarker)}})
			continue
		}
		line := e.buffer.Line(bufferY)
		start := e.viewport.ScrollX
		if start > len(line) {
			start = len(line)
		}
		end := start + ctx.width
		if end > len(line) {
			end = len(line)
		}
		ctx.SetLine(row, line[start:end])
	}
}

// StatusBarPlugin draws the status line: mode, filename, and dirty marker on
// the left; the transient status message, or the cursor position, on the
// right.
type StatusBarPlugin struct {
	BasePlugin
}

func (p *StatusBarPlugin) Render(e *Editor, ctx *RenderContext) {
	if ctx.height == 0 {
		return
	}

	modeStr := "NORMAL"
	modeColor := ColorNormalMode
	switch e.mode {
	case ModeInsert:
		modeStr = "INSERT"
		modeColor = ColorInsertMode
	case ModeCommand:
		modeStr = "COMMAND"
		modeColor = ColorCommandMode
	}

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	dirty := ""
	if e.dirty {
		dirty = " [+]"
	}

	left := fmt.Sprintf("%s %s%s", modeStr, name, dirty)
	right := e.status
	if right == "" {
		right = fmt.Sprintf("Ln %d, Col %d", e.cursor.Y+1, e.cursor.X+1)
	}

	row := e.statusRow()
	line := formatStatusLine(left, right, ctx.width)
	ctx.SetLine(row, line)

	// The mode label gets its mode color, the rest the bar color.
	modeLen := len([]rune(modeStr))
	if modeLen > len(line) {
		modeLen = len(line)
	}
	spans := []StyledSpan{}
	if modeLen > 0 {
		spans = append(spans, StyledSpan{Start: 0, Len: modeLen, Style: themeStyle(modeColor)})
	}
	if len(line) > modeLen {
		spans = append(spans, StyledSpan{Start: modeLen, Len: len(line) - modeLen, Style: themeStyle(ColorStatusBar)})
	}
	ctx.SetSpans(row, spans)
}

// formatStatusLine composes a fixed-width line from left- and right-aligned
// text, both measured in runes. When the right side alone does not fit it
// wins and is truncated; otherwise the left side is truncated to leave at
// least one space before the right side.
func formatStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	rightRunes := []rune(right)
	if len(rightRunes) >= width {
		return rightRunes[:width]
	}

	leftRunes := []rune(left)
	availableLeft := width - len(rightRunes) - 1
	if len(leftRunes) > availableLeft {
		leftRunes = leftRunes[:availableLeft]
	}

	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for len(line) < width-len(rightRunes) {
		line = append(line, ' ')
	}
	return append(line, rightRunes...)
}

// CommandLineRenderPlugin draws the colon prompt while command mode is
// active.
type CommandLineRenderPlugin struct {
	BasePlugin
}

func (p *CommandLineRenderPlugin) Render(e *Editor, ctx *RenderContext) {
	if !e.commandLine.active || ctx.height == 0 {
		return
	}
	prompt := append([]rune{':'}, e.commandLine.input...)
	ctx.SetLine(e.commandRow(), prompt)
}

// CursorRenderPlugin places the terminal cursor: on the command line while
// it is active, otherwise on the buffer cursor translated to screen
// coordinates.
type CursorRenderPlugin struct {
	BasePlugin
}

func (p *CursorRenderPlugin) Render(e *Editor, ctx *RenderContext) {
	if ctx.height == 0 || ctx.width == 0 {
		return
	}

	clamp := func(v, max int) int {
		if v < 0 {
			v = 0
		}
		if v > max {
			v = max
		}
		return v
	}

	if e.commandLine.active {
		row := clamp(e.commandRow(), ctx.height-1)
		col := clamp(1+len(e.commandLine.input), ctx.width-1)
		ctx.SetCursor(col, row)
		return
	}

	row := clamp(e.cursor.Y-e.viewport.ScrollY, ctx.height-1)
	col := clamp(e.cursor.X-e.viewport.ScrollX, ctx.width-1)
	ctx.SetCursor(col, row)
}
