package main

// The terminal painter. It takes a completed frame and pushes it to termbox,
// clearing stale content and advancing by display width so wide characters
// occupy two cells.

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// drawFrame paints a render context to the terminal and flushes it.
func drawFrame(ctx *RenderContext) {
	defaultStyle := themeStyle(ColorDefault)
	termbox.Clear(defaultStyle.Fg, defaultStyle.Bg)

	for y, line := range ctx.lines {
		x := 0
		for i, r := range line {
			if x >= ctx.width {
				break
			}
			st := styleAt(ctx.spans[y], i, defaultStyle)
			termbox.SetCell(x, y, r, st.Fg, st.Bg)
			x += runewidth.RuneWidth(r)
		}
	}

	if ctx.hasCursor {
		termbox.SetCursor(ctx.cursorX, ctx.cursorY)
	} else {
		termbox.HideCursor()
	}
	termbox.Flush()
}

// styleAt returns the style covering rune column col. Spans within a row are
// ordered by start and non-overlapping, so the first hit wins.
func styleAt(spans []StyledSpan, col int, fallback Style) Style {
	for _, span := range spans {
		if col < span.Start {
			break
		}
		if col < span.Start+span.Len {
			return span.Style
		}
	}
	return fallback
}
