package main

import (
	"strings"
	"testing"
)

func TestFormatStatusLine(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"both fit", "NORMAL a.txt", "Ln 1, Col 1", 30, "NORMAL a.txt       Ln 1, Col 1"},
		{"left truncated", "NORMAL averylongfilename.txt", "Ln 1, Col 1", 20, "NORMAL a Ln 1, Col 1"},
		{"right wins when too wide", "NORMAL", "a long status message", 10, "a long sta"},
		{"right exactly width", "NORMAL", "0123456789", 10, "0123456789"},
		{"zero width", "NORMAL", "x", 0, ""},
		{"empty right pads fully", "NORMAL", "", 10, "NORMAL    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(formatStatusLine(tt.left, tt.right, tt.width))
			if got != tt.want {
				t.Errorf("formatStatusLine = %q, want %q", got, tt.want)
			}
			if len([]rune(got)) != tt.width {
				t.Errorf("line width = %d, want %d", len([]rune(got)), tt.width)
			}
		})
	}

	// Composition holds for left fit or truncated: the line always ends with
	// the full right side when the right side fits.
	line := string(formatStatusLine("left", "right", 40))
	if !strings.HasSuffix(line, "right") || !strings.HasPrefix(line, "left") {
		t.Errorf("composed line = %q", line)
	}
}

func TestBufferRenderTildeRows(t *testing.T) {
	e := testEditor("only line")
	ctx := NewRenderContext(e.screenWidth, e.screenHeight)
	(&BufferRenderPlugin{}).Render(e, ctx)

	if got := string(ctx.lines[0]); got != "only line" {
		t.Errorf("row 0 = %q, want buffer text", got)
	}
	for row := 1; row < e.contentHeight(); row++ {
		if got := string(ctx.lines[row]); got != "~" {
			t.Fatalf("row %d = %q, want %q", row, got, "~")
		}
		if len(ctx.spans[row]) != 1 || ctx.spans[row][0].Style != themeStyle(ColorEmptyLineMarker) {
			t.Fatalf("row %d marker spans = %+v", row, ctx.spans[row])
		}
	}
}

func TestBufferRenderViewportSlicing(t *testing.T) {
	e := testEditor("0123456789abcdef")
	e.viewport.ScrollX = 4
	ctx := NewRenderContext(8, 24)
	(&BufferRenderPlugin{}).Render(e, ctx)
	if got := string(ctx.lines[0]); got != "456789ab" {
		t.Errorf("row 0 = %q, want %q", got, "456789ab")
	}
}

func TestBufferRenderScrollPastLineEnd(t *testing.T) {
	e := testEditor("short", "a much longer line here")
	e.viewport.ScrollX = 10
	ctx := NewRenderContext(8, 24)
	(&BufferRenderPlugin{}).Render(e, ctx)
	if got := string(ctx.lines[0]); got != "" {
		t.Errorf("row 0 = %q, want empty for fully scrolled-out line", got)
	}
	if got := string(ctx.lines[1]); got != "ger line" {
		t.Errorf("row 1 = %q, want %q", got, "ger line")
	}
}

func TestStatusBarComposition(t *testing.T) {
	e := testEditor("hello")
	e.filename = "a.txt"
	e.dirty = true
	e.mode = ModeInsert

	ctx := NewRenderContext(e.screenWidth, e.screenHeight)
	(&StatusBarPlugin{}).Render(e, ctx)

	line := string(ctx.lines[e.statusRow()])
	if !strings.HasPrefix(line, "INSERT a.txt [+]") {
		t.Errorf("status left = %q", line)
	}
	if !strings.HasSuffix(line, "Ln 1, Col 1") {
		t.Errorf("status right = %q", line)
	}
	if len([]rune(line)) != e.screenWidth {
		t.Errorf("status width = %d, want %d", len([]rune(line)), e.screenWidth)
	}

	spans := ctx.spans[e.statusRow()]
	if len(spans) != 2 {
		t.Fatalf("status spans = %+v, want mode label plus bar", spans)
	}
	if spans[0].Len != len("INSERT") || spans[0].Style != themeStyle(ColorInsertMode) {
		t.Errorf("mode span = %+v", spans[0])
	}
	if spans[1].Style != themeStyle(ColorStatusBar) {
		t.Errorf("bar span = %+v", spans[1])
	}
}

func TestStatusBarUnnamedBuffer(t *testing.T) {
	e := testEditor()
	e.setStatus("Wrote a.txt")
	ctx := NewRenderContext(e.screenWidth, e.screenHeight)
	(&StatusBarPlugin{}).Render(e, ctx)

	line := string(ctx.lines[e.statusRow()])
	if !strings.Contains(line, "[No Name]") {
		t.Errorf("status = %q, want placeholder name", line)
	}
	if !strings.HasSuffix(line, "Wrote a.txt") {
		t.Errorf("status = %q, want message on the right", line)
	}
}

func TestCommandLineRenderOnlyWhenActive(t *testing.T) {
	e := testEditor()
	p := &CommandLineRenderPlugin{}

	ctx := NewRenderContext(e.screenWidth, e.screenHeight)
	p.Render(e, ctx)
	if ctx.lines[e.screenHeight-1] != nil {
		t.Error("command line drawn while inactive")
	}

	e.commandLine.active = true
	e.commandLine.input = []rune("wq")
	ctx = NewRenderContext(e.screenWidth, e.screenHeight)
	p.Render(e, ctx)
	if got := string(ctx.lines[e.commandRow()]); got != ":wq" {
		t.Errorf("command row = %q, want %q", got, ":wq")
	}
}

func TestCursorPlacement(t *testing.T) {
	e := testEditor("hello world")
	e.cursor = Cursor{X: 6, Y: 0}
	p := &CursorRenderPlugin{}

	ctx := NewRenderContext(e.screenWidth, e.screenHeight)
	p.Render(e, ctx)
	if !ctx.hasCursor || ctx.cursorX != 6 || ctx.cursorY != 0 {
		t.Errorf("cursor = (%d,%d) has=%v, want (6,0)", ctx.cursorX, ctx.cursorY, ctx.hasCursor)
	}

	// Scrolled viewport shifts the screen position.
	e.viewport.ScrollX = 4
	ctx = NewRenderContext(e.screenWidth, e.screenHeight)
	p.Render(e, ctx)
	if ctx.cursorX != 2 {
		t.Errorf("cursor col = %d, want 2 after scroll", ctx.cursorX)
	}

	// Active command line moves the cursor to the prompt.
	e.commandLine.active = true
	e.commandLine.input = []rune("w a")
	ctx = NewRenderContext(e.screenWidth, e.screenHeight)
	p.Render(e, ctx)
	if ctx.cursorY != e.commandRow() || ctx.cursorX != 4 {
		t.Errorf("cursor = (%d,%d), want (4,%d)", ctx.cursorX, ctx.cursorY, e.commandRow())
	}
}

func TestCursorClampedToFrame(t *testing.T) {
	e := testEditor("hello")
	e.cursor = Cursor{X: 4, Y: 0}
	ctx := NewRenderContext(3, 2)
	(&CursorRenderPlugin{}).Render(e, ctx)
	if ctx.cursorX != 2 || ctx.cursorY != 0 {
		t.Errorf("cursor = (%d,%d), want clamped to (2,0)", ctx.cursorX, ctx.cursorY)
	}
}

func TestSetLineTruncatesToWidth(t *testing.T) {
	ctx := NewRenderContext(4, 1)
	ctx.SetLine(0, []rune("abcdef"))
	if got := string(ctx.lines[0]); got != "abcd" {
		t.Errorf("line = %q, want %q", got, "abcd")
	}
	// Out-of-range rows must be ignored, not panic.
	ctx.SetLine(5, []rune("x"))
	ctx.SetLine(-1, []rune("x"))
}
