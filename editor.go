package main

// Core editor state: buffer, cursor, viewport, command line, mode, and the
// edit operations plugins call into. The editor is lent to one plugin at a
// time by the dispatcher; nothing here is safe for concurrent use and nothing
// needs to be.

import (
	"fmt"
	"os"
	"time"
)

// Mode represents the current operational state of the editor.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand // Colon command line mode
)

// Cursor is a position in the buffer, in rune coordinates (0-based).
type Cursor struct {
	X int // Column index.
	Y int // Row index.
}

// Viewport is the scroll offset of the visible window into the buffer.
type Viewport struct {
	ScrollX int // Leftmost visible column.
	ScrollY int // Topmost visible row.
}

// CommandLine holds the staging state for colon command input.
type CommandLine struct {
	active bool
	input  []rune
}

// Editor is the main state struct shared with all plugins.
type Editor struct {
	buffer       *Buffer
	cursor       Cursor
	viewport     Viewport
	mode         Mode
	commandLine  CommandLine
	status       string    // One-line status message shown at the bottom.
	filename     string    // Path of the open file, empty for [No Name].
	fileType     *FileType // Language settings derived from filename.
	shouldQuit   bool
	dirty        bool   // True when the buffer has unsaved changes.
	revision     uint64 // Bumped on every content mutation; wraps silently.
	screenWidth  int
	screenHeight int
	commandQueue []string // FIFO of submitted colon commands, drained per tick.

	logMessages    []string // Ring of recent internal log lines.
	maxLogMessages int
}

// NewEditor creates an editor with an empty buffer. The filename, if any, is
// recorded but not loaded here; loading happens in FileCommandPlugin.Init so
// load failures surface through the status line.
func NewEditor(screenWidth, screenHeight int, filename string) *Editor {
	e := &Editor{
		buffer:         NewBuffer(),
		mode:           ModeNormal,
		filename:       filename,
		fileType:       getFileType(filename),
		screenWidth:    screenWidth,
		screenHeight:   screenHeight,
		commandQueue:   []string{},
		maxLogMessages: 50,
	}
	e.addLog("Editor", "Editor initialized")
	return e
}

// addLog records an internal debug message, optionally appending it to the
// log file configured with -log.
func (e *Editor) addLog(group, msg string) {
	t := time.Now()
	logMsg := fmt.Sprintf("[%02d:%02d:%02d] [%s] %s", t.Hour(), t.Minute(), t.Second(), group, msg)
	e.logMessages = append(e.logMessages, logMsg)
	if len(e.logMessages) > e.maxLogMessages {
		e.logMessages = e.logMessages[len(e.logMessages)-e.maxLogMessages:]
	}

	if Config.UseLogFile {
		f, err := os.OpenFile(Config.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

// setStatus replaces the one-line status message.
func (e *Editor) setStatus(format string, args ...interface{}) {
	e.status = fmt.Sprintf(format, args...)
}

// pushCommand queues a colon command for dispatch at the end of the current
// tick.
func (e *Editor) pushCommand(cmd string) {
	e.commandQueue = append(e.commandQueue, cmd)
}

// takeCommands returns the queued commands in FIFO order and clears the
// queue.
func (e *Editor) takeCommands() []string {
	cmds := e.commandQueue
	e.commandQueue = []string{}
	return cmds
}

// setScreenSize updates the terminal geometry after a resize event.
func (e *Editor) setScreenSize(width, height int) {
	e.screenWidth = width
	e.screenHeight = height
	e.ensureCursorVisible()
}

// contentHeight is the number of text rows available above the status line
// (and the command line, when it is open).
func (e *Editor) contentHeight() int {
	gutter := 1
	if e.commandLine.active {
		gutter = 2
	}
	h := e.screenHeight - gutter
	if h < 0 {
		h = 0
	}
	return h
}

// statusRow is the screen row of the status line.
func (e *Editor) statusRow() int {
	if e.commandLine.active {
		return e.screenHeight - 2
	}
	return e.screenHeight - 1
}

// commandRow is the screen row of the colon command line.
func (e *Editor) commandRow() int {
	return e.screenHeight - 1
}

// LoadFile reads a file from disk into the buffer, verbatim. Cursor,
// viewport, dirty flag, and revision are reset.
func (e *Editor) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.buffer = NewBufferFromString(string(content))
	e.cursor = Cursor{}
	e.viewport = Viewport{}
	e.dirty = false
	e.revision = 0
	e.filename = path
	e.fileType = getFileType(path)
	e.addLog("File", fmt.Sprintf("Loaded %s (%d lines)", path, e.buffer.LineCount()))
	return nil
}

// SaveFile writes the buffer to path, joining lines with newlines exactly as
// they were split on load. The dirty flag clears only on success; the caller
// owns updating the filename.
func (e *Editor) SaveFile(path string) error {
	if err := os.WriteFile(path, e.buffer.Bytes(), 0644); err != nil {
		return err
	}
	e.dirty = false
	e.addLog("File", fmt.Sprintf("Wrote %s (%d lines)", path, e.buffer.LineCount()))
	return nil
}

// currentLineLen is the rune length of the line under the cursor.
func (e *Editor) currentLineLen() int {
	return e.buffer.LineLen(e.cursor.Y)
}

// clampCursor forces the cursor back inside the buffer after a structural
// change.
func (e *Editor) clampCursor() {
	if e.cursor.Y >= e.buffer.LineCount() {
		e.cursor.Y = e.buffer.LineCount() - 1
		e.cursor.X = 0
	}
	if e.cursor.Y < 0 {
		e.cursor.Y = 0
	}
	if lineLen := e.currentLineLen(); e.cursor.X > lineLen {
		e.cursor.X = lineLen
	}
}

// ensureCursorVisible scrolls the viewport so the cursor is inside the
// visible window. Scrolling jumps, it does not animate. With a zero-height
// or zero-width window the offset collapses onto the cursor.
func (e *Editor) ensureCursorVisible() {
	height := e.contentHeight()
	if height == 0 {
		e.viewport.ScrollY = e.cursor.Y
	} else if e.cursor.Y < e.viewport.ScrollY {
		e.viewport.ScrollY = e.cursor.Y
	} else if e.cursor.Y >= e.viewport.ScrollY+height {
		e.viewport.ScrollY = e.cursor.Y - (height - 1)
	}

	width := e.screenWidth
	if width == 0 {
		e.viewport.ScrollX = e.cursor.X
	} else if e.cursor.X < e.viewport.ScrollX {
		e.viewport.ScrollX = e.cursor.X
	} else if e.cursor.X >= e.viewport.ScrollX+width {
		e.viewport.ScrollX = e.cursor.X - (width - 1)
	}
}

func (e *Editor) moveLeft() {
	if e.cursor.X > 0 {
		e.cursor.X--
	}
	e.ensureCursorVisible()
}

func (e *Editor) moveRight() {
	if e.cursor.X < e.currentLineLen() {
		e.cursor.X++
	}
	e.ensureCursorVisible()
}

func (e *Editor) moveUp() {
	if e.cursor.Y > 0 {
		e.cursor.Y--
		e.clampCursor()
	}
	e.ensureCursorVisible()
}

func (e *Editor) moveDown() {
	if e.cursor.Y+1 < e.buffer.LineCount() {
		e.cursor.Y++
		e.clampCursor()
	}
	e.ensureCursorVisible()
}

func (e *Editor) moveLineStart() {
	e.cursor.X = 0
	e.ensureCursorVisible()
}

func (e *Editor) moveLineEnd() {
	e.cursor.X = e.currentLineLen()
	e.ensureCursorVisible()
}

// jumpToTop moves the cursor to the first line.
func (e *Editor) jumpToTop() {
	e.cursor.Y = 0
	e.cursor.X = 0
	e.ensureCursorVisible()
}

// jumpToBottom moves the cursor to the last line.
func (e *Editor) jumpToBottom() {
	e.cursor.Y = e.buffer.LineCount() - 1
	e.cursor.X = 0
	e.ensureCursorVisible()
}

// goToLine moves the cursor to a 1-based line number, clamped to the buffer.
func (e *Editor) goToLine(lineNum int) {
	target := lineNum - 1
	if target < 0 {
		target = 0
	}
	if target >= e.buffer.LineCount() {
		target = e.buffer.LineCount() - 1
	}
	e.cursor.Y = target
	e.cursor.X = 0
	e.ensureCursorVisible()
}

// bumpRevision advances the cache-invalidation counter. uint64 increment
// wraps silently at the top of the range.
func (e *Editor) bumpRevision() {
	e.revision++
}

// markModified flags unsaved changes and bumps the revision.
func (e *Editor) markModified() {
	e.dirty = true
	e.bumpRevision()
}

// insertChar inserts a rune at the cursor and advances the cursor by one
// column. If the cursor row is somehow past the end of the buffer a fresh
// line is appended first.
func (e *Editor) insertChar(r rune) {
	if e.cursor.Y >= e.buffer.LineCount() {
		e.buffer.lines = append(e.buffer.lines, []rune{})
	}
	line := e.buffer.lines[e.cursor.Y]
	col := e.cursor.X
	if col > len(line) {
		col = len(line)
	}
	line = append(line[:col], append([]rune{r}, line[col:]...)...)
	e.buffer.lines[e.cursor.Y] = line
	e.cursor.X++
	e.markModified()
	e.ensureCursorVisible()
}

// insertNewline splits the current line at the cursor; the cursor lands at
// the start of the new line.
func (e *Editor) insertNewline() {
	if e.cursor.Y >= e.buffer.LineCount() {
		e.buffer.lines = append(e.buffer.lines, []rune{})
	}
	line := e.buffer.lines[e.cursor.Y]
	col := e.cursor.X
	if col > len(line) {
		col = len(line)
	}
	rest := append([]rune{}, line[col:]...)
	e.buffer.lines[e.cursor.Y] = line[:col]
	e.buffer.lines = append(e.buffer.lines[:e.cursor.Y+1],
		append([][]rune{rest}, e.buffer.lines[e.cursor.Y+1:]...)...)
	e.cursor.Y++
	e.cursor.X = 0
	e.markModified()
	e.ensureCursorVisible()
}

// backspace deletes the rune before the cursor, or merges the current line
// into the previous one when the cursor is at column zero. No-op at the very
// start of the buffer.
func (e *Editor) backspace() {
	if e.cursor.Y >= e.buffer.LineCount() {
		return
	}
	if e.cursor.X > 0 {
		line := e.buffer.lines[e.cursor.Y]
		col := e.cursor.X - 1
		e.buffer.lines[e.cursor.Y] = append(line[:col], line[col+1:]...)
		e.cursor.X--
		e.markModified()
	} else if e.cursor.Y > 0 {
		current := e.buffer.lines[e.cursor.Y]
		e.buffer.lines = append(e.buffer.lines[:e.cursor.Y], e.buffer.lines[e.cursor.Y+1:]...)
		e.cursor.Y--
		prev := e.buffer.lines[e.cursor.Y]
		e.cursor.X = len(prev)
		e.buffer.lines[e.cursor.Y] = append(prev, current...)
		e.markModified()
	}
	e.ensureCursorVisible()
}

// deleteChar deletes the rune under the cursor, or merges the next line onto
// the current one when the cursor sits at end of line. The cursor does not
// move. No-op at the very end of the buffer.
func (e *Editor) deleteChar() {
	if e.cursor.Y >= e.buffer.LineCount() {
		return
	}
	line := e.buffer.lines[e.cursor.Y]
	if e.cursor.X < len(line) {
		e.buffer.lines[e.cursor.Y] = append(line[:e.cursor.X], line[e.cursor.X+1:]...)
		e.markModified()
	} else if e.cursor.Y+1 < e.buffer.LineCount() {
		next := e.buffer.lines[e.cursor.Y+1]
		e.buffer.lines[e.cursor.Y] = append(line, next...)
		e.buffer.lines = append(e.buffer.lines[:e.cursor.Y+1], e.buffer.lines[e.cursor.Y+2:]...)
		e.markModified()
	}
	e.ensureCursorVisible()
}

// insertTab inserts spaces up to the file type's tab width.
func (e *Editor) insertTab() {
	width := Config.DefaultTabWidth
	if e.fileType != nil {
		width = e.fileType.TabWidth
	}
	if width <= 0 {
		width = 1
	}
	for i := 0; i < width; i++ {
		e.insertChar(' ')
	}
}
