package main

// Colon command handler. It loads the startup file during init and executes
// the strings committed from command mode: write, quit, edit, and line
// jumps. The vocabulary is closed at this layer: unknown commands are
// consumed with no effect rather than passed down the chain.

import (
	"os"
	"strconv"
	"strings"
)

// FileCommandPlugin ties the buffer to a file on disk.
type FileCommandPlugin struct {
	BasePlugin
}

// Init loads the file named on the command line, if any. A missing file is
// not an error: the buffer starts empty and the file is created on the first
// write.
func (p *FileCommandPlugin) Init(e *Editor) {
	if e.filename == "" {
		return
	}
	path := e.filename
	if err := e.LoadFile(path); err != nil {
		if os.IsNotExist(err) {
			e.setStatus("New file %s", path)
		} else {
			e.setStatus("Open failed: %v", err)
		}
		return
	}
	e.setStatus("Opened %s", path)
}

func (p *FileCommandPlugin) HandleCommand(e *Editor, cmd string) EventResult {
	trimmed := strings.TrimSpace(cmd)
	if trimmed == "" {
		return Consumed
	}

	fields := strings.Fields(trimmed)
	verb := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch verb {
	case "w":
		p.write(e, arg)
	case "wq", "x":
		if p.write(e, arg) {
			e.shouldQuit = true
		}
	case "q":
		p.quit(e, false)
	case "q!":
		p.quit(e, true)
	case "e", "edit":
		p.edit(e, arg, false)
	case "e!", "edit!":
		p.edit(e, arg, true)
	default:
		// A bare line number jumps to that line. Anything else is swallowed
		// here; colon commands never fall through to other plugins.
		if lineNum, err := strconv.Atoi(verb); err == nil {
			e.goToLine(lineNum)
		}
	}
	return Consumed
}

// write saves the buffer to path, or to the current filename when path is
// empty. On success the filename and file type follow the path and the dirty
// flag clears; on failure both are left untouched and the error lands in the
// status line. Returns true when the save succeeded.
func (p *FileCommandPlugin) write(e *Editor, path string) bool {
	if path == "" {
		path = e.filename
	}
	if path == "" {
		e.setStatus("No file name")
		return false
	}
	if err := e.SaveFile(path); err != nil {
		e.setStatus("Write failed: %v", err)
		return false
	}
	e.filename = path
	e.fileType = getFileType(path)
	e.setStatus("Wrote %s", path)
	return true
}

// quit requests a cooperative shutdown. Unsaved changes block an unforced
// quit.
func (p *FileCommandPlugin) quit(e *Editor, force bool) {
	if e.dirty && !force {
		e.setStatus("No write since last change (add ! to override)")
		return
	}
	e.shouldQuit = true
}

// edit replaces the buffer with the contents of another file. Unsaved
// changes block an unforced edit. A missing file starts a fresh buffer under
// the new name, mirroring startup.
func (p *FileCommandPlugin) edit(e *Editor, path string, force bool) {
	if path == "" {
		e.setStatus("No file name")
		return
	}
	if e.dirty && !force {
		e.setStatus("No write since last change (add ! to override)")
		return
	}
	if err := e.LoadFile(path); err != nil {
		if os.IsNotExist(err) {
			e.buffer = NewBuffer()
			e.cursor = Cursor{}
			e.viewport = Viewport{}
			e.dirty = false
			e.revision = 0
			e.filename = path
			e.fileType = getFileType(path)
			e.setStatus("New file %s", path)
		} else {
			e.setStatus("Open failed: %v", err)
		}
		return
	}
	e.setStatus("Opened %s", path)
}
