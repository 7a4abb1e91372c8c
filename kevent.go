package main

// Input-handling plugins. Each plugin claims the key events relevant to one
// mode and ignores everything else, so the dispatch order in main.go decides
// who sees a key first. Mode transitions are owned exclusively by ModePlugin.

import "github.com/nsf/termbox-go"

// ModePlugin owns the three mode transitions: Escape back to Normal, 'i'
// into Insert, and ':' into Command. Entering or leaving command mode clears
// any staged command input.
type ModePlugin struct {
	BasePlugin
}

func (p *ModePlugin) HandleEvent(e *Editor, ev termbox.Event) EventResult {
	if ev.Type != termbox.EventKey {
		return Ignored
	}

	if ev.Key == termbox.KeyEsc {
		e.mode = ModeNormal
		e.commandLine.active = false
		e.commandLine.input = nil
		return Consumed
	}

	if e.mode != ModeNormal {
		return Ignored
	}

	switch ev.Ch {
	case 'i':
		e.mode = ModeInsert
		return Consumed
	case ':':
		e.mode = ModeCommand
		e.commandLine.active = true
		e.commandLine.input = nil
		return Consumed
	}
	return Ignored
}

// CommandLinePlugin edits the colon command line while in Command mode.
// Enter commits the input to the editor's command queue and drops back to
// Normal mode; the queued string is dispatched at the end of the tick.
type CommandLinePlugin struct {
	BasePlugin
}

func (p *CommandLinePlugin) HandleEvent(e *Editor, ev termbox.Event) EventResult {
	if e.mode != ModeCommand || ev.Type != termbox.EventKey {
		return Ignored
	}

	switch ev.Key {
	case termbox.KeyEnter:
		cmd := string(e.commandLine.input)
		e.commandLine.input = nil
		e.commandLine.active = false
		e.mode = ModeNormal
		if cmd != "" {
			e.pushCommand(cmd)
		}
		return Consumed
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		if len(e.commandLine.input) > 0 {
			e.commandLine.input = e.commandLine.input[:len(e.commandLine.input)-1]
		}
		return Consumed
	case termbox.KeySpace:
		e.commandLine.input = append(e.commandLine.input, ' ')
		return Consumed
	}

	if ev.Ch != 0 {
		e.commandLine.input = append(e.commandLine.input, ev.Ch)
		return Consumed
	}
	return Ignored
}

// MotionPlugin handles cursor movement and character deletion in Normal
// mode: hjkl and the arrow keys, 0 and $, x, plus gg and G for first/last
// line.
type MotionPlugin struct {
	BasePlugin
	pendingKey rune // First key of a multi-key motion, e.g. the first 'g' of gg.
}

func (p *MotionPlugin) HandleEvent(e *Editor, ev termbox.Event) EventResult {
	if e.mode != ModeNormal || ev.Type != termbox.EventKey {
		return Ignored
	}

	switch ev.Key {
	case termbox.KeyArrowLeft:
		e.moveLeft()
		return Consumed
	case termbox.KeyArrowRight:
		e.moveRight()
		return Consumed
	case termbox.KeyArrowUp:
		e.moveUp()
		return Consumed
	case termbox.KeyArrowDown:
		e.moveDown()
		return Consumed
	}

	if ev.Ch == 'g' {
		if p.pendingKey == 'g' {
			p.pendingKey = 0
			e.jumpToTop()
		} else {
			p.pendingKey = 'g'
		}
		return Consumed
	}
	p.pendingKey = 0

	switch ev.Ch {
	case 'h':
		e.moveLeft()
	case 'l':
		e.moveRight()
	case 'k':
		e.moveUp()
	case 'j':
		e.moveDown()
	case '0':
		e.moveLineStart()
	case '$':
		e.moveLineEnd()
	case 'G':
		e.jumpToBottom()
	case 'x':
		e.deleteChar()
	default:
		return Ignored
	}
	return Consumed
}

// InsertPlugin handles text entry in Insert mode.
type InsertPlugin struct {
	BasePlugin
}

func (p *InsertPlugin) HandleEvent(e *Editor, ev termbox.Event) EventResult {
	if e.mode != ModeInsert || ev.Type != termbox.EventKey {
		return Ignored
	}

	switch ev.Key {
	case termbox.KeyEnter:
		e.insertNewline()
		return Consumed
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		e.backspace()
		return Consumed
	case termbox.KeyDelete:
		e.deleteChar()
		return Consumed
	case termbox.KeySpace:
		e.insertChar(' ')
		return Consumed
	case termbox.KeyTab:
		e.insertTab()
		return Consumed
	case termbox.KeyArrowLeft:
		e.moveLeft()
		return Consumed
	case termbox.KeyArrowRight:
		e.moveRight()
		return Consumed
	case termbox.KeyArrowUp:
		e.moveUp()
		return Consumed
	case termbox.KeyArrowDown:
		e.moveDown()
		return Consumed
	}

	if ev.Ch != 0 {
		e.insertChar(ev.Ch)
		return Consumed
	}
	return Ignored
}
