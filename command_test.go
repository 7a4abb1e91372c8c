package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestQuitGuardedByDirtyFlag(t *testing.T) {
	e := testEditor("hello")
	e.dirty = true
	p := &FileCommandPlugin{}

	if res := p.HandleCommand(e, "q"); res != Consumed {
		t.Fatal("q not consumed")
	}
	if e.shouldQuit {
		t.Error("q quit despite unsaved changes")
	}
	if !strings.Contains(e.status, "No write since last change") {
		t.Errorf("status = %q, want unsaved-changes warning", e.status)
	}

	p.HandleCommand(e, "q!")
	if !e.shouldQuit {
		t.Error("q! did not quit with unsaved changes")
	}
}

func TestQuitCleanBuffer(t *testing.T) {
	e := testEditor("hello")
	p := &FileCommandPlugin{}
	p.HandleCommand(e, "q")
	if !e.shouldQuit {
		t.Error("q did not quit a clean buffer")
	}
}

func TestWriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	e := testEditor("hello", "world")
	e.dirty = true
	p := &FileCommandPlugin{}

	p.HandleCommand(e, "w "+path)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(content) != "hello\nworld" {
		t.Errorf("file content = %q", content)
	}
	if e.dirty {
		t.Error("dirty flag still set after write")
	}
	if e.filename != path {
		t.Errorf("filename = %q, want %q", e.filename, path)
	}
	if !strings.Contains(e.status, "Wrote") {
		t.Errorf("status = %q, want write confirmation", e.status)
	}
}

func TestWriteWithoutFilename(t *testing.T) {
	e := testEditor("hello")
	p := &FileCommandPlugin{}
	p.HandleCommand(e, "w")
	if e.status != "No file name" {
		t.Errorf("status = %q, want %q", e.status, "No file name")
	}
}

func TestWriteFailureKeepsState(t *testing.T) {
	e := testEditor("hello")
	e.dirty = true
	e.filename = "before.txt"
	p := &FileCommandPlugin{}

	bad := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	p.HandleCommand(e, "w "+bad)

	if !e.dirty {
		t.Error("dirty flag cleared on failed write")
	}
	if e.filename != "before.txt" {
		t.Errorf("filename changed on failed write: %q", e.filename)
	}
	if !strings.Contains(e.status, "Write failed") {
		t.Errorf("status = %q, want write failure", e.status)
	}
}

func TestWriteQuitOnlyQuitsOnSuccess(t *testing.T) {
	e := testEditor("hello")
	e.dirty = true
	p := &FileCommandPlugin{}

	bad := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	p.HandleCommand(e, "wq "+bad)
	if e.shouldQuit {
		t.Error("wq quit despite failed save")
	}

	good := filepath.Join(t.TempDir(), "out.txt")
	p.HandleCommand(e, "x "+good)
	if !e.shouldQuit {
		t.Error("x did not quit after successful save")
	}
}

func TestEmptyAndUnknownCommandsAreConsumed(t *testing.T) {
	e := testEditor("hello")
	p := &FileCommandPlugin{}

	for _, cmd := range []string{"", "   ", "frobnicate", "w!!nonsense"} {
		if res := p.HandleCommand(e, cmd); res != Consumed {
			t.Errorf("command %q not consumed", cmd)
		}
	}
	if e.shouldQuit || e.dirty {
		t.Error("no-effect command changed editor state")
	}
}

func TestLineNumberCommandJumps(t *testing.T) {
	e := testEditor("a", "b", "c", "d")
	p := &FileCommandPlugin{}
	p.HandleCommand(e, "3")
	if e.cursor.Y != 2 {
		t.Errorf("cursor row = %d, want 2", e.cursor.Y)
	}
}

func TestEditLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta"), 0644); err != nil {
		t.Fatal(err)
	}

	e := testEditor("old")
	p := &FileCommandPlugin{}
	p.HandleCommand(e, "e "+path)

	assertLines(t, e, "alpha", "beta")
	if e.filename != path {
		t.Errorf("filename = %q, want %q", e.filename, path)
	}
}

func TestEditGuardedByDirtyFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(path, []byte("alpha"), 0644); err != nil {
		t.Fatal(err)
	}

	e := testEditor("old")
	e.dirty = true
	p := &FileCommandPlugin{}

	p.HandleCommand(e, "e "+path)
	assertLines(t, e, "old")

	p.HandleCommand(e, "e! "+path)
	assertLines(t, e, "alpha")
}

func TestInitLoadsStartupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewEditor(80, 24, path)
	p := &FileCommandPlugin{}
	p.Init(e)

	assertLines(t, e, "one", "two", "")
	if !strings.Contains(e.status, "Opened") {
		t.Errorf("status = %q, want open confirmation", e.status)
	}
}

func TestInitMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	e := NewEditor(80, 24, path)
	p := &FileCommandPlugin{}
	p.Init(e)

	if e.buffer.LineCount() != 1 || e.buffer.LineLen(0) != 0 {
		t.Error("missing file did not start with an empty buffer")
	}
	if !strings.Contains(e.status, "New file") {
		t.Errorf("status = %q, want new-file notice", e.status)
	}
	if e.filename != path {
		t.Errorf("filename = %q, want %q", e.filename, path)
	}
}

func TestInitWithoutFilename(t *testing.T) {
	e := NewEditor(80, 24, "")
	p := &FileCommandPlugin{}
	p.Init(e)
	if e.status != "" {
		t.Errorf("status = %q, want empty", e.status)
	}
}
