package main

// Supported file types, their extensions, and language-specific settings
// like indentation. The Name field selects the tree-sitter grammar in
// syntax.go; types without a shipped grammar render unstyled.

import "path/filepath"

// FileType represents the configuration for a specific language.
type FileType struct {
	Name       string   // Display name, also the grammar selector.
	Extensions []string // File extensions (e.g., .go) or filenames (e.g., Makefile).
	UseTabs    bool     // Whether to use tabs for indentation.
	TabWidth   int      // Number of spaces for a tab.
}

// fileTypes is a global list of all supported languages in the editor. The
// last entry is the plain-text fallback.
var fileTypes = []*FileType{
	{
		Name:       "Go",
		Extensions: []string{".go"},
		UseTabs:    true,
		TabWidth:   Config.DefaultTabWidth,
	},
	{
		Name:       "C",
		Extensions: []string{".c", ".h"},
		UseTabs:    true,
		TabWidth:   Config.DefaultTabWidth,
	},
	{
		Name:       "Python",
		Extensions: []string{".py"},
		UseTabs:    false,
		TabWidth:   Config.DefaultTabWidth,
	},
	{
		Name:       "JavaScript",
		Extensions: []string{".js", ".mjs"},
		UseTabs:    true,
		TabWidth:   Config.DefaultTabWidth,
	},
	{
		Name:       "Bash",
		Extensions: []string{".sh", ".bash"},
		UseTabs:    true,
		TabWidth:   Config.DefaultTabWidth,
	},
	{
		Name:       "Makefile",
		Extensions: []string{".make", "Makefile", "makefile"},
		UseTabs:    true,
		TabWidth:   Config.DefaultTabWidth,
	},
	{
		Name:       "Text",
		Extensions: []string{},
		UseTabs:    false,
		TabWidth:   Config.DefaultTabWidth,
	},
}

// getFileType detects the file type based on the filename or extension.
func getFileType(filename string) *FileType {
	ext := filepath.Ext(filename)
	base := filepath.Base(filename)
	for _, ft := range fileTypes {
		for _, e := range ft.Extensions {
			if e == ext || e == base {
				return ft
			}
		}
	}
	// Plain text when nothing matches.
	return fileTypes[len(fileTypes)-1]
}

// InitFileTypes resets language settings to the current global
// configuration.
func InitFileTypes() {
	for _, ft := range fileTypes {
		ft.TabWidth = Config.DefaultTabWidth
	}
}
