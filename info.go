package main

// Prints the file type table: which extensions map to which language and
// whether a highlight grammar ships for it.

import "fmt"

// PrintInfo lists the supported file types and their settings.
func PrintInfo() {
	fmt.Println("Supported file types:")
	for _, ft := range fileTypes {
		grammar := "-"
		if s := NewSyntaxHighlighter(ft.Name, nil); s != nil {
			grammar = s.language
		}
		indent := "spaces"
		if ft.UseTabs {
			indent = "tabs"
		}
		fmt.Printf("  %-12s grammar=%-10s indent=%-6s width=%d  %v\n",
			ft.Name, grammar, indent, ft.TabWidth, ft.Extensions)
	}
}
