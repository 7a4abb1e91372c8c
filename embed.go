package main

import "embed"

// QueriesFS holds the tree-sitter highlight queries shipped with the editor.
//
//go:embed queries
var QueriesFS embed.FS
