package main

// Syntax highlighting using tree-sitter. It parses the buffer content,
// executes the highlight query for the detected language, and hands back
// per-line style runs in rune coordinates. Parsing is always a full pass
// over the document; the caller decides when a reparse is due.

import (
	"context"
	"fmt"

	sitter "github.com/mitjafelicijan/go-tree-sitter"
	"github.com/mitjafelicijan/go-tree-sitter/bash"
	"github.com/mitjafelicijan/go-tree-sitter/c"
	"github.com/mitjafelicijan/go-tree-sitter/golang"
	"github.com/mitjafelicijan/go-tree-sitter/javascript"
	"github.com/mitjafelicijan/go-tree-sitter/python"
)

// captureSpan is one query capture clipped to a single row, in byte columns.
// endByte of -1 means the capture runs to the end of the line.
type captureSpan struct {
	startByte int
	endByte   int
	style     Style
}

// SyntaxHighlighter manages the tree-sitter parser, tree, and per-row
// captures for one document.
type SyntaxHighlighter struct {
	parser   *sitter.Parser
	tree     *sitter.Tree
	lang     *sitter.Language
	query    *sitter.Query
	language string
	captures map[int][]captureSpan // Row -> clipped capture spans in byte columns.
	log      func(string, string)  // Debug logging function.
}

// NewSyntaxHighlighter initializes a parser for the given file type. Returns
// nil when no grammar ships for it, in which case lines render unstyled.
func NewSyntaxHighlighter(fileType string, log func(string, string)) *SyntaxHighlighter {
	parser := sitter.NewParser()
	var lang *sitter.Language
	var langName string

	switch fileType {
	case "Go":
		lang = golang.GetLanguage()
		langName = "go"
	case "C":
		lang = c.GetLanguage()
		langName = "c"
	case "Python":
		lang = python.GetLanguage()
		langName = "python"
	case "JavaScript":
		lang = javascript.GetLanguage()
		langName = "javascript"
	case "Bash":
		lang = bash.GetLanguage()
		langName = "bash"
	default:
		return nil
	}

	parser.SetLanguage(lang)
	s := &SyntaxHighlighter{
		parser:   parser,
		lang:     lang,
		language: langName,
		captures: make(map[int][]captureSpan),
		log:      log,
	}

	s.loadQuery(fmt.Sprintf("queries/%s.scm", langName))
	return s
}

// loadQuery reads and compiles a tree-sitter query from the embedded
// filesystem.
func (s *SyntaxHighlighter) loadQuery(path string) {
	content, err := QueriesFS.ReadFile(path)
	if err != nil {
		if s.log != nil {
			s.log("TS", fmt.Sprintf("loadQuery failed to read %s: %v", path, err))
		}
		return
	}

	q, err := sitter.NewQuery(content, s.lang)
	if err == nil {
		s.query = q
	} else if s.log != nil {
		s.log("TS", fmt.Sprintf("loadQuery failed to compile query for %s: %v", path, err))
	}
}

// Parse runs a full parse of the content and rebuilds the capture table.
func (s *SyntaxHighlighter) Parse(content []byte) {
	if s.parser == nil {
		return
	}
	tree, _ := s.parser.ParseCtx(context.Background(), nil, content)
	s.tree = tree
	s.updateCaptures()
}

// updateCaptures executes the highlight query against the current tree and
// clips every capture to per-row byte ranges.
func (s *SyntaxHighlighter) updateCaptures() {
	// Always start clean to prevent ghosting from the previous parse.
	s.captures = make(map[int][]captureSpan)

	if s.tree == nil || s.query == nil {
		return
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(s.query, s.tree.RootNode())

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}

		for _, cap := range m.Captures {
			captureName := s.query.CaptureNameForId(cap.Index)
			style, ok := captureStyle(captureName)
			if !ok {
				continue
			}

			startRow := int(cap.Node.StartPoint().Row)
			startCol := int(cap.Node.StartPoint().Column)
			endRow := int(cap.Node.EndPoint().Row)
			endCol := int(cap.Node.EndPoint().Column)

			for r := startRow; r <= endRow; r++ {
				span := captureSpan{startByte: 0, endByte: -1, style: style}
				if r == startRow {
					span.startByte = startCol
				}
				if r == endRow {
					span.endByte = endCol
				}
				if span.endByte != -1 && span.endByte <= span.startByte {
					continue
				}
				s.captures[r] = append(s.captures[r], span)
			}
		}
	}
}

// LineSpans converts the captures for one line into ordered, non-overlapping
// styled spans in rune coordinates, with adjacent same-style runs merged.
// Only styled runs are emitted; unstyled text keeps the default color.
func (s *SyntaxHighlighter) LineSpans(lineIdx int, line []rune) []StyledSpan {
	lineCaptures, ok := s.captures[lineIdx]
	if !ok || len(line) == 0 {
		return nil
	}

	// Tree-sitter points are byte columns; paint per rune and compress.
	defaultStyle := themeStyle(ColorDefault)
	styles := make([]Style, len(line))
	for i := range styles {
		styles[i] = defaultStyle
	}

	offsets := lineByteOffsets(line)
	for _, cap := range lineCaptures {
		end := cap.endByte
		if end == -1 {
			end = offsets[len(line)]
		}
		for i := 0; i < len(line); i++ {
			if offsets[i] >= cap.startByte && offsets[i] < end {
				styles[i] = cap.style
			}
		}
	}

	return compressStyles(styles, defaultStyle)
}

// compressStyles turns a per-rune style array into merged spans, skipping
// runs of the default style.
func compressStyles(styles []Style, defaultStyle Style) []StyledSpan {
	var spans []StyledSpan
	for i := 0; i < len(styles); {
		if styles[i] == defaultStyle {
			i++
			continue
		}
		j := i + 1
		for j < len(styles) && styles[j] == styles[i] {
			j++
		}
		spans = append(spans, StyledSpan{Start: i, Len: j - i, Style: styles[i]})
		i = j
	}
	return spans
}

// captureStyle maps a tree-sitter capture name to a theme style. The second
// return is false for capture names the theme does not color.
func captureStyle(captureName string) (Style, bool) {
	var cn ColorName
	switch captureName {
	case "function":
		cn = ColorTSFunction
	case "variable":
		cn = ColorTSVariable
	case "type":
		cn = ColorTSType
	case "string":
		cn = ColorTSString
	case "keyword":
		cn = ColorTSKeyword
	case "comment":
		cn = ColorTSComment
	case "number":
		cn = ColorTSNumber
	case "boolean":
		cn = ColorTSBoolean
	case "null":
		cn = ColorTSNull
	case "property":
		cn = ColorTSProperty
	case "constant":
		cn = ColorTSConstant
	default:
		return Style{}, false
	}
	return themeStyle(cn), true
}
