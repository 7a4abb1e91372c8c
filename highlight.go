package main

// The syntax highlight plugin: a revision-keyed cache of per-line styled
// spans, recomputed in full whenever the buffer content or file identity
// changes, and windowed to the viewport on every frame.

// SyntaxHighlightPlugin owns the highlighter and its span cache. The cache
// is private to this plugin; other plugins only see the spans it writes into
// the frame context.
type SyntaxHighlightPlugin struct {
	BasePlugin
	highlighter  *SyntaxHighlighter
	cachedSpans  [][]StyledSpan
	lastRevision uint64
	lastFilename string
	recomputes   int // Counts full recomputations, for logging and tests.
}

// NewSyntaxHighlightPlugin returns a plugin with an empty cache. The first
// render always recomputes because the cache length cannot match a buffer,
// which holds at least one line.
func NewSyntaxHighlightPlugin() *SyntaxHighlightPlugin {
	return &SyntaxHighlightPlugin{}
}

// needsRecompute reports whether the cache stamp no longer matches the
// editor: content revision moved, the file identity changed, or the line
// count drifted from the cached span table.
func (p *SyntaxHighlightPlugin) needsRecompute(e *Editor) bool {
	return e.revision != p.lastRevision ||
		e.filename != p.lastFilename ||
		e.buffer.LineCount() != len(p.cachedSpans)
}

// recompute re-parses the whole document and rebuilds the span table for
// every line, then stamps the cache with the revision and filename it was
// computed against. A file identity change also reselects the grammar.
func (p *SyntaxHighlightPlugin) recompute(e *Editor) {
	if p.cachedSpans == nil || e.filename != p.lastFilename {
		ft := getFileType(e.filename)
		p.highlighter = NewSyntaxHighlighter(ft.Name, e.addLog)
	}

	lineCount := e.buffer.LineCount()
	spans := make([][]StyledSpan, lineCount)
	if p.highlighter != nil {
		p.highlighter.Parse(e.buffer.Bytes())
		for i := 0; i < lineCount; i++ {
			spans[i] = p.highlighter.LineSpans(i, e.buffer.Line(i))
		}
	}

	p.cachedSpans = spans
	p.lastRevision = e.revision
	p.lastFilename = e.filename
	p.recomputes++
}

func (p *SyntaxHighlightPlugin) Render(e *Editor, ctx *RenderContext) {
	if p.needsRecompute(e) {
		p.recompute(e)
	}

	height := e.contentHeight()
	for row := 0; row < height; row++ {
		bufferY := e.viewport.ScrollY + row
		if bufferY >= len(p.cachedSpans) {
			continue
		}
		spans := windowSpans(p.cachedSpans[bufferY], e.viewport.ScrollX, ctx.width)
		if len(spans) > 0 {
			ctx.SetSpans(row, spans)
		}
	}
}

// windowSpans clips cached spans to the visible column window and rebases
// the survivors to viewport-relative offsets. Spans fully outside the window
// are dropped; partially visible spans are truncated at the boundary.
func windowSpans(spans []StyledSpan, colOffset, width int) []StyledSpan {
	if width <= 0 {
		return nil
	}
	windowEnd := colOffset + width

	var visible []StyledSpan
	for _, span := range spans {
		spanEnd := span.Start + span.Len
		if spanEnd <= colOffset || span.Start >= windowEnd {
			continue
		}
		start := span.Start
		if start < colOffset {
			start = colOffset
		}
		end := spanEnd
		if end > windowEnd {
			end = windowEnd
		}
		visible = append(visible, StyledSpan{
			Start: start - colOffset,
			Len:   end - start,
			Style: span.Style,
		})
	}
	return visible
}
