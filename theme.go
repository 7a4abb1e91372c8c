package main

// Color palette and theme used by the editor. Maps semantic color names to
// terminal attributes (foreground and background) in 256-color mode.

import "github.com/nsf/termbox-go"

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault ColorName = iota // Default terminal colors.

	ColorStatusBar       // Main status bar at the bottom.
	ColorNormalMode      // Status bar indicator for Normal mode.
	ColorInsertMode      // Status bar indicator for Insert mode.
	ColorCommandMode     // Status bar indicator for Command mode.
	ColorEmptyLineMarker // The '~' marker for lines beyond EOF.

	// Colors for tree-sitter syntax highlighting.
	ColorTSFunction
	ColorTSVariable
	ColorTSType
	ColorTSString
	ColorTSKeyword
	ColorTSComment
	ColorTSNumber
	ColorTSBoolean
	ColorTSNull
	ColorTSProperty
	ColorTSConstant
)

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},

	ColorStatusBar:       {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorNormalMode:      {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorInsertMode:      {Background: termbox.Attribute(58), Foreground: termbox.Attribute(255)},
	ColorCommandMode:     {Background: termbox.Attribute(30), Foreground: termbox.Attribute(16)},
	ColorEmptyLineMarker: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},

	ColorTSFunction: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(3)},
	ColorTSVariable: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(255)},
	ColorTSType:     {Background: termbox.ColorDefault, Foreground: termbox.Attribute(112)},
	ColorTSString:   {Background: termbox.ColorDefault, Foreground: termbox.Attribute(37)},
	ColorTSKeyword:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(178)},
	ColorTSComment:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorTSNumber:   {Background: termbox.ColorDefault, Foreground: termbox.Attribute(135)},
	ColorTSBoolean:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(2)},
	ColorTSNull:     {Background: termbox.ColorDefault, Foreground: termbox.Attribute(135)},
	ColorTSProperty: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(230)},
	ColorTSConstant: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},
}

// GetThemeColor returns the foreground and background attributes for a given
// semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	return termbox.ColorDefault, termbox.ColorDefault
}

// themeStyle returns the same lookup as a Style value for span rendering.
func themeStyle(name ColorName) Style {
	fg, bg := GetThemeColor(name)
	return Style{Fg: fg, Bg: bg}
}
