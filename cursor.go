package rtree

// Cursor is a standard mouse cursor shape.
type Cursor uint8

// Standard cursors, named after their CSS cursor values.
const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorWait
	CursorProgress
	CursorHelp
	CursorText
	CursorVerticalText
	CursorNResize
	CursorSResize
	CursorEResize
	CursorWResize
	CursorNEResize
	CursorNWResize
	CursorSEResize
	CursorSWResize
	CursorEWResize
	CursorNSResize
	CursorNESWResize
	CursorNWSEResize
	CursorColResize
	CursorRowResize
	CursorMove
	CursorAllScroll
	CursorGrab
	CursorCopy
	CursorAlias
	CursorNoDrop
	CursorNotAllowed
	CursorCrosshair
	CursorCell
	CursorContextMenu
	CursorZoomIn
	CursorZoomOut
)

var cursorNames = [...]string{
	"default", "pointer", "wait", "progress", "help", "text", "vertical-text",
	"n-resize", "s-resize", "e-resize", "w-resize",
	"ne-resize", "nw-resize", "se-resize", "sw-resize",
	"ew-resize", "ns-resize", "nesw-resize", "nwse-resize",
	"col-resize", "row-resize", "move", "all-scroll", "grab", "copy", "alias",
	"no-drop", "not-allowed", "crosshair", "cell", "context-menu", "zoom-in", "zoom-out",
}

// String returns the CSS cursor value.
func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "default"
}

// ParseCursor parses a CSS cursor value.
func ParseCursor(s string) (Cursor, bool) {
	for i, name := range cursorNames {
		if name == s {
			return Cursor(i), true
		}
	}
	return CursorDefault, false
}
