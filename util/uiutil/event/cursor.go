package event

type Cursor int

const (
	NoneCursor Cursor = iota // none means not set
	DefaultCursor
	NSResizeCursor
	WEResizeCursor
	MoveCursor
	PointerCursor

	// one sided resize arrows
	NResizeCursor
	SResizeCursor
	EResizeCursor
	WResizeCursor
)

func (c Cursor) String() string {
	switch c {
	case NoneCursor:
		return "none"
	case DefaultCursor:
		return "default"
	case NSResizeCursor:
		return "ns-resize"
	case WEResizeCursor:
		return "we-resize"
	case MoveCursor:
		return "move"
	case PointerCursor:
		return "pointer"
	case NResizeCursor:
		return "n-resize"
	case SResizeCursor:
		return "s-resize"
	case EResizeCursor:
		return "e-resize"
	case WResizeCursor:
		return "w-resize"
	}
	return "unknown"
}
