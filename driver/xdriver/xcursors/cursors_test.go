package xcursors

import (
	"testing"

	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/stretchr/testify/assert"
)

func TestFromEventCursor(t *testing.T) {
	assert.Equal(t, XCNone, FromEventCursor(event.NoneCursor))
	assert.Equal(t, XCNone, FromEventCursor(event.DefaultCursor))
	assert.Equal(t, Cursor(xcursor.Fleur), FromEventCursor(event.MoveCursor))
	assert.Equal(t, Cursor(xcursor.RightSide), FromEventCursor(event.EResizeCursor))
	assert.Equal(t, Cursor(xcursor.TopSide), FromEventCursor(event.NResizeCursor))
}
