package wmprotocols

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestIsDeleteWindow(t *testing.T) {
	const protocols, del = xproto.Atom(10), xproto.Atom(20)
	ev := &xproto.ClientMessageEvent{
		Format: 32,
		Type:   protocols,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(del), 0, 0, 0, 0}),
	}
	assert.True(t, IsDeleteWindow(ev, protocols, del))

	ev.Format = 8
	assert.False(t, IsDeleteWindow(ev, protocols, del))

	ev.Format = 32
	ev.Type = 11
	assert.False(t, IsDeleteWindow(ev, protocols, del))
}
