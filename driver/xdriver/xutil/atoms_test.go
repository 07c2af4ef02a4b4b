package xutil

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestAtomName(t *testing.T) {
	var st struct {
		WM_PROTOCOLS xproto.Atom
		NetWMName    xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	}
	typ := reflect.TypeOf(st)
	if s := atomName(typ.Field(0)); s != "WM_PROTOCOLS" {
		t.Fatal(s)
	}
	if s := atomName(typ.Field(1)); s != "_NET_WM_NAME" {
		t.Fatal(s)
	}
}
