package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Tags can be used with: `loadAtoms:"atomname"`.
// "st" should be a pointer to a struct with xproto.Atom fields.
// "onlyIfExists" asks the x server to assign a value only if the atom exists.
func LoadAtoms(conn *xgb.Conn, st any, onlyIfExists bool) error {
	// request all first, then wait for the replies
	typ := reflect.Indirect(reflect.ValueOf(st)).Type()
	var cookies []xproto.InternAtomCookie
	for i := 0; i < typ.NumField(); i++ {
		cookie := xproto.InternAtom(conn, onlyIfExists, uint16(len(atomName(typ.Field(i)))), atomName(typ.Field(i)))
		cookies = append(cookies, cookie)
	}
	val := reflect.Indirect(reflect.ValueOf(st))
	for i := 0; i < val.NumField(); i++ {
		reply, err := cookies[i].Reply()
		if err != nil {
			return err
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}

func atomName(sf reflect.StructField) string {
	if s := sf.Tag.Get("loadAtoms"); s != "" {
		return s
	}
	return sf.Name
}
