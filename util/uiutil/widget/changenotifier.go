package widget

// Sent to listeners on every net change of a range model.
type RangeChangeEvent struct {
	Old, New RangeState
}

func (ev *RangeChangeEvent) BoundsChanged() bool {
	return ev.Old.Minimum != ev.New.Minimum || ev.Old.Maximum != ev.New.Maximum
}

//----------

// Registration handle; listeners are removed by identity.
type ChangeListener struct {
	fn func(*RangeChangeEvent)
}

// Ordered list of listeners. Notifications are synchronous, in registration order.
type ChangeNotifier struct {
	listeners []*ChangeListener
}

func (cn *ChangeNotifier) Add(fn func(*RangeChangeEvent)) *ChangeListener {
	l := &ChangeListener{fn: fn}
	cn.listeners = append(cn.listeners, l)
	return l
}

func (cn *ChangeNotifier) Remove(l *ChangeListener) bool {
	for i, u := range cn.listeners {
		if u == l {
			// new slice: a notify in progress keeps iterating its own copy
			w := make([]*ChangeListener, 0, len(cn.listeners)-1)
			w = append(w, cn.listeners[:i]...)
			w = append(w, cn.listeners[i+1:]...)
			cn.listeners = w
			return true
		}
	}
	return false
}

func (cn *ChangeNotifier) Listeners() []*ChangeListener {
	w := make([]*ChangeListener, len(cn.listeners))
	copy(w, cn.listeners)
	return w
}

func (cn *ChangeNotifier) Notify(ev *RangeChangeEvent) {
	// listeners added/removed while notifying only count for the next notification
	for _, l := range cn.listeners {
		l.fn(ev)
	}
}
