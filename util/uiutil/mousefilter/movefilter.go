package mousefilter

import (
	"sync"
	"time"

	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

// Coalesces motion events so that at most one is sent per frame. Other events flush a kept motion event before being sent (order is preserved).
type MoveFilter struct {
	out      chan<- interface{}
	fps      int
	isMoveFn func(interface{}) bool

	last struct {
		sync.Mutex
		timer  *time.Timer
		sent   time.Time
		moveEv interface{}
	}
}

func NewMoveFilter(out chan<- interface{}, fps int, isMoveFn func(interface{}) bool) *MoveFilter {
	if fps <= 0 {
		fps = 60
	}
	if isMoveFn == nil {
		isMoveFn = IsWindowInputMove
	}
	return &MoveFilter{out: out, fps: fps, isMoveFn: isMoveFn}
}

func (movef *MoveFilter) Filter(ev interface{}) {
	if movef.isMoveFn(ev) {
		movef.keepMoveEv(ev)
	} else {
		movef.sendMoveEv()
		movef.out <- ev
	}
}

func (movef *MoveFilter) keepMoveEv(moveEv interface{}) {
	frameDur := time.Second / time.Duration(movef.fps)
	movef.last.Lock()
	defer movef.last.Unlock()
	if movef.last.timer != nil {
		// a send is already scheduled, just replace the event to send
		movef.last.moveEv = moveEv
		return
	}
	now := time.Now()
	if now.Sub(movef.last.sent) >= frameDur {
		movef.last.sent = now
		movef.out <- moveEv
	} else {
		movef.last.moveEv = moveEv // set ev to send later
		d := frameDur - now.Sub(movef.last.sent)
		movef.last.timer = time.AfterFunc(d, movef.sendMoveEv)
	}
}

func (movef *MoveFilter) sendMoveEv() {
	movef.last.Lock()
	defer movef.last.Unlock()
	if movef.last.moveEv != nil {
		movef.last.sent = time.Now()
		movef.out <- movef.last.moveEv
		movef.last.moveEv = nil
	}
	if movef.last.timer != nil {
		movef.last.timer.Stop()
		movef.last.timer = nil
	}
}

//----------

func IsWindowInputMove(ev interface{}) bool {
	wi, ok := ev.(*event.WindowInput)
	if !ok {
		return false
	}
	_, ok = wi.Event.(*event.MouseMove)
	return ok
}
