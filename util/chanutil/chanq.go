package chanutil

import (
	"container/list"
	"sync"
)

// Flexible channel queue (no fixed length): sends on In() never block for long, even if nobody is reading Out().
type ChanQ struct {
	q         list.List
	in, out   chan any
	done      chan struct{}
	closeOnce sync.Once
}

func NewChanQ(inSize, outSize int) *ChanQ {
	ch := &ChanQ{}
	ch.in = make(chan any, inSize)
	ch.out = make(chan any, outSize)
	ch.done = make(chan struct{})
	go ch.loop()
	return ch
}

func (ch *ChanQ) In() chan<- any {
	return ch.in
}

func (ch *ChanQ) Out() <-chan any {
	return ch.out
}

// Returns false if the queue was closed before the value could be queued.
func (ch *ChanQ) Send(v any) bool {
	select {
	case <-ch.done:
		return false
	default:
	}
	select {
	case ch.in <- v:
		return true
	case <-ch.done:
		return false
	}
}

// Stops the queue goroutine. Pending values are dropped.
func (ch *ChanQ) Close() {
	ch.closeOnce.Do(func() { close(ch.done) })
}

func (ch *ChanQ) loop() {
	var next any
	var out chan<- any
	for {
		select {
		case <-ch.done:
			return
		case v := <-ch.in:
			if out == nil {
				next = v
				out = ch.out
			} else {
				ch.q.PushBack(v)
			}
		case out <- next:
			elem := ch.q.Front()
			if elem == nil {
				next = nil
				out = nil
			} else {
				next = elem.Value
				ch.q.Remove(elem)
			}
		}
	}
}
