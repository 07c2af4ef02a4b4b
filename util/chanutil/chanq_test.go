package chanutil

import (
	"testing"
	"time"
)

func TestChanQOrder(t *testing.T) {
	ch := NewChanQ(1, 1)
	defer ch.Close()
	for i := 0; i < 100; i++ {
		ch.In() <- i // doesn't block: nobody reads yet
	}
	for i := 0; i < 100; i++ {
		if v := <-ch.Out(); v != i {
			t.Fatalf("got %v, expected %v", v, i)
		}
	}
}

func TestChanQNilValue(t *testing.T) {
	ch := NewChanQ(1, 1)
	defer ch.Close()
	ch.In() <- nil
	ch.In() <- 1
	if v := <-ch.Out(); v != nil {
		t.Fatalf("expected nil, got %v", v)
	}
	if v := <-ch.Out(); v != 1 {
		t.Fatalf("expected 1, got %v", v)
	}
}

func TestChanQSendAfterClose(t *testing.T) {
	ch := NewChanQ(1, 1)
	if !ch.Send(1) {
		t.Fatal("send failed")
	}
	ch.Close()

	done := make(chan bool)
	go func() {
		ok := true
		for i := 0; i < 10 && ok; i++ {
			ok = ch.Send(i) // nobody drains the queue anymore
		}
		done <- ok
	}()
	select {
	case ok := <-done:
		if ok {
			t.Fatal("expected a failed send")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("send blocked after close")
	}
}
