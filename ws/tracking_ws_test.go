package ws

import (
	"context"
	"testing"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
)

func TestHubSendAfterStop(t *testing.T) {
	h := NewTrackingHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	result := make(chan bool, 2)
	go func() {
		result <- h.send(h.register, Subscription{OrderID: 1})
		result <- h.send(h.unregister, Subscription{OrderID: 1})
	}()
	for i := 0; i < 2; i++ {
		select {
		case ok := <-result:
			if ok {
				t.Fatal("send succeeded on a stopped hub")
			}
		case <-time.After(time.Second):
			t.Fatal("send blocked on a stopped hub")
		}
	}

	// notifications never block either
	h.NotifyTracking(1, services.LiveTracking{OrderID: 1})
	if n := h.Subscribers(1); n != 0 {
		t.Fatalf("subscribers = %d", n)
	}
}
