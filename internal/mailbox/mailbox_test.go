package mailbox

import (
	"testing"
	"time"
)

func TestPutCoalesces(t *testing.T) {
	m := New[int]()
	m.Put(1)
	m.Put(2)
	m.Put(3)

	if got := m.Take(); got != 3 {
		t.Errorf("Take = %d, want latest value 3", got)
	}
	if v := m.TryTake(); v != nil {
		t.Errorf("TryTake = %v, want nil after drain", *v)
	}
}

func TestTakeBlocksUntilPut(t *testing.T) {
	m := New[string]()
	done := make(chan string, 1)

	go func() { done <- m.Take() }()

	select {
	case v := <-done:
		t.Fatalf("Take returned %q before Put", v)
	case <-time.After(20 * time.Millisecond):
	}

	m.Put("sweep")

	select {
	case v := <-done:
		if v != "sweep" {
			t.Errorf("Take = %q", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Take never returned")
	}
}

func TestTryTakeEmpty(t *testing.T) {
	m := New[int]()
	if v := m.TryTake(); v != nil {
		t.Errorf("TryTake on empty = %v, want nil", *v)
	}
}
