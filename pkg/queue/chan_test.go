package queue

import "testing"

var _ Queue[int] = (*Chan[int])(nil)

func TestNewChan_ClampCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{"explicit", 8, 8},
		{"zero_clamps_to_one", 0, 1},
		{"negative_clamps_to_one", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewChan[int](tt.capacity)
			if got := q.Cap(); got != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", got, tt.wantCap)
			}
		})
	}
}

func TestChan_TryPutTryGet(t *testing.T) {
	q := NewChan[int](2)

	if !q.TryPut(1) || !q.TryPut(2) {
		t.Fatal("TryPut failed below capacity")
	}
	if q.TryPut(3) {
		t.Fatal("TryPut succeeded on full queue")
	}
	if got := q.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	for _, want := range []int{1, 2} {
		v, ok := q.TryGet()
		if !ok || v != want {
			t.Errorf("TryGet() = (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	if _, ok := q.TryGet(); ok {
		t.Error("TryGet succeeded on empty queue")
	}
}
