package sat

import "testing"

func TestLubySequence(t *testing.T) {
	// 1-indexed: 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8, ...
	want := []int{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}
	for i, w := range want {
		n := i + 1
		if got := lubySequence(n); got != w {
			t.Errorf("lubySequence(%d) = %d, want %d", n, got, w)
		}
	}
}
