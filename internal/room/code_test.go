package room

import (
	"strings"
	"testing"
)

func TestNewCodeLength(t *testing.T) {
	for _, n := range []int{4, 6, 8} {
		if got := NewCode(n); len(got) != n {
			t.Errorf("NewCode(%d) returned %q (len %d)", n, got, len(got))
		}
	}
}

func TestNewCodeAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewCode(6)
		for _, c := range code {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("code %q contains %q outside the alphabet", code, c)
			}
		}
	}
}

func TestNewCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[NewCode(6)] = true
	}
	// 50 draws from a 32^6 space repeating would mean a broken generator.
	if len(seen) < 49 {
		t.Errorf("expected ~50 distinct codes, got %d", len(seen))
	}
}
