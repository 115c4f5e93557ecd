package engine

import "testing"

func TestNewSessionFirstToMove(t *testing.T) {
	s := NewSession()
	if s.Turn() != First {
		t.Errorf("expected First to move, got %v", s.Turn())
	}
	if s.Status() != Ongoing {
		t.Errorf("expected Ongoing, got %v", s.Status())
	}
}

func TestApplyMoveFlipsTurn(t *testing.T) {
	s := NewSession()
	if err := s.ApplyMove("e2e4"); err != nil {
		t.Fatalf("ApplyMove(e2e4) failed: %v", err)
	}
	if s.Turn() != Second {
		t.Errorf("expected Second to move after e2e4, got %v", s.Turn())
	}
	if err := s.ApplyMove("e7e5"); err != nil {
		t.Fatalf("ApplyMove(e7e5) failed: %v", err)
	}
	if s.Turn() != First {
		t.Errorf("expected First to move after e7e5, got %v", s.Turn())
	}
}

func TestApplyMoveSANFallback(t *testing.T) {
	s := NewSession()
	if err := s.ApplyMove("Nf3"); err != nil {
		t.Fatalf("ApplyMove(Nf3) failed: %v", err)
	}
	if got := s.MoveHistory(); len(got) != 1 || got[0] != "g1f3" {
		t.Errorf("unexpected history: %v", got)
	}
}

func TestApplyMoveRejected(t *testing.T) {
	s := NewSession()
	cases := []string{"", "e2e5", "Ke2", "garbage", "e7e5"}
	for _, mv := range cases {
		if err := s.ApplyMove(mv); err == nil {
			t.Errorf("expected rejection for %q", mv)
		}
	}
	if s.Turn() != First {
		t.Errorf("rejected moves must not change the turn, got %v", s.Turn())
	}
	if len(s.MoveHistory()) != 0 {
		t.Errorf("rejected moves must not enter the history: %v", s.MoveHistory())
	}
}

func TestFoolsMateCheckmate(t *testing.T) {
	s := NewSession()
	for _, mv := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if err := s.ApplyMove(mv); err != nil {
			t.Fatalf("ApplyMove(%s) failed: %v", mv, err)
		}
	}
	if s.Status() != Checkmate {
		t.Errorf("expected Checkmate, got %v", s.Status())
	}
}

func TestStalemate(t *testing.T) {
	s, err := NewSessionFEN("7k/8/6Q1/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("NewSessionFEN() failed: %v", err)
	}
	if err := s.ApplyMove("g6f7"); err != nil {
		t.Fatalf("ApplyMove(g6f7) failed: %v", err)
	}
	if s.Status() != Stalemate {
		t.Errorf("expected Stalemate, got %v", s.Status())
	}
}

func TestInsufficientMaterial(t *testing.T) {
	s, err := NewSessionFEN("k7/8/8/8/8/8/1q6/1K6 w - - 0 1")
	if err != nil {
		t.Fatalf("NewSessionFEN() failed: %v", err)
	}
	if err := s.ApplyMove("b1b2"); err != nil {
		t.Fatalf("ApplyMove(b1b2) failed: %v", err)
	}
	if s.Status() != InsufficientMaterial {
		t.Errorf("expected InsufficientMaterial, got %v", s.Status())
	}
}

func TestThreefoldRepetitionClaimed(t *testing.T) {
	s := NewSession()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	// The starting position occurs for the third time after two full
	// knight shuffles.
	for i := 0; i < 2; i++ {
		for _, mv := range shuffle {
			if err := s.ApplyMove(mv); err != nil {
				t.Fatalf("ApplyMove(%s) failed: %v", mv, err)
			}
		}
	}
	if s.Status() != Repetition {
		t.Errorf("expected Repetition, got %v", s.Status())
	}
}

func TestColorOther(t *testing.T) {
	if First.Other() != Second || Second.Other() != First {
		t.Error("Other() must flip the color")
	}
	if First.String() != "First" || Second.String() != "Second" {
		t.Error("unexpected color strings")
	}
}
