package archive

import (
	"path/filepath"
	"testing"

	"chess-relay/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndRecent(t *testing.T) {
	s := openTestStore(t)

	recs := []session.GameRecord{
		{RoomCode: "AAA111", FirstName: "alice", SecondName: "bob", Result: "bob wins by checkmate!", Moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
		{RoomCode: "BBB222", FirstName: "carol", SecondName: "dave", Result: "Draw by stalemate", Moves: []string{"g6f7"}},
	}
	for _, rec := range recs {
		if err := s.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := s.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	// Newest first.
	if games[0].RoomCode != "BBB222" {
		t.Errorf("expected BBB222 first, got %q", games[0].RoomCode)
	}
	last := games[1]
	if last.FirstPlayer != "alice" || last.SecondPlayer != "bob" {
		t.Errorf("unexpected players: %+v", last)
	}
	if last.Result != "bob wins by checkmate!" {
		t.Errorf("unexpected result %q", last.Result)
	}
	if len(last.Moves) != 4 || last.Moves[3] != "d8h4" {
		t.Errorf("unexpected moves: %v", last.Moves)
	}
}

func TestRecentGamesLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.SaveGame(session.GameRecord{RoomCode: "CCC333", FirstName: "a", SecondName: "b", Result: "Draw"}); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := s.RecentGames(3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Errorf("expected 3 games with limit, got %d", len(games))
	}
}

func TestRecentGamesEmpty(t *testing.T) {
	s := openTestStore(t)

	games, err := s.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games, got %d", len(games))
	}
}

func TestSaveGameNoMoves(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveGame(session.GameRecord{RoomCode: "DDD444", FirstName: "a", SecondName: "b", Result: "Draw"}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	games, err := s.RecentGames(1)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 || games[0].Moves != nil {
		t.Errorf("expected empty move list, got %+v", games)
	}
}
