// Package engine wraps the chess rule engine behind the small surface the
// session manager needs: create a session, submit a move, read whose turn it
// is, and ask whether the game has reached a terminal state.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
)

// Color identifies a participant's side. First always moves first.
type Color int

const (
	First Color = iota
	Second
)

func (c Color) String() string {
	if c == First {
		return "First"
	}
	return "Second"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == First {
		return Second
	}
	return First
}

// Status describes whether a session has ended and how.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	Repetition
	InsufficientMaterial
	// Drawn covers the remaining automatic draw causes (e.g. the
	// seventy-five-move rule) that the protocol reports generically.
	Drawn
)

// Session is one game in progress. Not safe for concurrent use; the session
// manager serializes access.
type Session struct {
	game *chess.Game
}

// NewSession starts a game from the initial position.
func NewSession() *Session {
	return &Session{game: chess.NewGame()}
}

// NewSessionFEN starts a game from an arbitrary position.
func NewSessionFEN(fen string) (*Session, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen: %w", err)
	}
	return &Session{game: chess.NewGame(opt)}, nil
}

// ApplyMove submits a move descriptor against the current position. UCI is
// tried first, algebraic notation as a fallback. A non-nil error means the
// move was rejected and the position is unchanged.
func (s *Session) ApplyMove(descriptor string) error {
	raw := strings.TrimSpace(descriptor)
	if raw == "" {
		return errors.New("empty move")
	}
	pos := s.game.Position()
	if mv, err := (chess.UCINotation{}).Decode(pos, strings.ToLower(raw)); err == nil {
		if err := s.game.Move(mv, nil); err != nil {
			return fmt.Errorf("illegal move %q: %w", descriptor, err)
		}
		s.claimRepetition()
		return nil
	}
	if err := s.game.PushNotationMove(raw, chess.AlgebraicNotation{}, nil); err != nil {
		return fmt.Errorf("illegal move %q: %w", descriptor, err)
	}
	s.claimRepetition()
	return nil
}

// claimRepetition draws the game by threefold repetition as soon as it is
// eligible. The protocol has no claim-draw message, so the relay claims on
// the players' behalf.
func (s *Session) claimRepetition() {
	if s.game.Outcome() != chess.NoOutcome {
		return
	}
	for _, m := range s.game.EligibleDraws() {
		if m == chess.ThreefoldRepetition {
			_ = s.game.Draw(chess.ThreefoldRepetition)
			return
		}
	}
}

// Turn reports which color moves next.
func (s *Session) Turn() Color {
	if s.game.Position().Turn() == chess.White {
		return First
	}
	return Second
}

// Status reports the terminal state of the session, or Ongoing.
func (s *Session) Status() Status {
	if s.game.Outcome() == chess.NoOutcome {
		return Ongoing
	}
	switch s.game.Method() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	case chess.ThreefoldRepetition, chess.FivefoldRepetition:
		return Repetition
	case chess.InsufficientMaterial:
		return InsufficientMaterial
	default:
		return Drawn
	}
}

// MoveHistory returns the moves played so far in UCI notation.
func (s *Session) MoveHistory() []string {
	moves := s.game.Moves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
