// Package protocol defines the wire envelopes exchanged with clients.
//
// Inbound frames carry a "type" discriminator selecting one of a closed set
// of variants; anything else decodes to Unknown and is ignored upstream.
// Outbound events are plain structs with their discriminator pre-filled by
// the New* constructors.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Inbound is the closed union of client-to-server messages.
type Inbound interface {
	isInbound()
}

// Join requests entry into a room. An empty RoomCode asks the server to
// create a fresh room.
type Join struct {
	PlayerName string
	RoomCode   string
}

// MakeMove submits a move descriptor for the current game. The descriptor is
// opaque to the protocol layer; the rule engine decides what it means.
type MakeMove struct {
	Move string
}

// Chat carries a free-form text message for the sender's room.
type Chat struct {
	Message string
}

// LeaveRoom withdraws the sender from their current room.
type LeaveRoom struct{}

// Unknown is produced for any unrecognized discriminator.
type Unknown struct {
	Type string
}

func (Join) isInbound()      {}
func (MakeMove) isInbound()  {}
func (Chat) isInbound()      {}
func (LeaveRoom) isInbound() {}
func (Unknown) isInbound()   {}

// Decode parses a raw frame into one of the Inbound variants. A frame that
// is not valid JSON is an error; a valid frame with an unrecognized type
// decodes to Unknown.
func Decode(frame []byte) (Inbound, error) {
	var env struct {
		Type       string `json:"type"`
		PlayerName string `json:"playerName"`
		RoomCode   string `json:"roomCode"`
		Move       string `json:"move"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	switch env.Type {
	case "join":
		return Join{PlayerName: env.PlayerName, RoomCode: env.RoomCode}, nil
	case "make_move":
		return MakeMove{Move: env.Move}, nil
	case "chat":
		return Chat{Message: env.Message}, nil
	case "leave_room":
		return LeaveRoom{}, nil
	default:
		return Unknown{Type: env.Type}, nil
	}
}

// OnlineCount is broadcast to every live connection when the registry size
// changes.
type OnlineCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func NewOnlineCount(count int) OnlineCount {
	return OnlineCount{Type: "online_count", Count: count}
}

// RoomJoined confirms a join to the requester. OpponentName is null when the
// requester is first into the room.
type RoomJoined struct {
	Type         string  `json:"type"`
	RoomCode     string  `json:"roomCode"`
	Color        string  `json:"color"`
	OpponentName *string `json:"opponentName"`
}

func NewRoomJoined(code, color string, opponentName *string) RoomJoined {
	return RoomJoined{Type: "room_joined", RoomCode: code, Color: color, OpponentName: opponentName}
}

// Error reports a domain rejection to the requester only.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Type: "error", Message: message}
}

// OpponentJoined tells the first participant who just arrived.
type OpponentJoined struct {
	Type         string `json:"type"`
	OpponentName string `json:"opponentName"`
}

func NewOpponentJoined(opponentName string) OpponentJoined {
	return OpponentJoined{Type: "opponent_joined", OpponentName: opponentName}
}

// GameStart announces that the room is full and names the first mover.
type GameStart struct {
	Type        string `json:"type"`
	FirstPlayer string `json:"firstPlayer"`
}

func NewGameStart(firstPlayer string) GameStart {
	return GameStart{Type: "game_start", FirstPlayer: firstPlayer}
}

// MoveMade relays an accepted move to both participants.
type MoveMade struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
	Move       string `json:"move"`
}

func NewMoveMade(playerName, move string) MoveMade {
	return MoveMade{Type: "move_made", PlayerName: playerName, Move: move}
}

// GameOver carries the human-readable outcome of a finished game.
type GameOver struct {
	Type   string `json:"type"`
	Result string `json:"result"`
}

func NewGameOver(result string) GameOver {
	return GameOver{Type: "game_over", Result: result}
}

// ChatMessage mirrors a chat line to every participant, sender included.
type ChatMessage struct {
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
}

func NewChatMessage(playerName, message string) ChatMessage {
	return ChatMessage{Type: "chat_message", PlayerName: playerName, Message: message}
}

// OpponentLeft notifies the remaining participant after a leave or
// disconnect.
type OpponentLeft struct {
	Type string `json:"type"`
}

func NewOpponentLeft() OpponentLeft {
	return OpponentLeft{Type: "opponent_left"}
}
