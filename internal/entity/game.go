package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownOutcome = errors.New("unknown outcome")

// Outcome tags the result of a single move attempt.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeDraw
	OutcomeWinner
	OutcomeInvalidMove
)

var outcomeNames = [...]string{
	OutcomeContinue:    "continue",
	OutcomeDraw:        "draw",
	OutcomeWinner:      "winner",
	OutcomeInvalidMove: "invalid_move",
}

func (that Outcome) String() string {
	if int(that) < len(outcomeNames) {
		return outcomeNames[that]
	}
	return fmt.Sprintf("Outcome(%d)", uint8(that))
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	for outcome, name := range outcomeNames {
		if name == string(text) {
			*that = Outcome(outcome)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownOutcome, text)
}

// TurnResult is produced by every move attempt. The winner payload is set only
// when Outcome is OutcomeWinner.
type TurnResult struct {
	outcome Outcome
	winner  Symbol
}

func Continue() TurnResult {
	return TurnResult{outcome: OutcomeContinue}
}

func Draw() TurnResult {
	return TurnResult{outcome: OutcomeDraw}
}

func Winner(symbol Symbol) TurnResult {
	return TurnResult{outcome: OutcomeWinner, winner: symbol}
}

func InvalidMove() TurnResult {
	return TurnResult{outcome: OutcomeInvalidMove}
}

func (that TurnResult) Outcome() Outcome {
	return that.outcome
}

func (that TurnResult) Winner() (Symbol, bool) {
	if that.outcome != OutcomeWinner {
		return 0, false
	}
	return that.winner, true
}

// IsTerminal - true when the game is over (win or draw).
func (that TurnResult) IsTerminal() bool {
	return that.outcome == OutcomeWinner || that.outcome == OutcomeDraw
}

func (that TurnResult) String() string {
	if winner, ok := that.Winner(); ok {
		return fmt.Sprintf("%s(%s)", that.outcome, winner)
	}
	return that.outcome.String()
}

// TurnEvent describes one move attempt for spectators.
type TurnEvent struct {
	GameID  string    `json:"game_id"`
	Player  Symbol    `json:"player"`
	Cell    CellIndex `json:"cell"`
	Outcome Outcome   `json:"outcome"`
	Winner  *Symbol   `json:"winner,omitempty"`
}

func NewTurnEvent(gameID string, player Symbol, cell CellIndex, result TurnResult) *TurnEvent {
	event := &TurnEvent{
		GameID:  gameID,
		Player:  player,
		Cell:    cell,
		Outcome: result.Outcome(),
	}

	if winner, ok := result.Winner(); ok {
		event.Winner = &winner
	}

	return event
}
