package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type eventRepo interface {
	Publish(ctx context.Context, event *entity.TurnEvent) error
}

// GameSession drives one board at a time and reports every turn to the event repository.
type GameSession struct {
	logger    *slog.Logger
	eventRepo eventRepo

	gameID string
	board  *tictactoe.Board
}

func NewGameSession(logger *slog.Logger, eventRepo eventRepo) *GameSession {
	return &GameSession{
		logger:    logger.With("component", "game_session"),
		eventRepo: eventRepo,
	}
}

// Start - discards the current board, if any, and begins a new game with first to move.
func (that *GameSession) Start(ctx context.Context, first entity.Symbol) error {
	if !first.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownSymbol, uint8(first))
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return fmt.Errorf("error generating game ID: %w", err)
	}

	that.gameID = gameID
	that.board = tictactoe.NewBoard(first)

	that.logger.InfoContext(ctx, "game started", "gameID", gameID, "first", first.String())

	return nil
}

func (that *GameSession) MakeTurn(ctx context.Context, index entity.CellIndex) (entity.TurnResult, error) {
	if that.board == nil {
		return entity.InvalidMove(), apperror.ErrGameNotStarted
	}

	log := that.logger.With("method", "MakeTurn", "gameID", that.gameID)

	player := that.board.CurrentPlayer()

	result, err := that.board.ProcessTurn(index)
	if err != nil {
		return result, fmt.Errorf("failed make turn: %w", err)
	}

	log.DebugContext(ctx, "turn processed", "player", player.String(), "cell", index.String(), "result", result.String())

	if err = that.eventRepo.Publish(ctx, entity.NewTurnEvent(that.gameID, player, index, result)); err != nil {
		log.ErrorContext(ctx, "failed to publish turn event", "error", err)
	}

	if result.IsTerminal() {
		log.InfoContext(ctx, "game finished", "result", result.String())
	}

	return result, nil
}

// Board - the board of the current game, nil before Start.
func (that *GameSession) Board() *tictactoe.Board {
	return that.board
}

func (that *GameSession) GameID() string {
	return that.gameID
}
