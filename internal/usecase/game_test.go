package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var errRedisDown = errors.New("redis down")

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Publish(ctx context.Context, event *entity.TurnEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestSession(t *testing.T) (*GameSession, *mockEventRepo) {
	t.Helper()

	repo := &mockEventRepo{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameSession(logger, repo), repo
}

func TestGameSession_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a board with the chosen player", func(t *testing.T) {
		// Given: a new session
		session, _ := newTestSession(t)

		// When: a game is started with O first
		err := session.Start(ctx, entity.SymbolO)

		// Then: a board exists and O is to move
		require.NoError(t, err)
		require.NotNil(t, session.Board())
		assert.Equal(t, entity.SymbolO, session.Board().CurrentPlayer())
		assert.NotEmpty(t, session.GameID())
	})

	t.Run("Restart replaces the board", func(t *testing.T) {
		// Given: a game with one move played
		session, repo := newTestSession(t)
		repo.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, session.Start(ctx, entity.SymbolX))
		firstID := session.GameID()
		_, err := session.MakeTurn(ctx, entity.CellIndex{Column: 1, Row: 1})
		require.NoError(t, err)

		// When: a new game is started
		require.NoError(t, session.Start(ctx, entity.SymbolX))

		// Then: the board is empty and the game id changed
		cell, err := session.Board().Get(entity.CellIndex{Column: 1, Row: 1})
		require.NoError(t, err)
		assert.True(t, cell.IsEmpty())
		assert.NotEqual(t, firstID, session.GameID())
	})

	t.Run("Rejects an unknown symbol", func(t *testing.T) {
		session, _ := newTestSession(t)

		err := session.Start(ctx, entity.Symbol(0))

		require.ErrorIs(t, err, apperror.ErrUnknownSymbol)
		assert.Nil(t, session.Board())
	})
}

func TestGameSession_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns ErrGameNotStarted before Start", func(t *testing.T) {
		session, _ := newTestSession(t)

		_, err := session.MakeTurn(ctx, entity.CellIndex{})

		require.ErrorIs(t, err, apperror.ErrGameNotStarted)
	})

	t.Run("Publishes the turn", func(t *testing.T) {
		// Given: a started game
		session, repo := newTestSession(t)
		require.NoError(t, session.Start(ctx, entity.SymbolX))

		cell := entity.CellIndex{Column: 2, Row: 0}
		expected := &entity.TurnEvent{
			GameID:  session.GameID(),
			Player:  entity.SymbolX,
			Cell:    cell,
			Outcome: entity.OutcomeContinue,
		}
		repo.On("Publish", mock.Anything, expected).Return(nil).Once()

		// When: X plays
		result, err := session.MakeTurn(ctx, cell)

		// Then: the game continues and the event was published
		require.NoError(t, err)
		assert.Equal(t, entity.Continue(), result)
	})

	t.Run("Invalid move is published and not an error", func(t *testing.T) {
		session, repo := newTestSession(t)
		require.NoError(t, session.Start(ctx, entity.SymbolX))

		repo.On("Publish", mock.Anything, mock.Anything).Return(nil).Twice()

		_, err := session.MakeTurn(ctx, entity.CellIndex{})
		require.NoError(t, err)

		result, err := session.MakeTurn(ctx, entity.CellIndex{})

		require.NoError(t, err)
		assert.Equal(t, entity.InvalidMove(), result)
		assert.Equal(t, entity.SymbolO, session.Board().CurrentPlayer())
	})

	t.Run("Publish failure does not fail the turn", func(t *testing.T) {
		// Given: an event repository that is down
		session, repo := newTestSession(t)
		require.NoError(t, session.Start(ctx, entity.SymbolX))

		repo.On("Publish", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		// When: a move is made
		result, err := session.MakeTurn(ctx, entity.CellIndex{Column: 1, Row: 1})

		// Then: the move is still applied
		require.NoError(t, err)
		assert.Equal(t, entity.Continue(), result)
	})

	t.Run("Out of range cell is not published", func(t *testing.T) {
		session, _ := newTestSession(t)
		require.NoError(t, session.Start(ctx, entity.SymbolX))

		_, err := session.MakeTurn(ctx, entity.CellIndex{Column: 5, Row: 1})

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning move publishes the winner", func(t *testing.T) {
		// Given: X about to complete the top row
		session, repo := newTestSession(t)
		require.NoError(t, session.Start(ctx, entity.SymbolX))

		repo.On("Publish", mock.Anything, mock.MatchedBy(func(event *entity.TurnEvent) bool {
			return event.Outcome == entity.OutcomeContinue
		})).Return(nil).Times(4)

		for _, cell := range []entity.CellIndex{{Column: 0, Row: 0}, {Column: 0, Row: 1}, {Column: 1, Row: 0}, {Column: 1, Row: 1}} {
			_, err := session.MakeTurn(ctx, cell)
			require.NoError(t, err)
		}

		repo.On("Publish", mock.Anything, mock.MatchedBy(func(event *entity.TurnEvent) bool {
			return event.Outcome == entity.OutcomeWinner && event.Winner != nil && *event.Winner == entity.SymbolX
		})).Return(nil).Once()

		// When: X completes the row
		result, err := session.MakeTurn(ctx, entity.CellIndex{Column: 2, Row: 0})

		// Then: X wins
		require.NoError(t, err)
		assert.Equal(t, entity.Winner(entity.SymbolX), result)
	})
}
