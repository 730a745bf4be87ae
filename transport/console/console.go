package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	exitCommand = "exit"

	answerYes = "y"
	answerNo  = "n"
)

// errExit - the player typed the exit command.
var errExit = errors.New("exit requested")

type gameSession interface {
	Start(ctx context.Context, first entity.Symbol) error
	MakeTurn(ctx context.Context, index entity.CellIndex) (entity.TurnResult, error)
	Board() *tictactoe.Board
}

// Console plays games over a line-based text stream.
type Console struct {
	logger  *slog.Logger
	session gameSession

	in     *bufio.Scanner
	out    io.Writer
	output *termenv.Output

	firstPlayer entity.Symbol
	styles      map[entity.Symbol]termenv.Style
}

type Option func(*Console)

// WithFirstPlayer - skip the starting player prompt and always start with symbol.
func WithFirstPlayer(symbol entity.Symbol) Option {
	return func(that *Console) {
		that.firstPlayer = symbol
	}
}

// WithoutColor - render symbols as plain text even on a color terminal.
func WithoutColor() Option {
	return func(that *Console) {
		that.output = termenv.NewOutput(that.out, termenv.WithProfile(termenv.Ascii))
	}
}

func New(logger *slog.Logger, session gameSession, in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		logger:  logger.With("component", "console"),
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
		output:  termenv.NewOutput(out),
	}

	for _, opt := range opts {
		opt(console)
	}

	profile := console.output.Profile
	console.styles = map[entity.Symbol]termenv.Style{
		entity.SymbolX: profile.String().Foreground(profile.Color("1")).Bold(),
		entity.SymbolO: profile.String().Foreground(profile.Color("4")).Bold(),
	}

	return console
}

// Run - plays games until the player quits or the input ends.
// Returns the context error if ctx is canceled while waiting for input.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.println("Welcome to tic-tac-toe.")

	for {
		err := that.playRound(ctx)

		switch {
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			log.Debug("console session ended", "reason", err)
			return nil
		case err != nil:
			return err
		}
	}
}

func (that *Console) playRound(ctx context.Context) error {
	first, err := that.selectStartingPlayer(ctx)
	if err != nil {
		return err
	}

	if err = that.playGame(ctx, first); err != nil {
		return err
	}

	that.println("Play again? Y/N")

	return that.checkPlayAgain(ctx)
}

func (that *Console) selectStartingPlayer(ctx context.Context) (entity.Symbol, error) {
	if that.firstPlayer.Valid() {
		return that.firstPlayer, nil
	}

	for {
		that.println("Who will play first? Type X or O")

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		if line == exitCommand {
			return 0, errExit
		}

		symbol, err := entity.ParseSymbol(line)
		if err != nil {
			that.printf("I couldn't understand that. Type %q to quit.\n", exitCommand)
			continue
		}

		return symbol, nil
	}
}

func (that *Console) playGame(ctx context.Context, first entity.Symbol) error {
	if err := that.session.Start(ctx, first); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	for {
		board := that.session.Board()

		that.printf("%s", board.Render(that.mark))
		that.printf("Player %s it's your turn.\nType your move in COLUMN ROW format.\nType %q to quit\n",
			that.symbol(board.CurrentPlayer()), exitCommand)

		line, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		if line == exitCommand {
			return errExit
		}

		index, ok := parseMove(line)
		if !ok {
			that.println("Invalid input format!\nPlease try again.")
			continue
		}

		if !index.Valid() {
			that.printf("Coordinates must be between 0 and %d.\nPlease try again.\n", entity.BoardWidth-1)
			continue
		}

		result, err := that.session.MakeTurn(ctx, index)
		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		switch result.Outcome() {
		case entity.OutcomeContinue:
			continue
		case entity.OutcomeDraw:
			that.println("It's a draw!")
			return nil
		case entity.OutcomeWinner:
			winner, _ := result.Winner()
			that.printf("Player %s won!\n", that.symbol(winner))
			that.printf("%s", board.Render(that.mark))
			return nil
		case entity.OutcomeInvalidMove:
			that.println("Space already occupied. Please try again.")
		}
	}
}

// checkPlayAgain - nil to play another game, errExit to stop.
func (that *Console) checkPlayAgain(ctx context.Context) error {
	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		switch line {
		case answerYes:
			return nil
		case answerNo, exitCommand:
			return errExit
		default:
			that.println("Invalid input format, please try again.")
		}
	}
}

// parseMove - keeps the tokens that are small unsigned integers and expects exactly two of them.
func parseMove(line string) (entity.CellIndex, bool) {
	values := make([]uint8, 0, 2)

	for _, field := range strings.Fields(line) {
		value, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			continue
		}
		values = append(values, uint8(value))
	}

	if len(values) != 2 {
		return entity.CellIndex{}, false
	}

	return entity.CellIndex{Column: values[0], Row: values[1]}, true
}

// readLine - next input line, trimmed and lower-cased. io.EOF when the input is exhausted.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read line: %w", err)
		}
		return "", io.EOF
	}

	return strings.ToLower(strings.TrimSpace(that.in.Text())), nil
}

func (that *Console) mark(cell entity.Cell) string {
	symbol, ok := cell.Symbol()
	if !ok {
		return cell.Mark()
	}
	return that.symbol(symbol)
}

func (that *Console) symbol(symbol entity.Symbol) string {
	return that.styles[symbol].Styled(symbol.String())
}

func (that *Console) println(text string) {
	_, _ = fmt.Fprintln(that.out, text)
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
