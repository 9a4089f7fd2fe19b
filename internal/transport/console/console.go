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

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const (
	defaultNameX = "Player 1"
	defaultNameO = "Player 2"
)

var errBadInput = errors.New("please enter the row and the column, e.g. 1 2")

type uGame interface {
	StartGame(ctx context.Context, nameX, nameO string, withComputer bool) (usecase.Snapshot, error)
	MakeTurn(ctx context.Context, row, col int) (usecase.Snapshot, error)
	ComputerTurn(ctx context.Context) (usecase.Snapshot, bool, error)
}

// Console drives games over a line based reader and writer.
type Console struct {
	logger *slog.Logger
	uGame  uGame

	in  io.Reader
	out io.Writer

	computerMark string

	lines   chan string
	readErr chan error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, uGame uGame, computerMark string) *Console {
	return &Console{
		logger:       logger.With("component", "console"),
		uGame:        uGame,
		in:           in,
		out:          out,
		computerMark: computerMark,
	}
}

// Run - plays games until the user declines a rematch, the input ends or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.startReader(ctx)

	for {
		if err := that.playGame(ctx); err != nil {
			return err
		}

		again, err := that.askYesNo(ctx, "Play again? (yes/no)")
		if err != nil {
			return err
		}

		if !again {
			that.println("Bye!")
			return nil
		}
	}
}

func (that *Console) playGame(ctx context.Context) error {
	log := that.logger.With("method", "playGame")

	withComputer, err := that.askYesNo(ctx, "Do you want to play against the computer? (yes/no)")
	if err != nil {
		return err
	}

	nameX, nameO, err := that.askNames(ctx, withComputer)
	if err != nil {
		return err
	}

	snapshot, err := that.uGame.StartGame(ctx, nameX, nameO, withComputer)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	log.Debug("game started", "gameID", snapshot.ID)

	if withComputer && snapshot.Board != (entity.Board{}) {
		that.announceComputerMove(entity.Board{}, snapshot.Board)
	}

	for !snapshot.Over {
		that.println(Render(snapshot.Board))

		player := snapshot.CurrentPlayer
		move, err := that.askMove(ctx, player)
		if err != nil {
			return err
		}

		snapshot, err = that.uGame.MakeTurn(ctx, move.Row, move.Col)
		switch {
		case errors.Is(err, apperror.ErrGameFinished):
			that.println(err.Error())
			continue
		case errors.Is(err, apperror.ErrInvalidArgument):
			that.println(invalidMoveMessage(err, move))
			continue
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if withComputer && !snapshot.Over {
			if snapshot, err = that.computerTurn(ctx, snapshot); err != nil {
				return err
			}
		}
	}

	that.println(Render(snapshot.Board))
	that.println(Result(snapshot))

	return nil
}

func (that *Console) askNames(ctx context.Context, withComputer bool) (string, string, error) {
	if withComputer {
		name, err := that.askName(ctx, "Enter your name:", defaultNameX)
		if err != nil {
			return "", "", err
		}

		if that.computerMark == entity.PlayerX {
			return entity.ComputerName, name, nil
		}

		return name, entity.ComputerName, nil
	}

	nameX, err := that.askName(ctx, "Enter the name of player X:", defaultNameX)
	if err != nil {
		return "", "", err
	}

	nameO, err := that.askName(ctx, "Enter the name of player O:", defaultNameO)
	if err != nil {
		return "", "", err
	}

	return nameX, nameO, nil
}

func (that *Console) askName(ctx context.Context, prompt, fallback string) (string, error) {
	that.println(prompt)

	line, err := that.readLine(ctx)
	if err != nil {
		return "", err
	}

	if name := strings.TrimSpace(line); name != "" {
		return name, nil
	}

	return fallback, nil
}

func (that *Console) askYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		that.println(prompt)

		line, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		that.println("Please answer yes or no.")
	}
}

func (that *Console) askMove(ctx context.Context, player entity.Player) (entity.Move, error) {
	for {
		that.println(fmt.Sprintf("%s's turn (%s): enter row and column", player.Name, player.Mark))

		line, err := that.readLine(ctx)
		if err != nil {
			return entity.Move{}, err
		}

		move, err := ParseMove(line)
		if err == nil {
			return move, nil
		}

		that.println(err.Error())
	}
}

// computerTurn - lets the computer answer and announces its move.
func (that *Console) computerTurn(ctx context.Context, current usecase.Snapshot) (usecase.Snapshot, error) {
	snapshot, moved, err := that.uGame.ComputerTurn(ctx)
	if err != nil {
		return snapshot, fmt.Errorf("computer failed to make turn: %w", err)
	}

	if moved {
		that.announceComputerMove(current.Board, snapshot.Board)
	}

	return snapshot, nil
}

func (that *Console) announceComputerMove(before, after entity.Board) {
	for _, move := range before.EmptyCells() {
		if !after.IsEmptyAt(move.Row, move.Col) {
			that.println(fmt.Sprintf("%s played %s", entity.ComputerName, move))
			return
		}
	}
}

// startReader - feeds input lines to readLine until EOF or ctx is done.
func (that *Console) startReader(ctx context.Context) {
	that.lines = make(chan string)
	that.readErr = make(chan error, 1)

	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case that.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.readErr <- err
		}
	}()
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input aborted: %w", ctx.Err())
	case line, ok := <-that.lines:
		if ok {
			return line, nil
		}
	}

	select {
	case err := <-that.readErr:
		return "", fmt.Errorf("failed to read input: %w", err)
	default:
		return "", fmt.Errorf("input closed: %w", io.EOF)
	}
}

func (that *Console) println(text string) {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// ParseMove parses "row col" with zero based coordinates.
func ParseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Move{}, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, errBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, errBadInput
	}

	return entity.Move{Row: row, Col: col}, nil
}

func invalidMoveMessage(err error, move entity.Move) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidCoordinates):
		return fmt.Sprintf("%s is outside the board, rows and columns go from 0 to %d.", move, entity.BoardSize-1)
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("%s is already taken, choose another cell.", move)
	default:
		return err.Error()
	}
}
