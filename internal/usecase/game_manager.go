package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

var ErrNoComputer = errors.New("game is not played against the computer")

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, bool, error)
}

// Snapshot is a read-only view of a game.
type Snapshot struct {
	ID            string
	Board         entity.Board
	PlayerX       entity.Player
	PlayerO       entity.Player
	CurrentPlayer entity.Player
	Winner        *entity.Player
	Over          bool
	WithComputer  bool
}

// GameManager serializes access to a single game session.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	mu           sync.Mutex
	game         *entity.Game
	withComputer bool
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// StartGame begins a new session. With withComputer the O player is the computer
// unless nameO is given.
func (that *GameManager) StartGame(ctx context.Context, nameX, nameO string, withComputer bool) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if withComputer && that.bot == nil {
		return Snapshot{}, ErrNoComputer
	}

	game := entity.NewGame(pkg.GenerateGameID())
	game.Start(nameX, nameO)

	that.game = game
	that.withComputer = withComputer

	log := that.logger.With("method", "StartGame", "gameID", game.ID())
	log.Info("game started", "playerX", game.PlayerX().Name, "playerO", game.PlayerO().Name, "withComputer", withComputer)

	// the computer may own X
	if withComputer {
		if _, err := that.computerTurn(ctx); err != nil {
			return that.snapshot(), err
		}
	}

	return that.snapshot(), nil
}

// MakeTurn applies the current player's move. In games against the computer the caller
// follows up with ComputerTurn.
func (that *GameManager) MakeTurn(ctx context.Context, row, col int) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return Snapshot{}, apperror.ErrGameIsNotStarted
	}

	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID())

	player := that.game.CurrentPlayer()
	if err := that.game.MakeMove(row, col); err != nil {
		log.Debug("move rejected", "player", player.Name, "row", row, "col", col, "error", err)
		return that.snapshot(), fmt.Errorf("failed to make turn: %w", err)
	}

	log.Info("player made a turn", "player", player.Name, "mark", player.Mark, "row", row, "col", col)

	if that.game.IsGameOver() {
		that.logResult(log)
	}

	return that.snapshot(), nil
}

// ComputerTurn asks the computer to move. It is a no-op when it is the human's turn.
func (that *GameManager) ComputerTurn(ctx context.Context) (Snapshot, bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return Snapshot{}, false, apperror.ErrGameIsNotStarted
	}

	if !that.withComputer {
		return that.snapshot(), false, ErrNoComputer
	}

	moved, err := that.computerTurn(ctx)
	if err != nil {
		return that.snapshot(), false, err
	}

	if moved && that.game.IsGameOver() {
		that.logResult(that.logger.With("method", "ComputerTurn", "gameID", that.game.ID()))
	}

	return that.snapshot(), moved, nil
}

func (that *GameManager) Snapshot() (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return Snapshot{}, apperror.ErrGameIsNotStarted
	}

	return that.snapshot(), nil
}

// computerTurn - assumes mu is locked.
func (that *GameManager) computerTurn(ctx context.Context) (bool, error) {
	log := that.logger.With("method", "computerTurn", "gameID", that.game.ID())

	move, moved, err := that.bot.MakeTurn(ctx, that.game)
	if err != nil {
		return false, fmt.Errorf("computer failed to make turn: %w", err)
	}

	if moved {
		log.Info("computer made a turn", "row", move.Row, "col", move.Col)
	}

	return moved, nil
}

func (that *GameManager) logResult(log *slog.Logger) {
	if winner := that.game.Winner(); winner != nil {
		log.Info("game finished", "winner", winner.Name, "moves", that.game.MovesCount())
		return
	}

	log.Info("game finished in a draw")
}

// snapshot - assumes mu is locked.
func (that *GameManager) snapshot() Snapshot {
	return Snapshot{
		ID:            that.game.ID(),
		Board:         that.game.Board(),
		PlayerX:       that.game.PlayerX(),
		PlayerO:       that.game.PlayerO(),
		CurrentPlayer: that.game.CurrentPlayer(),
		Winner:        that.game.Winner(),
		Over:          that.game.IsGameOver(),
		WithComputer:  that.withComputer,
	}
}
