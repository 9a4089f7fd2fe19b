package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type BotService interface {
	// MakeTurn plays the computer's move. It returns false when it is not the computer's turn.
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, bool, error)
}

type moveRepo interface {
	CreateOrUpdate(ctx context.Context, evaluation *entity.Evaluation) error
	GetByKey(ctx context.Context, key string) (*entity.Evaluation, error)
}

type botService struct {
	logger   *slog.Logger
	moveRepo moveRepo

	computerMark string
	humanMark    string
}

func NewBotService(logger *slog.Logger, moveRepo moveRepo, computerMark string) BotService {
	return &botService{
		logger:       logger.With("component", "bot"),
		moveRepo:     moveRepo,
		computerMark: computerMark,
		humanMark:    entity.Opponent(computerMark),
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, bool, error) {
	ready, err := tictactoe.ReadyToMove(game, that.computerMark, that.humanMark)
	if !ready {
		return entity.Move{}, false, err
	}

	log := that.logger.With("method", "MakeTurn", "gameID", game.ID())

	board := game.Board()

	move, err := that.findMove(ctx, log, board)
	if err != nil {
		return entity.Move{}, false, err
	}

	if err = game.MakeMove(move.Row, move.Col); err != nil {
		return entity.Move{}, false, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made a turn", "row", move.Row, "col", move.Col)

	return move, true, nil
}

// findMove - looks the position up in the cache before running the search.
// Cache failures are logged and never block the move.
func (that *botService) findMove(ctx context.Context, log *slog.Logger, board entity.Board) (entity.Move, error) {
	key := entity.EvaluationKey(board.Key(), that.computerMark)

	cached, err := that.moveRepo.GetByKey(ctx, key)
	switch {
	case err == nil && usable(cached, board):
		log.Debug("cache hit", "key", key, "move", cached.Move.String(), "score", cached.Score)
		return cached.Move, nil
	case err == nil:
		log.Warn("ignoring unusable cached move", "key", key, "move", cached.Move.String(), "revision", cached.Revision)
	case !errors.Is(err, repository.ErrMoveNotFound):
		log.Error("failed to read move cache", "key", key, "error", err)
	}

	move, score, err := tictactoe.BestMove(board, that.computerMark, that.humanMark)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to find a move: %w", err)
	}

	log.Debug("search finished", "move", move.String(), "score", score)

	evaluation := entity.NewEvaluation(board, that.computerMark, move, score)
	if err = that.moveRepo.CreateOrUpdate(ctx, evaluation); err != nil {
		log.Error("failed to store move in cache", "key", key, "error", err)
	}

	return move, nil
}

// usable - the entry must come from the current search and point to a free cell on the board.
func usable(cached *entity.Evaluation, board entity.Board) bool {
	return cached.IsCurrent() &&
		cached.Board == board.Key() &&
		cached.Move.IsValid() &&
		board.IsEmptyAt(cached.Move.Row, cached.Move.Col)
}
