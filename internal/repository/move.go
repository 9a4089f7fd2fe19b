package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const moveKeyPrefix = "move:"

var ErrMoveNotFound = errors.New("move not found")

type MoveRepository interface {
	CreateOrUpdate(ctx context.Context, evaluation *entity.Evaluation) error
	GetByKey(ctx context.Context, key string) (*entity.Evaluation, error)
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository stores evaluations in Redis. A zero ttl keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) CreateOrUpdate(ctx context.Context, evaluation *entity.Evaluation) error {
	evaluationJSON, err := json.Marshal(evaluation)
	if err != nil {
		return fmt.Errorf("could not marshal evaluation: %w", err)
	}

	err = that.client.Set(ctx, moveKeyPrefix+evaluation.Key(), evaluationJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set evaluation: %w", err)
	}

	return nil
}

func (that *dbMove) GetByKey(ctx context.Context, key string) (*entity.Evaluation, error) {
	response, err := that.client.Get(ctx, moveKeyPrefix+key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMoveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation by key: %w", err)
	}

	var evaluation entity.Evaluation
	if err = json.Unmarshal([]byte(response), &evaluation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
	}

	return &evaluation, nil
}
