package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type memoryMove struct {
	// data is protected by dataMutex
	data      map[string]entity.Evaluation
	dataMutex sync.RWMutex
}

// NewMemoryMoveRepository keeps evaluations in process memory.
func NewMemoryMoveRepository() MoveRepository {
	return &memoryMove{
		data: make(map[string]entity.Evaluation),
	}
}

func (that *memoryMove) CreateOrUpdate(_ context.Context, evaluation *entity.Evaluation) error {
	that.dataMutex.Lock()
	defer that.dataMutex.Unlock()

	that.data[evaluation.Key()] = *evaluation

	return nil
}

func (that *memoryMove) GetByKey(_ context.Context, key string) (*entity.Evaluation, error) {
	that.dataMutex.RLock()
	defer that.dataMutex.RUnlock()

	evaluation, ok := that.data[key]
	if !ok {
		return nil, ErrMoveNotFound
	}

	return &evaluation, nil
}
