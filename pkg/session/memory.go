package session

import (
	"context"
	"sync"

	"github.com/matzehuels/fengshui/pkg/errors"
)

// MemoryStore is an in-process board store.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string]*Board
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[string]*Board)}
}

// Get returns the board with id, nil if there is none, or a SESSION_EXPIRED
// error for a board that outlived its TTL. Expired boards are evicted, so a
// second Get finds nothing.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Board, error) {
	s.mu.RLock()
	b, ok := s.boards[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if b.IsExpired() {
		s.mu.Lock()
		if s.boards[id] == b {
			delete(s.boards, id)
		}
		s.mu.Unlock()
		return nil, errors.New(errors.ErrCodeSessionExpired, "board %q expired", id)
	}
	return b, nil
}

func (s *MemoryStore) Set(ctx context.Context, b *Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[b.ID] = b
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, id)
	return nil
}

func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, b := range s.boards {
		if err := ctx.Err(); err != nil {
			return err
		}
		if b.IsExpired() {
			delete(s.boards, id)
		}
	}
	return nil
}

// Len returns the number of boards held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boards)
}

var _ Store = (*MemoryStore)(nil)
