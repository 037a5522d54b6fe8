// Package session manages the boards of the fengshui web front end.
//
// Each browser tab that opens the page gets its own [Board]: a layout plus
// the drag session moving items on it. Boards are keyed by a random uuid and
// expire after a period of inactivity.
//
// # Architecture
//
// HTTP handlers run on many goroutines while the drag core is strictly
// single-threaded, so a Board serializes every access through [Board.Do].
// The Store interface supports:
//   - Get/Set/Delete operations
//   - Sliding expiration, refreshed on each access
//   - Cleanup of expired boards
//
// Boards are held in memory only and disappear with the process;
// arrangements are never persisted.
//
// # Usage
//
//	store := session.NewMemoryStore()
//	b := session.NewBoard(l, session.DefaultTTL)
//	store.Set(ctx, b)
//
//	b, err := store.Get(ctx, id)
//	if err != nil {
//	    return err // SESSION_EXPIRED for a board past its TTL
//	}
//	if b == nil {
//	    // Board not found
//	}
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/interaction"
	"github.com/matzehuels/fengshui/pkg/layout"
)

// DefaultTTL is the default inactivity timeout of a board.
const DefaultTTL = time.Hour

// Board is one user's canvas: a layout and its drag session.
type Board struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	drag      *interaction.Session
	ttl       time.Duration
	expiresAt time.Time
}

// NewBoard wraps l in a board with a fresh uuid.
func NewBoard(l *layout.Layout, ttl time.Duration) *Board {
	now := time.Now()
	return &Board{
		ID:        uuid.NewString(),
		CreatedAt: now,
		drag:      interaction.New(l),
		ttl:       ttl,
		expiresAt: now.Add(ttl),
	}
}

// Do runs fn with exclusive access to the board's drag session and refreshes
// the board's expiry.
func (b *Board) Do(fn func(s *interaction.Session)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expiresAt = time.Now().Add(b.ttl)
	fn(b.drag)
}

// IsExpired returns true if the board has been idle past its TTL.
func (b *Board) IsExpired() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return time.Now().After(b.expiresAt)
}

// State is a point-in-time copy of a board, as sent to the browser.
type State struct {
	ID           string           `json:"id"`
	Width        float64          `json:"width"`
	Height       float64          `json:"height"`
	Items        []furniture.Item `json:"items"`
	Score        float64          `json:"score"`
	Dragging     bool             `json:"dragging"`
	ActiveItemID string           `json:"activeItemId,omitempty"`
	ExpiresAt    time.Time        `json:"expiresAt"`
}

// Snapshot copies the board's current state.
func (b *Board) Snapshot() State {
	var st State
	b.Do(func(s *interaction.Session) {
		st = b.state(s)
	})
	return st
}

// Update runs fn like [Board.Do] and returns the state right after it.
func (b *Board) Update(fn func(s *interaction.Session)) State {
	var st State
	b.Do(func(s *interaction.Session) {
		fn(s)
		st = b.state(s)
	})
	return st
}

// state copies the board; b.mu must be held.
func (b *Board) state(s *interaction.Session) State {
	l := s.Layout()
	bounds := l.Bounds()
	return State{
		ID:           b.ID,
		Width:        bounds.Width,
		Height:       bounds.Height,
		Items:        l.Items(),
		Score:        l.Score(),
		Dragging:     s.Dragging(),
		ActiveItemID: s.ActiveID(),
		ExpiresAt:    b.expiresAt,
	}
}

// Store is the interface for board storage backends.
type Store interface {
	// Get retrieves a board by ID.
	// Returns nil, nil if the board doesn't exist and a SESSION_EXPIRED
	// error if it has expired.
	Get(ctx context.Context, id string) (*Board, error)

	// Set stores a board.
	Set(ctx context.Context, b *Board) error

	// Delete removes a board.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired boards.
	Cleanup(ctx context.Context) error
}
