// Package store keeps the process-local copy of the bookings table together with
// the loading and error state shown to clients.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"

	"go.uber.org/zap"
)

const (
	MsgFetchFailed  = "Failed to fetch bookings"
	MsgCreateFailed = "Failed to create booking"
	MsgUpdateFailed = "Failed to update booking"
	MsgDeleteFailed = "Failed to delete booking"
	MsgNotFound     = "Booking not found"
)

var ErrInvalidStatus = errors.New("invalid booking status")

// State is the store's status line.
type State struct {
	Loading      bool
	Error        string
	Count        int
	LastSyncedAt time.Time
}

// Store mirrors the remote bookings table. Remote calls run without the lock
// held; their results are applied under it, so the last completed call wins.
type Store struct {
	mu       sync.RWMutex
	remote   repository.BookingRepository
	bookings []entity.Booking
	inflight int
	synced   bool
	errMsg   string
	syncedAt time.Time
	now      func() time.Time
	log      *zap.Logger
}

func New(remote repository.BookingRepository, log *zap.Logger) *Store {
	return &Store{
		remote: remote,
		now:    time.Now,
		log:    log.With(zap.String("store", "booking")),
	}
}

// Refresh replaces local state with the remote list. On failure the previous
// list is kept and the error message is set.
func (s *Store) Refresh(ctx context.Context) error {
	return s.refresh(ctx, true)
}

// Resync is Refresh for background callers. It only clears an earlier fetch
// failure, so errors from create, update or delete stay until dismissed.
func (s *Store) Resync(ctx context.Context) error {
	return s.refresh(ctx, false)
}

func (s *Store) refresh(ctx context.Context, clearAll bool) error {
	s.mu.Lock()
	s.inflight++
	if clearAll || s.errMsg == MsgFetchFailed {
		s.errMsg = ""
	}
	s.mu.Unlock()

	bookings, err := s.remote.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if err != nil {
		s.errMsg = MsgFetchFailed
		s.log.Error("Failed to refresh bookings", zap.Error(err))
		return fmt.Errorf("refresh bookings: %w", err)
	}

	s.bookings = bookings
	s.synced = true
	s.syncedAt = s.now()
	s.log.Debug("Bookings refreshed", zap.Int("count", len(bookings)))
	return nil
}

// Create sends a candidate to the remote table and prepends the canonical
// record it returns. A refresh that already picked the record up is not
// duplicated; the entry is replaced in place.
func (s *Store) Create(ctx context.Context, candidate entity.Booking) (entity.Booking, error) {
	s.clearError()

	created, err := s.remote.Create(ctx, &candidate)
	if err != nil {
		s.setError(MsgCreateFailed)
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("car_id", candidate.CarID),
		)
		return entity.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	s.mu.Lock()
	if i := s.indexOf(created.ID); i >= 0 {
		s.bookings[i] = *created
	} else {
		s.bookings = append([]entity.Booking{*created}, s.bookings...)
	}
	s.mu.Unlock()

	return *created, nil
}

// UpdateStatus changes one booking's status remotely, then replaces the local
// record in place.
func (s *Store) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (entity.Booking, error) {
	if !status.Valid() {
		return entity.Booking{}, fmt.Errorf("update booking %s: %w %q", id, ErrInvalidStatus, status)
	}
	s.clearError()

	updated, err := s.remote.UpdateStatus(ctx, id, status)
	if err != nil {
		s.recordFailure(err, MsgUpdateFailed, "update booking status", id)
		return entity.Booking{}, fmt.Errorf("update booking %s status: %w", id, err)
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.bookings[i] = *updated
	}
	s.mu.Unlock()

	return *updated, nil
}

// Delete removes one booking remotely, then locally.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.clearError()

	if err := s.remote.Delete(ctx, id); err != nil {
		s.recordFailure(err, MsgDeleteFailed, "delete booking", id)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
	}
	s.mu.Unlock()

	return nil
}

// Bookings returns a copy of the local list, newest first.
func (s *Store) Bookings() []entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.Booking, len(s.bookings))
	copy(result, s.bookings)
	return result
}

// Find looks a booking up in the local list.
func (s *Store) Find(id string) (entity.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Booking{}, false
}

// State reports loading until the first successful refresh, and while one runs.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Loading:      s.inflight > 0 || (!s.synced && s.errMsg == ""),
		Error:        s.errMsg,
		Count:        len(s.bookings),
		LastSyncedAt: s.syncedAt,
	}
}

// DismissError clears the error message without retrying anything.
func (s *Store) DismissError() {
	s.clearError()
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) recordFailure(err error, msg, operation, id string) {
	if errors.Is(err, repository.ErrBookingNotFound) {
		s.setError(MsgNotFound)
		s.log.Warn(operation+" failed - not found", zap.String("booking_id", id))
		return
	}
	s.setError(msg)
	s.log.Error("Failed to "+operation, zap.Error(err), zap.String("booking_id", id))
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

func (s *Store) clearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}
