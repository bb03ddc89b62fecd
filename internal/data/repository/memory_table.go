package repository

import (
	"sync"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/wire"

	"github.com/google/uuid"
)

// Table is an in-process stand-in for the remote bookings table. It stores wire
// records, newest first, and is owned by whoever constructs it.
type Table struct {
	mu      sync.Mutex
	records []wire.Record
	now     func() time.Time
	newID   func() string
}

type TableOption func(*Table)

// WithClock overrides the createdAt source.
func WithClock(now func() time.Time) TableOption {
	return func(t *Table) { t.now = now }
}

// WithIDGenerator overrides id assignment.
func WithIDGenerator(newID func() string) TableOption {
	return func(t *Table) { t.newID = newID }
}

func NewTable(opts ...TableOption) *Table {
	t := &Table{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Rows returns a copy of the stored records.
func (t *Table) Rows() []wire.Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := make([]wire.Record, len(t.records))
	copy(rows, t.records)
	return rows
}

// Insert assigns id and createdAt and stores the record at the front.
func (t *Table) Insert(r wire.Record) wire.Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	r.ID = t.newID()
	r.CreatedAt = wire.FormatTime(t.now())
	t.records = append([]wire.Record{r}, t.records...)
	return r
}

// Load stores records as given, keeping their ids. Used for seeding.
func (t *Table) Load(records ...wire.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = append(t.records, records...)
}

// SetStatus updates one record's status. The bool is false when no record matches.
func (t *Table) SetStatus(id string, status entity.BookingStatus) (wire.Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.records {
		if t.records[i].ID == id {
			t.records[i].Status = status
			return t.records[i], true
		}
	}
	return wire.Record{}, false
}

// Remove deletes one record. It reports false when no record matches.
func (t *Table) Remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.records {
		if t.records[i].ID == id {
			t.records = append(t.records[:i], t.records[i+1:]...)
			return true
		}
	}
	return false
}
