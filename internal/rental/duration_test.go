package rental

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day1(hour, minute int) time.Time {
	return time.Date(2025, time.March, 1, hour, minute, 0, 0, time.UTC)
}

func TestBillableDays_InvertedOrEmptyWindowIsZero(t *testing.T) {
	pickup := day1(10, 0)

	cases := map[string]struct {
		pickup, drop time.Time
	}{
		"drop before pickup": {pickup, pickup.Add(-time.Hour)},
		"drop equals pickup": {pickup, pickup},
		"missing pickup":     {time.Time{}, pickup},
		"missing drop":       {pickup, time.Time{}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			q := NewQuote(tc.pickup, tc.drop, 89)
			assert.Equal(t, 0, q.BillableDays)
			assert.Equal(t, 0.0, q.TotalPrice)
			assert.Equal(t, "0 minutes", q.Duration)
		})
	}
}

func TestBillableDays_RoundsPartialDaysUp(t *testing.T) {
	pickup := day1(0, 0)

	assert.Equal(t, 2, BillableDays(pickup, pickup.Add(25*time.Hour)))
	assert.Equal(t, 1, BillableDays(pickup, pickup.Add(time.Minute)))
	assert.Equal(t, 1, BillableDays(pickup, pickup.Add(24*time.Hour)))
}

func TestBillableDays_ExactMultipleIsNotOverBilled(t *testing.T) {
	pickup := day1(0, 0)

	assert.Equal(t, 2, BillableDays(pickup, pickup.Add(48*time.Hour)))
	assert.Equal(t, 3, BillableDays(pickup, pickup.Add(48*time.Hour+time.Millisecond)))
}

func TestNewQuote_PriceIsDaysTimesRate(t *testing.T) {
	pickup := day1(0, 0)

	q := NewQuote(pickup, pickup.Add(25*time.Hour), 89)

	assert.Equal(t, 2, q.BillableDays)
	assert.Equal(t, 178.0, q.TotalPrice)
	assert.Equal(t, 89.0, q.PricePerDay)
	assert.Equal(t, 25*time.Hour, q.Elapsed)
}

func TestFormatDuration(t *testing.T) {
	pickup := day1(0, 0)

	assert.Equal(t, "0 minutes", FormatDuration(pickup, pickup))
	assert.Equal(t, "0 minutes", FormatDuration(pickup, pickup.Add(30*time.Second)))
	assert.Equal(t, "2 days, 2 hours, 15 minutes", FormatDuration(pickup, pickup.Add(50*time.Hour+15*time.Minute)))
	assert.Equal(t, "1 day, 1 hour, 1 minute", FormatDuration(pickup, pickup.Add(25*time.Hour+time.Minute)))
	assert.Equal(t, "3 days", FormatDuration(pickup, pickup.Add(72*time.Hour)))
	assert.Equal(t, "5 hours, 30 minutes", FormatDuration(pickup, pickup.Add(5*time.Hour+30*time.Minute)))
}

func TestValidateWindow(t *testing.T) {
	now := day1(9, 12)

	require.NoError(t, ValidateWindow(day1(9, 30), day1(18, 0), now))
	require.NoError(t, ValidateWindow(day1(9, 12), day1(18, 0), now.Add(20*time.Second)))

	assert.ErrorIs(t, ValidateWindow(time.Time{}, day1(18, 0), now), ErrMissingPickup)
	assert.ErrorIs(t, ValidateWindow(day1(10, 0), time.Time{}, now), ErrMissingDrop)
	assert.ErrorIs(t, ValidateWindow(day1(8, 0), day1(18, 0), now), ErrPickupInPast)
	assert.ErrorIs(t, ValidateWindow(day1(18, 0), day1(18, 0), now), ErrDropBeforePickup)
	assert.ErrorIs(t, ValidateWindow(day1(18, 0), day1(10, 0), now), ErrDropBeforePickup)
}

func TestValidateWindow_MaxWindow(t *testing.T) {
	now := day1(9, 0)
	pickup := day1(10, 0)

	require.NoError(t, ValidateWindow(pickup, pickup.Add(MaxWindow), now))
	assert.ErrorIs(t, ValidateWindow(pickup, pickup.Add(MaxWindow+time.Minute), now), ErrWindowTooLong)
	assert.ErrorIs(t, ValidateWindow(pickup, time.Date(2400, time.January, 1, 10, 0, 0, 0, time.UTC), now), ErrWindowTooLong)
}

func TestBillableDays_Boundaries(t *testing.T) {
	pickup := day1(0, 0)
	farFuture := time.Date(2400, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		drop time.Time
		want int
	}{
		{name: "one millisecond", drop: pickup.Add(time.Millisecond), want: 1},
		{name: "sub-millisecond over a day is truncated", drop: pickup.Add(Day + time.Microsecond), want: 1},
		{name: "one millisecond over a day", drop: pickup.Add(Day + time.Millisecond), want: 2},
		{name: "max window", drop: pickup.Add(MaxWindow), want: 365},
		{name: "max window plus a minute", drop: pickup.Add(MaxWindow + time.Minute), want: 366},
		{name: "saturated elapsed time", drop: farFuture, want: int(time.Duration(math.MaxInt64).Truncate(time.Millisecond)/Day) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BillableDays(pickup, tt.drop)
			assert.Equal(t, tt.want, got)
			assert.Positive(t, got)
			assert.Equal(t, float64(got)*89, NewQuote(pickup, tt.drop, 89).TotalPrice)
		})
	}
}

func TestElapsed_Saturates(t *testing.T) {
	pickup := day1(0, 0)
	farFuture := time.Date(2400, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Duration(math.MaxInt64).Truncate(time.Millisecond), Elapsed(pickup, farFuture))
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	require.Len(t, slots, 48)
	assert.Equal(t, TimeSlot{Value: "00:00", Display: "12:00 AM"}, slots[0])
	assert.Equal(t, TimeSlot{Value: "09:30", Display: "9:30 AM"}, slots[19])
	assert.Equal(t, TimeSlot{Value: "23:30", Display: "11:30 PM"}, slots[47])
}
