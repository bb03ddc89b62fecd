package response

import (
	"time"

	"car-rental/internal/data/wire"
	"car-rental/internal/rental"
)

const dateLayout = "2006-01-02"

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type CalendarBookingResponse struct {
	Booking        BookingResponse `json:"booking"`
	Classification string          `json:"classification"`
	ColorGroup     string          `json:"colorGroup"`
}

type CalendarDayResponse struct {
	Date         string                    `json:"date"`
	Day          int                       `json:"day"`
	CurrentMonth bool                      `json:"currentMonth"`
	Today        bool                      `json:"today"`
	Bookings     []CalendarBookingResponse `json:"bookings"`
}

type CalendarResponse struct {
	Title    string                `json:"title"`
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	Weekdays []string              `json:"weekdays"`
	Previous MonthRef              `json:"previous"`
	Next     MonthRef              `json:"next"`
	Days     []CalendarDayResponse `json:"days"`
}

type TimeSlotResponse struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CalendarToResponse renders a month grid. today marks the matching cell.
func CalendarToResponse(year int, month time.Month, days []rental.CalendarDay, today time.Time) CalendarResponse {
	prevYear, prevMonth := rental.ShiftMonth(year, month, -1)
	nextYear, nextMonth := rental.ShiftMonth(year, month, 1)
	todayKey := today.Format(dateLayout)

	cells := make([]CalendarDayResponse, 0, len(days))
	for _, d := range days {
		date := d.Date.Format(dateLayout)
		bookings := make([]CalendarBookingResponse, 0, len(d.Bookings))
		for _, b := range d.Bookings {
			bookings = append(bookings, CalendarBookingResponse{
				Booking:        wire.ToRecord(b.Booking),
				Classification: string(b.Classification),
				ColorGroup:     string(b.ColorGroup),
			})
		}

		cells = append(cells, CalendarDayResponse{
			Date:         date,
			Day:          d.Date.Day(),
			CurrentMonth: d.CurrentMonth,
			Today:        date == todayKey,
			Bookings:     bookings,
		})
	}

	return CalendarResponse{
		Title:    time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006"),
		Year:     year,
		Month:    int(month),
		Weekdays: weekdays,
		Previous: MonthRef{Year: prevYear, Month: int(prevMonth)},
		Next:     MonthRef{Year: nextYear, Month: int(nextMonth)},
		Days:     cells,
	}
}

func TimeSlotsToResponse(slots []rental.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, TimeSlotResponse{Value: s.Value, Display: s.Display})
	}
	return result
}
