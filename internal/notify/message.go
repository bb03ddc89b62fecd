package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/rental"
)

const displayLayout = "Mon, Jan 2 2006 3:04 PM"

func subject(b entity.Booking) string {
	return fmt.Sprintf("Your %s booking is %s", b.CarName, b.Status)
}

func plainText(b entity.Booking, loc *time.Location) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.CustomerName)
	fmt.Fprintf(&sb, "Your booking of the %s (%s) is %s.\n\n", b.CarName, b.CarType, b.Status)
	fmt.Fprintf(&sb, "Pickup: %s\n", b.PickupDate.In(loc).Format(displayLayout))
	fmt.Fprintf(&sb, "Drop-off: %s\n", b.DropDate.In(loc).Format(displayLayout))
	fmt.Fprintf(&sb, "Total: $%.2f for %s\n\n", b.TotalPrice, rental.Plural(b.TotalDays, "day"))
	fmt.Fprintf(&sb, "Booking reference: %s\n", b.ID)
	return sb.String()
}

func htmlText(b entity.Booking, loc *time.Location) string {
	lines := strings.Split(strings.TrimSpace(plainText(b, loc)), "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(line)
	}
	return "<p>" + strings.Join(lines, "<br>") + "</p>"
}

func shortText(b entity.Booking, loc *time.Location) string {
	return fmt.Sprintf("%s booking %s: pickup %s, drop-off %s, total $%.2f. Ref %s",
		b.CarName,
		b.Status,
		b.PickupDate.In(loc).Format(displayLayout),
		b.DropDate.In(loc).Format(displayLayout),
		b.TotalPrice,
		b.ID,
	)
}
