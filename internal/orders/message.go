package orders

import (
	"strings"
	"time"
)

const (
	// CountryDialCode is prepended to the phone number exactly as entered.
	CountryDialCode = "+855"

	// NotesFallback is shown when the customer left no notes.
	NotesFallback = "None"

	// TimestampLayout renders times the way an en-US locale string does.
	TimestampLayout = "1/2/2006, 3:04:05 PM"

	messageTitle = "🛒 NEW ORDER - PR SPORT 🛒"
)

// FormatMessage builds the chat notification for a submission. at is the
// time the order was handled, already in the desired location.
func FormatMessage(o OrderSubmission, at time.Time) string {
	notes := NotesFallback
	if o.Notes.Truthy() {
		notes = o.Notes.String()
	}

	lines := []string{
		messageTitle,
		"",
		"Product: " + o.Product.String(),
		"Size: " + o.Size.String(),
		"Price: $" + o.Price.String(),
		"Quantity: " + o.Quantity.String(),
		"",
		"Customer Details:",
		"Name: " + o.Name.String(),
		"Phone: " + CountryDialCode + o.Phone.String(),
		"Address: " + o.Address.String(),
		"",
		"Notes: " + notes,
		"",
		"Time: " + at.Format(TimestampLayout),
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
