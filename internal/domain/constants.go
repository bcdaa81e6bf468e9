package domain

// Default booking configuration values. Business hours and the slot step are
// configuration; these are the values used when the config omits them.
const (
	DefaultBusinessDayStart = "08:00"
	DefaultBusinessDayEnd   = "23:55"
	DefaultSlotStepMinutes  = 10

	DefaultBookingLinkTTLMinutes = 60
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // slot and appointment timestamps
)
