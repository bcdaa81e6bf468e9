package domain

import "time"

// Service is immutable reference data describing a bookable service.
// A multi-service booking sums durations and prices.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// Shop represents a service point. Shops may authenticate directly with
// their own credentials (the shop role).
type Shop struct {
	ID         int64
	Name       string
	Address    *string
	Directions *string
	ManagerID  int64
}

// Employee performs services at one or more shops.
type Employee struct {
	ID    int64
	Name  string
	Phone *string
}

// Manager administers shops and may create bookings on behalf of customers.
type Manager struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Phone        *string
}

// CustomerStatusActive is the status assigned to newly created customers.
const CustomerStatusActive = "active"

// Customer is identified by phone number; created lazily when a booking
// link is issued for an unknown phone.
type Customer struct {
	ID     int64
	Phone  string
	Name   *string
	Status string
}

// BookingLink is a time-limited, single-use token granting access to the
// booking flow for a specific shop and customer.
type BookingLink struct {
	ID         int64
	Token      string
	Phone      string
	CustomerID int64
	ShopID     int64
	CreatedAt  time.Time
	Used       bool
}

// IsExpired reports whether the link is older than ttl at the given instant.
func (l *BookingLink) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(l.CreatedAt) > ttl
}

// IsUsable reports whether the link can still open the booking flow.
func (l *BookingLink) IsUsable(now time.Time, ttl time.Duration) bool {
	return !l.Used && !l.IsExpired(now, ttl)
}
