// Package timezone pins wall-clock operations to the application timezone
// configured through APP_TIMEZONE (IANA names such as "UTC" or "Europe/Lisbon").
//
// Calendar dates used by bookings are not zoned: Today returns the local
// calendar day expressed as UTC midnight so it compares directly with
// dates parsed by package daterange.
package timezone
