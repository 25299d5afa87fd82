// Package telephony reads the device call log and SMS inbox from the
// platform's SQLite provider database.
//
// The tables follow the platform content-provider columns: calls(number,
// type, date, duration) and sms(address, body, date, type), with dates in
// Unix milliseconds and durations in seconds. The database belongs to the
// OS; this package only reads it, except for EnsureSchema, which applies
// the embedded migrations, and the Insert helpers used to seed a development
// database.
package telephony
