// Package timezone holds the property's wall clock and its calendar-date helpers.
//
// Instants (check-in times, audit start) are rendered in the zone from APP_TIMEZONE.
// Calendar dates (stay dates, business dates, journal dates) are carried as midnight UTC
// so they compare and persist as DATE columns regardless of the server zone:
//
//	today := timezone.Today()
//	nights := timezone.DaysBetween(checkIn, checkOut)
//	label := timezone.FormatDate(today)
package timezone
