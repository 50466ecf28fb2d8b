// Package timezone pins every timestamp the service produces to the zone set in
// APP_TIMEZONE (an IANA name, UTC when unset or invalid). The location is
// resolved once when the package is imported.
//
//	now := timezone.Now()
//	s := timezone.Format(booking.CreatedAt, constant.DateFormat)
package timezone
