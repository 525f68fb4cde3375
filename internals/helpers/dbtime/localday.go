// file: internals/helpers/dbtime/localday.go
package dbtime

import "time"

// LocalDay maps an instant to the calendar date in loc, normalized to
// midnight UTC so it compares cleanly against a Postgres DATE column.
// The deployment timezone (America/Lima by default) decides the operative
// day, not the instant's UTC date.
func LocalDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
}

// LocalTimeOfDay extracts the wall-clock time of an instant in loc.
func LocalTimeOfDay(t time.Time, loc *time.Location) Tod {
	return From(t.In(loc))
}
