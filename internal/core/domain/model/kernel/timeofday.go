package kernel

import (
	"fmt"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrTimeOfDayIsNotConstructed is returned when validating a zero-value TimeOfDay.
// TimeOfDay values must be created via NewTimeOfDay, TimeOfDayFromString, or TimeOfDayOf.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via NewTimeOfDay, TimeOfDayFromString, or TimeOfDayOf")

// TimeOfDay is a local wall-clock time without a date, stored as minutes
// since midnight. It is the vocabulary for peak-hour windows: a window's
// start and end are TimeOfDay values and matching compares the TimeOfDay
// portion of an order timestamp against them.
//
// TimeOfDay is an immutable value object. The zero value is invalid (it is
// indistinguishable from an unset field, not from midnight) and fails
// validation; use a constructor.
//
// Example:
//
//	start, err := kernel.TimeOfDayFromString("11:00")
//	if err != nil {
//	    // handle malformed input
//	}
//	fmt.Println(start) // Output: 11:00
type TimeOfDay struct { //nolint:recvcheck //using for validation
	minutes int
	guard   guard.ConstructorGuard
}

// NewTimeOfDay creates a TimeOfDay from an hour [0..23] and minute [0..59].
func NewTimeOfDay(hour int, minute int) (TimeOfDay, error) {
	t := TimeOfDay{
		guard: guard.NewConstructorGuard(),
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}

	t.minutes = hour*60 + minute
	return t, nil
}

// TimeOfDayFromString parses a strict 24-hour "HH:MM" string.
// Exactly two digits on each side of the colon are required; "9:30" and
// "09:3" are rejected, as are out-of-range hour or minute values.
func TimeOfDayFromString(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
			"time of day",
			fmt.Errorf("%q does not match HH:MM", s),
		)
	}

	for i, c := range s {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
				"time of day",
				fmt.Errorf("%q does not match HH:MM", s),
			)
		}
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayOf extracts the wall-clock portion of a timestamp, in the
// timestamp's own location. Callers are responsible for converting the
// timestamp into the relevant local timezone first.
func TimeOfDayOf(t time.Time) TimeOfDay {
	tod, _ := NewTimeOfDay(t.Hour(), t.Minute())
	return tod
}

// Validate checks that the TimeOfDay was created through a constructor.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

// Hour returns the hour component [0..23].
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

// Minute returns the minute component [0..59].
func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// MinutesFromMidnight returns the total minutes since local midnight.
func (t TimeOfDay) MinutesFromMidnight() int {
	return t.minutes
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// IsEqual compares two times of day for equality.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// String returns the canonical "HH:MM" representation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
