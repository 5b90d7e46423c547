// model/clock.go
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a minute of the day in [0, 1440), written as "HH:MM".
type ClockTime int

const minutesPerDay = 24 * 60

// ParseClockTime parses "HH:MM" with 0<=HH<24 and 0<=MM<60. Single digit
// components such as "9:5" are accepted and normalized.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q is not in HH:MM format", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%q has a non-numeric hour", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%q has a non-numeric minute", s)
	}
	if hh < 0 || hh >= 24 || mm < 0 || mm >= 60 {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return ClockTime(hh*60 + mm), nil
}

// MustClockTime is ParseClockTime for literals.
func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SinceMidnight returns the time of day of t in t's own location, down to
// the nanosecond.
func SinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// Offset is the duration from midnight to c.
func (c ClockTime) Offset() time.Duration {
	return time.Duration(c) * time.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) Valid() bool {
	return c >= 0 && c < minutesPerDay
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
