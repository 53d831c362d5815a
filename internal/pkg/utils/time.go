package utils

import (
	"fisiosalud-service/internal/pkg/constvars"
	"time"
)

// AgeAt returns full years elapsed between birth and ref, never negative.
func AgeAt(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// FormatRIPSDate renders a date the way the RIPS layout expects (YYYY-MM-DD).
func FormatRIPSDate(t time.Time) string {
	return t.Format(constvars.RIPSDateLayout)
}

// FormatRIPSDateTime renders a service timestamp truncated to the minute.
func FormatRIPSDateTime(t time.Time) string {
	return t.Format(constvars.RIPSDateTimeLayout)
}

func ParseRIPSDateTime(s string) (time.Time, error) {
	return time.Parse(constvars.RIPSDateTimeLayout, s)
}
