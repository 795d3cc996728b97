package domain

import "time"

// Default scheduling policy values, overridable via the [scheduler] config
// section.
const (
	DefaultMinLeadTimeHours = 2
	DefaultMinDurationHours = 1
	DefaultMaxDurationHours = 168 // one week

	DefaultAlternativeStepDays    = 1
	DefaultAlternativeHorizonDays = 14
	DefaultMaxAlternatives        = 3

	DefaultHoldTTLMinutes = 15
)

// Business validation bounds for policy configuration.
const (
	MinLeadTimeHoursLimit = 0
	MaxLeadTimeHoursLimit = 720  // 30 days
	MaxDurationHoursLimit = 8760 // one year
	MaxAlternativesLimit  = 10
	MaxHorizonDaysLimit   = 90

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// LocationIST is the canonical timezone for human-facing formatting.
// Interval math is always done on UTC instants.
var LocationIST = time.FixedZone("IST", 5*3600+30*60)
