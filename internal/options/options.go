// pushcli - Pushover notifications from the command line
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/pushcli

// Package options defines the notification parameters accepted on the
// command line and the validation that turns them into a normalized,
// transmittable set. Validation runs every check and reports every
// problem in one pass rather than stopping at the first.
package options

import (
	"fmt"
	"regexp"
)

// Parameter bounds enforced by the Pushover message API.
const (
	// DefaultSound is the alert tone used when --sound is not supplied.
	DefaultSound = "pushover"

	// PriorityMin and PriorityMax bound the --priority value.
	PriorityMin = -2
	PriorityMax = 2

	// PriorityEmergency is the priority level that requires
	// acknowledgment-retry behavior (retry + expire).
	PriorityEmergency = 2

	// RetryMin is the smallest accepted --retry interval in seconds.
	RetryMin = 30

	// ExpireMax is the largest accepted --expire window in seconds.
	ExpireMax = 10800
)

// RawOptions holds flag values exactly as parsed, before any validation
// or defaulting. The *Set fields record whether the corresponding flag
// was supplied, so absence is distinguishable from a zero value.
type RawOptions struct {
	User    string
	Token   string
	Message string
	Sound   string
	Title   string
	Device  string

	Priority    int
	PrioritySet bool
	Retry       int
	RetrySet    bool
	Expire      int
	ExpireSet   bool
	TTL         int
	TTLSet      bool

	Quiet bool
}

// NormalizedOptions is the validated, defaulted parameter set ready for
// transmission. Retry, Expire, and TTL carry a Set flag because the wire
// format distinguishes "never requested" from an explicit value.
type NormalizedOptions struct {
	User    string
	Token   string
	Message string
	Sound   string
	Title   string
	Device  string

	Priority  int
	Retry     int
	RetrySet  bool
	Expire    int
	ExpireSet bool
	TTL       int
	TTLSet    bool

	Quiet bool
}

// ValidationError describes one rejected parameter. Flag is the flag
// name without dashes, for callers that want to group by field.
type ValidationError struct {
	Flag    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// deviceNamePattern matches Pushover's device name rule: up to 25
// letters, digits, underscores, or dashes.
var deviceNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,25}$`)

// Validate checks raw against every parameter constraint and returns the
// normalized options, any non-fatal warnings, and the full list of
// validation errors. The checks are ordered but never short-circuit, so
// a single run reports every problem at once. When the error list is
// non-empty the normalized options are nil and must not be used.
//
// Emergency priority (2) forces retry and expire to their boundary
// values when the caller omitted them. The defaulting fires on absence
// only: an explicitly supplied out-of-bounds value keeps its bounds
// error instead of being silently replaced.
func Validate(raw RawOptions) (*NormalizedOptions, []string, []ValidationError) {
	var (
		errs     []ValidationError
		warnings []string
	)

	norm := NormalizedOptions{
		User:      raw.User,
		Token:     raw.Token,
		Message:   raw.Message,
		Sound:     raw.Sound,
		Title:     raw.Title,
		Device:    raw.Device,
		Priority:  raw.Priority,
		Retry:     raw.Retry,
		RetrySet:  raw.RetrySet,
		Expire:    raw.Expire,
		ExpireSet: raw.ExpireSet,
		TTL:       raw.TTL,
		TTLSet:    raw.TTLSet,
		Quiet:     raw.Quiet,
	}

	required := []struct {
		flag  string
		value string
	}{
		{"user", raw.User},
		{"token", raw.Token},
		{"msg", raw.Message},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, ValidationError{
				Flag:    r.flag,
				Message: fmt.Sprintf("Missing required parameter --%s", r.flag),
			})
		}
	}

	if !raw.PrioritySet {
		norm.Priority = 0
	} else if raw.Priority < PriorityMin || raw.Priority > PriorityMax {
		errs = append(errs, ValidationError{
			Flag: "priority",
			Message: fmt.Sprintf("Invalid --priority %d: must be between %d and %d",
				raw.Priority, PriorityMin, PriorityMax),
		})
	}

	if raw.RetrySet && raw.Retry < RetryMin {
		errs = append(errs, ValidationError{
			Flag: "retry",
			Message: fmt.Sprintf("Invalid --retry %d: must be at least %d seconds",
				raw.Retry, RetryMin),
		})
	}

	if raw.ExpireSet && raw.Expire > ExpireMax {
		errs = append(errs, ValidationError{
			Flag: "expire",
			Message: fmt.Sprintf("Invalid --expire %d: must be at most %d seconds",
				raw.Expire, ExpireMax),
		})
	}

	if raw.Device != "" && !deviceNamePattern.MatchString(raw.Device) {
		errs = append(errs, ValidationError{
			Flag: "device",
			Message: fmt.Sprintf("Invalid --device %q: up to 25 letters, digits, underscores, or dashes",
				raw.Device),
		})
	}

	// Emergency priority requires retry and expire. Filling them in does
	// not invalidate the input, so it happens even when other errors
	// were already collected.
	if norm.Priority == PriorityEmergency {
		if !raw.ExpireSet {
			norm.Expire = ExpireMax
			norm.ExpireSet = true
		}
		if !raw.RetrySet {
			norm.Retry = RetryMin
			norm.RetrySet = true
		}
		if raw.TTLSet {
			warnings = append(warnings,
				fmt.Sprintf("--ttl is ignored when --priority=%d", PriorityEmergency))
		}
	}

	if norm.Sound == "" {
		norm.Sound = DefaultSound
	}

	if len(errs) > 0 {
		return nil, warnings, errs
	}
	return &norm, warnings, nil
}
