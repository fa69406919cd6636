// Package request projects a validated option set onto the exact form
// fields the Pushover message API accepts. It performs no validation.
package request

import (
	"net/url"
	"strconv"

	"github.com/ariel-frischer/pushcli/internal/options"
)

// Build maps opts to the wire field set. The token, user, message,
// priority, sound, and retry fields are always present; retry is
// transmitted as 0 when it was never requested and the priority is below
// emergency. Expire and ttl are omitted entirely when unset, and title
// and device when empty. The retry-vs-expire asymmetry is the documented
// wire contract, not an oversight.
func Build(opts *options.NormalizedOptions) url.Values {
	fields := url.Values{}
	fields.Set("token", opts.Token)
	fields.Set("user", opts.User)
	fields.Set("message", opts.Message)
	fields.Set("priority", strconv.Itoa(opts.Priority))
	fields.Set("sound", opts.Sound)

	retry := 0
	if opts.RetrySet {
		retry = opts.Retry
	}
	fields.Set("retry", strconv.Itoa(retry))

	if opts.ExpireSet {
		fields.Set("expire", strconv.Itoa(opts.Expire))
	}
	if opts.TTLSet {
		fields.Set("ttl", strconv.Itoa(opts.TTL))
	}
	if opts.Title != "" {
		fields.Set("title", opts.Title)
	}
	if opts.Device != "" {
		fields.Set("device", opts.Device)
	}
	return fields
}
