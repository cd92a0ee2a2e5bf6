package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the duration and outcome of an operation. Use as:
//
//	defer obs.Time(ctx, "nominatim.Geocode")(&err)
//
// The context is accepted so call sites survive a later move to
// request-scoped logging.
func Time(_ context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
