package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries a request id through contexts so provider call
// timings can be correlated with the request that triggered them.
const RequestIDKey ctxKey = "req_id"

// Time logs the duration of one named operation, typically an outbound
// provider call. Defer the returned func with a pointer to the named
// error result:
//
//	defer obs.Time(ctx, "osrm.GetRoute")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
