// Package ratelimiter implements an in-memory token bucket per key.
//
// Each key starts with Capacity tokens and regains RefillRate tokens every
// RefillInterval, never exceeding Capacity. AllowN takes n tokens at once,
// which lets callers charge a request by the amount of work it asks for:
//
//	lim, err := ratelimiter.New(ratelimiter.Config{Capacity: 100, RefillRate: 10, RefillInterval: time.Second})
//	if err != nil {
//		return err
//	}
//	defer lim.Close()
//
//	res, err := lim.AllowN(ctx, clientIP, count)
//	if err != nil {
//		return err
//	}
//	res.SetHeaders(w)
//	if !res.Allowed() {
//		// 429
//	}
//
// A denied request takes nothing from the bucket.
package ratelimiter
