// Package ratelimit paces requests against the site.
//
// The crawler fetches one answers page at a time and pauses between pages:
//
//	limiter := ratelimit.NewFixedDelay(3100 * time.Millisecond)
//
//	for {
//	    // fetch and process a page
//	    if err := limiter.Wait(ctx); err != nil {
//	        return err // canceled
//	    }
//	}
package ratelimit
