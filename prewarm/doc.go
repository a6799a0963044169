// Package prewarm drives lazy initialization of the search service in the
// background so the first request does not pay for model loading and
// catalog embedding.
//
// A Warmer owns a single-worker pool. Each submitted job calls the
// target's Warm method through RetryWithBackoff and reports the final
// outcome on a channel:
//
//	w, err := prewarm.New(svc, prewarm.WithMaxAttempts(5))
//	if err != nil {
//		return err
//	}
//	defer w.Release()
//	done := w.Submit(ctx)
//
// Requests that arrive while a warm-up is running still trigger lazy
// initialization themselves; the warm-up only front-loads the work.
package prewarm
