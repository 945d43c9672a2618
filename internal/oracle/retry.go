package oracle

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass sorts oracle failures into how the engine treats an
// unavailable collaborator: give up now, ask again, or re-ask once for
// output that came back malformed.
type retryClass int

const (
	giveUp retryClass = iota
	askAgain
	reAskOnce
)

// classify maps an oracle error onto the retry taxonomy. Context errors
// and truncation are final: the first is the caller withdrawing the
// request, the second a configuration problem no retry can fix. Rate
// limits, outages, and unclassified faults (mostly network) count as
// transient.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return giveUp
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return reAskOnce
	}
	return askAgain
}

// retryingProvider re-asks the oracle on transient failures, backing off
// exponentially with jitter. Sessions treat oracle content as optional,
// so the decorator never sleeps past the caller's deadline: surfacing
// the failure early lets canned fallback text go out instead.
type retryingProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with the retry policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryingProvider{inner: p, cfg: cfg}
}

func (rp *retryingProvider) ModelID() string { return rp.inner.ModelID() }

func (rp *retryingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	attempts := 0
	reAsked := false

	for attempts < rp.cfg.MaxAttempts {
		resp, err := rp.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		attempts++

		switch classify(err) {
		case giveUp:
			return nil, err
		case reAskOnce:
			if reAsked {
				return nil, err
			}
			reAsked = true
		}

		if attempts == rp.cfg.MaxAttempts {
			break
		}

		wait := rp.wait(attempts-1, err)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < wait {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("oracle unrecovered after %d attempts: %w", attempts, lastErr)
}

// wait computes the pause before the next attempt. A rate-limited reply
// that names its own retry-after wins over the backoff curve.
func (rp *retryingProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	backoff := float64(rp.cfg.InitialWait) * math.Pow(rp.cfg.Multiplier, float64(attempt))
	backoff = math.Min(backoff, float64(rp.cfg.MaxWait))
	// ±20% jitter keeps concurrent sessions from re-asking in lockstep.
	backoff *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(backoff, 0))
}
