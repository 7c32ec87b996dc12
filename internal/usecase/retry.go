package usecase

import (
	"context"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 1 * time.Second
)

// Retry executa op até maxAttempts vezes. Entre tentativas espera
// delay × número da tentativa (1x, 2x, ...), sem jitter. Qualquer erro é
// tratado como transitório; depois da última tentativa o último erro é
// devolvido. Sucesso em qualquer tentativa encerra na hora.
func Retry[T any](ctx context.Context, maxAttempts int, delay time.Duration, op func(context.Context) (T, error)) (T, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	var zero T
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		select {
		case <-time.After(delay * time.Duration(attempt)):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
