// Package jitter считает интервалы повторов со случайной добавкой,
// чтобы повторные публикации заказов разных сессий не приходили к брокеру одновременно.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает d с добавкой в диапазоне [0, d*jitterFactor].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	f := globalRand.Float64()
	randMutex.Unlock()

	return DurationWithRand(d, jitterFactor, f)
}

// DurationWithRand применяет заранее полученное случайное число f из [0, 1).
func DurationWithRand(d time.Duration, jitterFactor float64, f float64) time.Duration {
	return d + time.Duration(f*jitterFactor*float64(d))
}

// ExponentialBackoff удваивает base на каждой попытке (нумерация с нуля), не превышая max,
// и добавляет джиттер.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	return Duration(Backoff(base, max, attempt), jitterFactor)
}

// Backoff — экспоненциальная задержка без джиттера.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			return max
		}
	}

	return backoff
}

// Sleep ждёт d или отмены контекста.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
