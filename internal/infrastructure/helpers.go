package infrastructure

import (
	"context"
	"errors"
	"strings"
)

var retryablePhrases = []string{
	"connection refused",
	"i/o timeout",
	"network is unreachable",
	"broker not available",
	"leader not available",
	"connection reset",
	"broken pipe",
	"no such host",
	"channel/connection is not open",
}

// IsRetryable сообщает, имеет ли смысл повторять публикацию после err.
// Отмена контекста повтором не лечится.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	errStr := strings.ToLower(err.Error())
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}

	return false
}
