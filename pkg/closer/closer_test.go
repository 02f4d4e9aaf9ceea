package closer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCloser_ClosesInReverseOrder(t *testing.T) {
	c := NewCloser(0)

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) Func {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}

	c.Add("redis", record("redis"))
	c.Add("http", record("http"))
	c.Add("grpc", record("grpc"))

	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"grpc", "http", "redis"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("got order %v, want %v", order, want)
	}
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(0)
	c.Add("kafka", func(context.Context) error { return errors.New("broker gone") })
	c.Add("http", func(context.Context) error { return nil })

	err := c.Close(context.Background())
	if err == nil || !strings.Contains(err.Error(), "kafka: broker gone") {
		t.Fatalf("expected kafka error in %v", err)
	}
}

func TestCloser_CloseIsOnce(t *testing.T) {
	c := NewCloser(0)
	calls := 0
	c.Add("once", func(context.Context) error { calls++; return nil })

	_ = c.Close(context.Background())
	_ = c.Close(context.Background())

	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}

func TestCloser_ForcesRemainingOnTimeout(t *testing.T) {
	c := NewCloser(100 * time.Millisecond)

	forced := make(chan struct{}, 1)
	c.Add("first", func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); ok {
			forced <- struct{}{}
		}
		return nil
	})
	c.Add("slow", func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	if err == nil || !strings.Contains(err.Error(), "shutdown interrupted") {
		t.Fatalf("expected interrupted shutdown, got %v", err)
	}

	select {
	case <-forced:
	default:
		t.Fatal("remaining func was not force-closed")
	}
}
