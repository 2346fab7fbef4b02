package util

import (
	"context"
	"errors"
	"testing"
)

func TestRetryErrWithContext(t *testing.T) {
	t.Parallel()

	t.Run("succeeds_first_try", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := RetryErrWithContext(context.Background(), 3, 0, func(context.Context) error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Fatalf("got %d calls, want 1", calls)
		}
	})

	t.Run("retries_until_success", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := RetryErrWithContext(context.Background(), 3, 0, func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Fatalf("got %d calls, want 3", calls)
		}
	})

	t.Run("returns_last_error_when_exhausted", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("still broken")
		calls := 0
		err := RetryErrWithContext(context.Background(), 2, 0, func(context.Context) error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("got %v, want %v", err, wantErr)
		}
		if calls != 2 {
			t.Fatalf("got %d calls, want 2", calls)
		}
	})

	t.Run("zero_max_tries_defaults_to_one", func(t *testing.T) {
		t.Parallel()
		calls := 0
		_ = RetryErrWithContext(context.Background(), 0, 0, func(context.Context) error {
			calls++
			return errors.New("nope")
		})
		if calls != 1 {
			t.Fatalf("got %d calls, want 1", calls)
		}
	})

	t.Run("stops_on_canceled_context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		err := RetryErrWithContext(ctx, 5, 0, func(context.Context) error {
			calls++
			return errors.New("transient")
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v, want context.Canceled", err)
		}
		if calls != 0 {
			t.Fatalf("got %d calls, want 0", calls)
		}
	})
}

func TestRetryWithContext(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := RetryWithContext(context.Background(), 3, 0, func(context.Context) (int, error) {
		calls++
		if calls < 2 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}
