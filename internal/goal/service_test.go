package goal

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client), s
}

func TestCreditAccumulates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Credit(ctx, "user-1", 300)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if p.AccumulatedSeconds != 300 {
		t.Fatalf("unexpected seconds: %d", p.AccumulatedSeconds)
	}

	p, err = svc.Credit(ctx, "user-1", 200)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if p.AccumulatedSeconds != 500 {
		t.Fatalf("expected accumulation, got %d", p.AccumulatedSeconds)
	}

	if got := svc.Load(ctx, "user-1"); got.AccumulatedSeconds != 500 {
		t.Fatalf("load after credit: %d", got.AccumulatedSeconds)
	}
}

func TestRatioSaturates(t *testing.T) {
	if r := (Progress{AccumulatedSeconds: 900}).Ratio(); r != 1.0 {
		t.Fatalf("expected exact saturation, got %v", r)
	}
	if r := (Progress{AccumulatedSeconds: 5000}).Ratio(); r != 1.0 {
		t.Fatalf("ratio must never exceed 1.0, got %v", r)
	}
	if r := (Progress{AccumulatedSeconds: 450}).Ratio(); r != 0.5 {
		t.Fatalf("unexpected ratio: %v", r)
	}
}

func TestLoadResetsOnNewDay(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	day := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }
	if _, err := svc.Credit(ctx, "user-1", 600); err != nil {
		t.Fatalf("credit: %v", err)
	}

	svc.now = func() time.Time { return day.AddDate(0, 0, 1) }
	if p := svc.Load(ctx, "user-1"); p.AccumulatedSeconds != 0 {
		t.Fatalf("expected reset on new day, got %d", p.AccumulatedSeconds)
	}
}

func TestLoadMissingAndCorrupt(t *testing.T) {
	svc, server := newTestService(t)
	ctx := context.Background()

	if p := svc.Load(ctx, "nobody"); p.AccumulatedSeconds != 0 {
		t.Fatalf("expected empty progress")
	}

	server.Set(key("user-1"), "not-json")
	if p := svc.Load(ctx, "user-1"); p.AccumulatedSeconds != 0 {
		t.Fatalf("corrupt state should read as empty")
	}
}

func TestNilRedisIsSafe(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	p, err := svc.Credit(ctx, "user-1", 120)
	if err != nil {
		t.Fatalf("credit without redis: %v", err)
	}
	if p.AccumulatedSeconds != 120 {
		t.Fatalf("unexpected seconds: %d", p.AccumulatedSeconds)
	}
	if got := svc.Load(ctx, "user-1"); got.AccumulatedSeconds != 0 {
		t.Fatalf("nothing should persist without redis")
	}
}

func TestCreditSaveError(t *testing.T) {
	svc, server := newTestService(t)
	server.Close()

	p, err := svc.Credit(context.Background(), "user-1", 60)
	if err == nil {
		t.Fatalf("expected save error")
	}
	if p.AccumulatedSeconds != 60 {
		t.Fatalf("in-memory progress should survive a failed save")
	}
}
