package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "", nil)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness_AllHealthy(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	handler := NewHealthHandler(RedisCheck(rdb))
	c, rec := newContext(http.MethodGet, "/health/ready", "", nil)

	if err := handler.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthHandler_Readiness_Degraded(t *testing.T) {
	handler := NewHealthHandler(
		DependencyCheck{Name: "redis", Ping: func(context.Context) error { return nil }},
		DependencyCheck{Name: "mongodb", Ping: func(context.Context) error { return errors.New("no reachable servers") }},
	)
	c, rec := newContext(http.MethodGet, "/health/ready", "", nil)

	if err := handler.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["mongodb"].Status != "unhealthy" || resp.Dependencies["redis"].Status != "ok" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
