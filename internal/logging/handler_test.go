package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"log/slog"
)

func TestStructuredHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	handler := newStructuredHandler(handlerConfig{
		level:  slog.LevelInfo,
		writer: aw,
		format: formatKV,
	})
	ctx := WithRID(context.Background(), "42:9:7")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)

	log := slog.New(handler).With("component", "shop.cart")
	LogEvent(ctx, log, slog.LevelInfo, "cart.add",
		slog.String("status", "ok"),
		slog.String("product_id", "xbox-series-x"),
		slog.Int("count", 2),
	)
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log line")
	}
	tokens := strings.Split(line, " ")
	expected := []string{"ts=", "level=INFO", "component=shop.cart", "event=cart.add", "status=ok", "rid=42:9:7"}
	if len(tokens) < len(expected) {
		t.Fatalf("unexpected token count: %d (%s)", len(tokens), line)
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
	if !strings.Contains(line, "product_id=xbox-series-x") {
		t.Fatalf("missing product_id in %s", line)
	}
}

func TestStructuredHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	handler := newStructuredHandler(handlerConfig{
		level:  slog.LevelInfo,
		writer: aw,
		format: formatJSON,
	})

	log := slog.New(handler)
	LogEvent(context.Background(), log, slog.LevelWarn, "checkout.pricing_unresolved",
		slog.String("delivery", "yandex"),
	)
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	var decoded map[string]any
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("invalid JSON line %q: %v", line, err)
	}
	if decoded["level"] != "WARN" {
		t.Fatalf("level = %v", decoded["level"])
	}
	if decoded["event"] != "checkout.pricing_unresolved" {
		t.Fatalf("event = %v", decoded["event"])
	}
	if decoded["delivery"] != "yandex" {
		t.Fatalf("delivery = %v", decoded["delivery"])
	}
	if decoded["component"] != "app" {
		t.Fatalf("component fallback = %v", decoded["component"])
	}
	// the ordered prefix keys come first in the raw line
	if !strings.HasPrefix(line, `{"ts":`) {
		t.Fatalf("key order not applied: %s", line)
	}
}

func TestStructuredHandlerDurationNormalization(t *testing.T) {
	buf := &bytes.Buffer{}
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	handler := newStructuredHandler(handlerConfig{
		level:  slog.LevelInfo,
		writer: aw,
		format: formatKV,
	})

	log := slog.New(handler)
	LogEvent(context.Background(), log, slog.LevelInfo, "handler.handled",
		slog.Duration("duration", 1500000), // 1.5ms
	)
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	line := buf.String()
	if !strings.Contains(line, "duration_ms=2") {
		t.Fatalf("duration not rounded to ms: %s", line)
	}
}
