package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupOTelEnvWithoutKey(t *testing.T) {
	t.Setenv("HONEYCOMB_STREAMER_API_KEY", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	setupOTelEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "" {
		t.Errorf("endpoint = %q, want empty without an API key", got)
	}
}

func TestSetupOTelEnvWithKey(t *testing.T) {
	t.Setenv("HONEYCOMB_STREAMER_API_KEY", "abc")
	t.Setenv("HONEYCOMB_STREAMER_DATASET", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	setupOTelEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q, want honeycomb", got)
	}
	want := "x-honeycomb-team=abc,x-honeycomb-dataset=streamer"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestSetupOTelEnvKeepsExplicitEndpoint(t *testing.T) {
	t.Setenv("HONEYCOMB_STREAMER_API_KEY", "abc")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	setupOTelEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "http://localhost:4318" {
		t.Errorf("endpoint = %q, want explicit value kept", got)
	}
}

func TestRedirectLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "streamer.log")

	closeLog, err := redirectLog(path)
	if err != nil {
		t.Fatalf("redirectLog() error: %v", err)
	}
	log.Printf("hello from the test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file = %q, want test message", data)
	}
}
