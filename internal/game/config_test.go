package game

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("TickInterval = %v, want 1s", cfg.TickInterval)
	}
	if !cfg.Telemetry {
		t.Error("Telemetry = false, want true")
	}
	if cfg.SavePath != "" || cfg.LogFile != "" {
		t.Errorf("SavePath, LogFile = %q, %q, want empty", cfg.SavePath, cfg.LogFile)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STREAMER_SAVE_PATH", "/tmp/streamer/save.json")
	t.Setenv("STREAMER_TICK_INTERVAL", "500ms")
	t.Setenv("STREAMER_LOG_FILE", "-")
	t.Setenv("STREAMER_TELEMETRY", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	want := Config{
		SavePath:     "/tmp/streamer/save.json",
		TickInterval: 500 * time.Millisecond,
		LogFile:      "-",
		Telemetry:    false,
	}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigRejectsNonPositiveTick(t *testing.T) {
	t.Setenv("STREAMER_TICK_INTERVAL", "0s")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() with zero tick interval should fail")
	}
}

func TestResolveSavePath(t *testing.T) {
	cfg := Config{SavePath: "/data/save.json"}
	got, err := cfg.ResolveSavePath()
	if err != nil || got != "/data/save.json" {
		t.Errorf("ResolveSavePath() = (%q, %v), want /data/save.json", got, err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	got, err = Config{}.ResolveSavePath()
	if err != nil {
		t.Fatalf("ResolveSavePath() default error: %v", err)
	}
	if filepath.Base(got) != "streamer_save.json" {
		t.Errorf("ResolveSavePath() default = %q, want streamer_save.json file", got)
	}
}

func TestResolveLogPath(t *testing.T) {
	savePath := filepath.Join("home", "me", "streamer", "streamer_save.json")

	tests := []struct {
		logFile string
		want    string
	}{
		{"", filepath.Join("home", "me", "streamer", "streamer.log")},
		{"-", ""},
		{"/var/log/streamer.log", "/var/log/streamer.log"},
	}

	for _, tt := range tests {
		got := Config{LogFile: tt.logFile}.ResolveLogPath(savePath)
		if got != tt.want {
			t.Errorf("ResolveLogPath() with LogFile=%q = %q, want %q", tt.logFile, got, tt.want)
		}
	}
}
