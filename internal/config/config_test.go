package config

import "testing"

func TestSetDefaultsProducesValidConfig(t *testing.T) {
	viperReset()
	setDefaults()

	var cfg Config
	if err := decodeDefaults(&cfg); err != nil {
		t.Fatalf("decodeDefaults: %v", err)
	}
	if err := validate(&cfg); err != nil {
		t.Fatalf("validate rejected defaults: %v", err)
	}
	if cfg.Server.Port != "8088" {
		t.Errorf("Server.Port = %q, want 8088", cfg.Server.Port)
	}
	if cfg.Paper.LinesPerPage != 66 {
		t.Errorf("Paper.LinesPerPage = %d, want 66", cfg.Paper.LinesPerPage)
	}
}

func TestValidateRejectsUnknownEnvironment(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: "8088"},
		App:     AppConfig{Name: "escp2renderd", Environment: "moon-base"},
		Logging: LoggingConfig{Level: "info"},
	}
	if err := validate(&cfg); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: "8088"},
		App:     AppConfig{Name: "escp2renderd", Environment: "development"},
		Logging: LoggingConfig{Level: "verbose"},
	}
	if err := validate(&cfg); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestGetServerAddr(t *testing.T) {
	cfg := Config{Server: ServerConfig{Host: "127.0.0.1", Port: "9000"}}
	if got := cfg.GetServerAddr(); got != "127.0.0.1:9000" {
		t.Errorf("GetServerAddr() = %q, want 127.0.0.1:9000", got)
	}
}
