package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseDurationFlexible(t *testing.T) {
	def := 10 * time.Second

	tests := []struct {
		name    string
		raw     interface{}
		want    time.Duration
		wantErr bool
	}{
		{"duration string", "90s", 90 * time.Second, false},
		{"compound string", "1h30m", 90 * time.Minute, false},
		{"plain seconds string", "120", 120 * time.Second, false},
		{"empty string uses default", "", def, false},
		{"whitespace uses default", "   ", def, false},
		{"garbage string", "soon", def, true},
		{"negative string", "-5s", def, true},
		{"int seconds", 30, 30 * time.Second, false},
		{"int64 seconds", int64(45), 45 * time.Second, false},
		{"float seconds", 1.5, 1500 * time.Millisecond, false},
		{"zero int", 0, def, true},
		{"time.Duration passthrough", 2 * time.Minute, 2 * time.Minute, false},
		{"nil uses default", nil, def, false},
		{"bool uses default", true, def, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDurationFlexible(tt.raw, def)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDurationFlexible(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDurationFlexible(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := Config{DBDriver: "mysql", ImageTable: "image_store"}

	if err := validate(base); err != nil {
		t.Errorf("validate(valid config) = %v", err)
	}

	bad := base
	bad.DBDriver = "oracle"
	if err := validate(bad); err == nil {
		t.Error("validate should reject unknown db_driver")
	}

	bad = base
	bad.ImageTable = ""
	if err := validate(bad); err == nil {
		t.Error("validate should reject empty image_table")
	}
}

func TestDumpRedactsDSN(t *testing.T) {
	cfg := Config{DBDSN: "user:secret@tcp(localhost)/app"}
	dump := cfg.Dump()
	if strings.Contains(dump, "secret") {
		t.Errorf("Dump leaked the DSN: %s", dump)
	}
	if !strings.Contains(dump, "[REDACTED]") {
		t.Errorf("Dump should redact the DSN, got: %s", dump)
	}
}
