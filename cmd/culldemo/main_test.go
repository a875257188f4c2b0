package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		want []string
	}{
		{
			name: "small grid fully visible",
			cfg:  config{width: 800, height: 600, grid: 2},
			want: []string{"draws issued:      4", "culled playback:   0", "draws submitted:   4 (100.0%)"},
		},
		{
			name: "large grid",
			cfg:  config{width: 800, height: 600, grid: 64, rotate: 30},
			want: []string{"draws issued:      4,096", "culled recording:  0"},
		},
		{
			name: "record culling",
			cfg:  config{width: 100, height: 100, grid: 10, recordCull: true},
			want: []string{"culled playback:   0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), tt.cfg, discardLogger(), &out); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
	}{
		{"zero width", config{width: 0, height: 10, grid: 1}},
		{"negative height", config{width: 10, height: -1, grid: 1}},
		{"zero grid", config{width: 10, height: 10, grid: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(context.Background(), tt.cfg, discardLogger(), io.Discard); err == nil {
				t.Error("run() error = nil, want an error")
			}
		})
	}
}
