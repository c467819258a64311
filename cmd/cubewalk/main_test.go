package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/cubewalk/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return rootCmd.Execute()
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(sample, []byte(dsl.Sample().Text()), 0o644))

	badConfig := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("store:\n  kind: s3\n"), 0o644))

	rect := filepath.Join(dir, "rect.txt")
	require.NoError(t, os.WriteFile(rect, []byte("...\n...\n\n1\n"), 0o644))

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"Version", []string{"version"}, false},
		{"Solve Headless", []string{"solve", "--headless", "--mode", "cube", sample}, false},
		{"Solve With Store", []string{"solve", "--headless", "--store", "memory", sample}, false},
		{"Solve Bad Store", []string{"solve", "--store", "s3", sample}, true},
		{"Validate", []string{"validate", sample}, false},
		{"Validate Rectangle", []string{"validate", "--face-size", "1", rect}, true},
		{"Graph", []string{"graph", "--path", sample}, false},
		{"Graph Both Modes", []string{"graph", "--mode", "both", sample}, true},
		{"Bad Config", []string{"--config", badConfig, "version"}, true},
		{"Bad Log Level", []string{"--log-level", "loud", "version"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
