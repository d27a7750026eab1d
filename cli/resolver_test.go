package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  config
	}{
		{
			name:  "empty",
			input: "",
			want:  config{},
		},
		{
			name:  "flat",
			input: "log-level: debug\nlog_pretty: false\n",
			want:  config{"log-level": "debug", "log_pretty": false},
		},
		{
			name:  "nested",
			input: "log:\n  level: trace\n  format: json\npprof:\n  mode: cpu\n",
			want: config{
				"log-level":  "trace",
				"log-format": "json",
				"pprof-mode": "cpu",
			},
		},
		{
			name:  "numbers",
			input: "iterations: 500\nratio: 0.25\nneg: -3\n",
			want:  config{"iterations": "500", "ratio": "0.25", "neg": "-3"},
		},
		{
			name:  "list",
			input: "tags: [a, 2]\n",
			want:  config{"tags": []any{"a", "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver, err := loadYAML(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("loadYAML() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, resolver); diff != "" {
				t.Errorf("loadYAML() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := loadYAML(strings.NewReader("log: [unterminated\n"))
	if err == nil {
		t.Error("loadYAML() expected error for malformed document")
	}
}

func TestLoadYAML_ReadError(t *testing.T) {
	t.Parallel()

	_, err := loadYAML(&errorReader{err: errors.New("read failed")})
	if err == nil {
		t.Error("loadYAML() expected error from failing reader")
	}
}

type errorReader struct{ err error }

func (e *errorReader) Read([]byte) (int, error) { return 0, e.err }

func TestConfig_UnderscoreHyphenMapping(t *testing.T) {
	t.Parallel()

	resolver := config{"log_level": "debug", "log-format": "json"}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log_level", "debug"},
		{"log-format", "json"},
		{"log-caller", nil},
	}

	for _, tt := range tests {
		flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

		got, err := resolver.Resolve(nil, nil, flag)
		if err != nil {
			t.Fatalf("Resolve(%s) error = %v", tt.flag, err)
		}

		if got != tt.want {
			t.Errorf("Resolve(%s) = %v, want %v", tt.flag, got, tt.want)
		}
	}
}

func TestConfiguration_YAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	err := os.WriteFile(path, []byte("name: file\ncount: 7\nlog:\n  verbose: true\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	var cli struct {
		Name       string `default:"flag"`
		Count      int    `default:"1"`
		LogVerbose bool
	}

	parser, err := kong.New(&cli, kong.Configuration(loadYAML, path))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"--name=cli"}); err != nil {
		t.Fatal(err)
	}

	if cli.Name != "cli" {
		t.Errorf("Name = %q, want command-line value %q", cli.Name, "cli")
	}

	if cli.Count != 7 {
		t.Errorf("Count = %d, want config value 7", cli.Count)
	}

	if !cli.LogVerbose {
		t.Error("LogVerbose = false, want config value true")
	}
}
