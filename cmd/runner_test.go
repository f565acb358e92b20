package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/spotify-mcp/internal/shared"
	tu "github.com/desertthunder/spotify-mcp/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
		})

		t.Run("with nil dependencies uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.output == nil {
				t.Error("expected default output to be set")
			}
			if runner.httpClient == nil {
				t.Error("expected default http client to be set")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) != 3 {
			t.Fatalf("expected 3 commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, expected := range []string{"serve", "auth", "config"} {
			if !names[expected] {
				t.Errorf("expected %s command to be registered", expected)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if output.String() != "{\"key\":\"value\"}\n" {
			t.Errorf("unexpected output: %q", output.String())
		}
	})

	t.Run("writeJSON pretty", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if !strings.Contains(output.String(), "  \"key\": \"value\"") {
			t.Errorf("expected indented output, got %q", output.String())
		}
	})

	t.Run("writeJSON failing writer", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err == nil {
			t.Error("expected error for failing writer")
		}
	})

	t.Run("loadConfig", func(t *testing.T) {
		t.Run("missing file falls back to runner config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			config := runner.loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
			if config != runner.config {
				t.Error("expected fallback to runner config")
			}
		})

		t.Run("environment overrides file", func(t *testing.T) {
			t.Setenv("PORT", "4000")
			runner := NewRunner(RunnerOpts{})

			config := runner.loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
			if config.Server.Port != 4000 {
				t.Errorf("expected env port 4000, got %d", config.Server.Port)
			}
		})
	})
}

func TestConfigInit(t *testing.T) {
	runCommand := func(t *testing.T, runner *Runner, args []string) error {
		t.Helper()
		app := &cli.Command{Commands: runner.register()}
		return app.Run(context.Background(), append([]string{"spotify-mcp"}, args...))
	}

	t.Run("creates config file", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := runCommand(t, runner, []string{"config", "init", "--path", path}); err != nil {
			t.Fatalf("config init failed: %v", err)
		}

		tu.AssertFileExists(t, path)
		if !strings.Contains(output.String(), "Wrote") {
			t.Errorf("expected confirmation output, got %q", output.String())
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := runCommand(t, runner, []string{"config", "init", "--path", path}); err != nil {
			t.Fatalf("first init failed: %v", err)
		}
		if err := runCommand(t, runner, []string{"config", "init", "--path", path}); err == nil {
			t.Error("second init without --force should fail")
		}
	})

	t.Run("force overwrites existing file", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := os.WriteFile(path, []byte("stale = true\n"), 0644); err != nil {
			t.Fatalf("failed to seed config file: %v", err)
		}

		if err := runCommand(t, runner, []string{"config", "init", "--path", path, "--force"}); err != nil {
			t.Fatalf("config init --force failed: %v", err)
		}

		content := tu.MustReadFile(t, path)
		if strings.Contains(content, "stale") {
			t.Error("expected existing file to be replaced")
		}
		if !strings.Contains(content, "[server]") {
			t.Errorf("expected template content, got %q", content)
		}
	})
}

func TestAuthStatus(t *testing.T) {
	runStatus := func(t *testing.T, runner *Runner, addr string) error {
		t.Helper()
		app := &cli.Command{Commands: runner.register()}
		return app.Run(context.Background(), []string{"spotify-mcp", "auth", "status", "--addr", addr})
	}

	t.Run("healthy and authenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/health" {
				t.Errorf("expected /health, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok","authenticated":true}`))
		}))
		defer srv.Close()

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runStatus(t, runner, srv.URL); err != nil {
			t.Fatalf("auth status failed: %v", err)
		}
		if !strings.Contains(output.String(), "✓ Authenticated") {
			t.Errorf("expected authenticated output, got %q", output.String())
		}
	})

	t.Run("healthy but not authenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok","authenticated":false}`))
		}))
		defer srv.Close()

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runStatus(t, runner, srv.URL); err != nil {
			t.Fatalf("auth status failed: %v", err)
		}
		if !strings.Contains(output.String(), "✗ Not authenticated") {
			t.Errorf("expected unauthenticated output, got %q", output.String())
		}
	})

	t.Run("failing writer surfaces the error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok","authenticated":true}`))
		}))
		defer srv.Close()

		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := runStatus(t, runner, srv.URL); err == nil {
			t.Error("expected error for failing writer")
		}
	})

	t.Run("unreachable service", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		if err := runStatus(t, runner, "http://127.0.0.1:1"); err == nil {
			t.Error("expected error for unreachable service")
		}
	})
}
