package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"go.eggybyte.com/create-node-api/internal/errors"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetVerbose(false)
		SetJSONOutput(false)
		now = time.Now
	})
	return &out, &errOut
}

func TestLevels(t *testing.T) {
	out, errOut := capture(t)

	Info("hello %s", "world")
	Success("done")
	Warning("careful")
	Error("broken: %v", "disk")

	expected := "ℹ️  INFO: hello world\n✅ SUCCESS: done\n⚠️  WARN: careful\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
	if errOut.String() != "❌ ERROR: broken: disk\n" {
		t.Errorf("Expected error on stderr, got %q", errOut.String())
	}
}

func TestDebugRequiresVerbose(t *testing.T) {
	out, _ := capture(t)

	Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}

	SetVerbose(true)
	Debug("shown")
	if out.String() != "🔍 DEBUG: shown\n" {
		t.Errorf("Expected debug line, got %q", out.String())
	}
}

func TestColor(t *testing.T) {
	out, _ := capture(t)
	SetColor(true)

	Success("ok")
	if !strings.Contains(out.String(), ansiGreen) || !strings.Contains(out.String(), ansiReset) {
		t.Errorf("Expected colored output, got %q", out.String())
	}
}

func TestJSONOutput(t *testing.T) {
	out, _ := capture(t)
	SetJSONOutput(true)
	now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	SuccessWithData(map[string]int{"files": 7}, "Project %q created", "demo")
	Plain("ignored")
	Banner("ignored")
	Heading("ignored")

	var msg Message
	if err := json.Unmarshal(out.Bytes(), &msg); err != nil {
		t.Fatalf("Expected a single JSON message, got %q: %v", out.String(), err)
	}
	if msg.Level != LevelSuccess {
		t.Errorf("Expected level %s, got %s", LevelSuccess, msg.Level)
	}
	if msg.Text != `Project "demo" created` {
		t.Errorf("Expected text, got %q", msg.Text)
	}
	if !msg.Timestamp.Equal(now()) {
		t.Errorf("Expected timestamp %v, got %v", now(), msg.Timestamp)
	}
	data, ok := msg.Data.(map[string]any)
	if !ok || data["files"] != float64(7) {
		t.Errorf("Expected data with files=7, got %v", msg.Data)
	}
}

func TestStep(t *testing.T) {
	out, _ := capture(t)

	Step(1, "cd %s", "demo")
	Step(2, "npm install")

	expected := "  1. cd demo\n  2. npm install\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestPromptInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      string
		expected string
	}{
		{"typed answer", "my-api\n", "", "my-api"},
		{"default on empty line", "\n", "3001", "3001"},
		{"crlf stripped", "v2\r\n", "v1", "v2"},
		{"inner spaces kept", " my api \n", "", " my api "},
		{"last line without newline", "demo", "", "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.PromptInput("Question?", tt.def, nil)
			if err != nil {
				t.Fatalf("PromptInput failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPromptInputReasks(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("my project\nmy-project\n"), &out)

	validate := func(s string) error {
		if strings.Contains(s, " ") {
			return errors.Invalid("projectName", "Project name can only contain letters, numbers, hyphens, and underscores!")
		}
		return nil
	}

	got, err := p.PromptInput("What is your project name?", "", validate)
	if err != nil {
		t.Fatalf("PromptInput failed: %v", err)
	}
	if got != "my-project" {
		t.Errorf("Expected my-project, got %q", got)
	}

	if strings.Count(out.String(), "? What is your project name?") != 2 {
		t.Errorf("Expected the question twice, got %q", out.String())
	}
	if !strings.Contains(out.String(), ">> Project name can only contain letters, numbers, hyphens, and underscores!\n") {
		t.Errorf("Expected validation message, got %q", out.String())
	}
}

func TestPromptInputEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	_, err := p.PromptInput("Question?", "", nil)
	if errors.CodeOf(err) != errors.CodeCanceled {
		t.Errorf("Expected code %s, got %v", errors.CodeCanceled, err)
	}
}

func TestPromptInputCanceledWhileWaiting(t *testing.T) {
	in, w := io.Pipe()
	t.Cleanup(func() { w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	p := NewPrompter(in, &out, WithContext(ctx))

	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := p.PromptInput("What is your project name?", "", nil)
		done <- err
	}()

	select {
	case err := <-done:
		if errors.CodeOf(err) != errors.CodeCanceled {
			t.Errorf("Expected code %s, got %v", errors.CodeCanceled, err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled cause, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("PromptInput did not return after cancellation")
	}
}

func TestPromptAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("y\n"), &out, WithContext(ctx))

	if _, err := p.PromptConfirm("Use CORS?", true); errors.CodeOf(err) != errors.CodeCanceled {
		t.Errorf("Expected code %s, got %v", errors.CodeCanceled, err)
	}
}

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input    string
		def      bool
		expected bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\nno\n", true, false},
		{" y \n", false, true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(tt.input), &out)

		got, err := p.PromptConfirm("Do you want to use MongoDB?", tt.def)
		if err != nil {
			t.Fatalf("PromptConfirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("PromptConfirm(%q, %v): expected %v, got %v", tt.input, tt.def, tt.expected, got)
		}
	}
}

func TestPromptConfirmHint(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n"), &out)

	if _, err := p.PromptConfirm("Create README?", true); err != nil {
		t.Fatalf("PromptConfirm failed: %v", err)
	}
	if out.String() != "? Create README? (Y/n) " {
		t.Errorf("Expected plain prompt, got %q", out.String())
	}
}

func TestNonInteractive(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("ignored\n"), &out, WithNonInteractive(true))

	name, err := p.PromptInput("Port?", "3001", nil)
	if err != nil || name != "3001" {
		t.Errorf("Expected default 3001, got %q (%v)", name, err)
	}

	ok, err := p.PromptConfirm("Use CORS?", true)
	if err != nil || !ok {
		t.Errorf("Expected default true, got %v (%v)", ok, err)
	}

	_, err = p.PromptInput("Name?", "", func(s string) error {
		if s == "" {
			return errors.Invalid("projectName", "Project name is required!")
		}
		return nil
	})
	if errors.CodeOf(err) != errors.CodeInvalidArgument {
		t.Errorf("Expected invalid default to fail, got %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("Expected no prompts, got %q", out.String())
	}
}
