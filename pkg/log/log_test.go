package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	gethlog "github.com/ethereum/go-ethereum/log"
)

func newTestLogger(buf *bytes.Buffer, f LogFormatter) Logger {
	return gethlog.NewLogger(NewHandler(buf, f))
}

func TestModuleAddsContext(t *testing.T) {
	var buf bytes.Buffer
	root := newTestLogger(&buf, &JSONFormatter{})
	SetDefault(root)

	child := Module("backend")
	child.Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if entry["module"] != "backend" {
		t.Fatalf("module = %v, want %q", entry["module"], "backend")
	}
	if entry["msg"] != "hello" {
		t.Fatalf("msg = %v, want %q", entry["msg"], "hello")
	}
}

func TestBackendSelectedLogsComponentAndKind(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, &JSONFormatter{})

	BackendSelected(l, "hash", "software")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if entry["component"] != "hash" || entry["backend"] != "software" {
		t.Fatalf("entry = %v, want component=hash backend=software", entry)
	}
}

func TestHCATimeoutLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, &JSONFormatter{})

	HCATimeout(l, "hash.CompressBlock", 50*time.Millisecond)

	if !strings.Contains(buf.String(), "hca poll timed out") {
		t.Fatalf("output missing timeout message: %s", buf.String())
	}
}

func TestTRNGReseedHintLogsAttempts(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, &JSONFormatter{})

	TRNGReseedHint(l, 120, 128)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if v, ok := entry["attempts"].(float64); !ok || v != 120 {
		t.Fatalf("attempts = %v, want 120", entry["attempts"])
	}
}

func TestHandlerFormatterSelectable(t *testing.T) {
	var buf bytes.Buffer
	l := gethlog.NewLogger(NewHandler(&buf, &TextFormatter{}))
	l.Info("plain text line")

	out := buf.String()
	if !strings.Contains(out, "plain text line") {
		t.Fatalf("text-formatted output missing message: %s", out)
	}
	if strings.Contains(out, "{") {
		t.Fatalf("text formatter produced JSON-looking output: %s", out)
	}
}

func TestHandlerWithAttrsIsQualified(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &JSONFormatter{})
	l := gethlog.NewLogger(h)
	child := l.New("peer", "abc")
	child.Info("added")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if entry["peer"] != "abc" {
		t.Fatalf("peer = %v, want %q", entry["peer"], "abc")
	}
}

func TestRootIsNotNil(t *testing.T) {
	if Root() == nil {
		t.Fatal("Root() returned nil")
	}
}

var _ slog.Handler = (*Handler)(nil)
