package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
)

var lineRe = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[[A-Z]+\]: .+$`)

func TestLogger_LineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	var echo bytes.Buffer
	logger := New(WithPath(path), WithEcho(&echo), WithNoColor())

	logger.Log("hi", "warning")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Error reading log file: %v", err)
	}

	want := regexp.MustCompile(`\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[WARNING\]: hi`)
	if !want.Match(data) {
		t.Errorf("File line does not match format: %q", string(data))
	}
	if !want.Match(echo.Bytes()) {
		t.Errorf("Echo line does not match format: %q", echo.String())
	}
}

func TestLogger_LevelWrappers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	logger := New(WithPath(path), WithEcho(nil))

	logger.Info("a")
	logger.Debug("b")
	logger.Warning("c")
	logger.Error("d")

	data, _ := os.ReadFile(path)
	for _, level := range []string{"[INFO]", "[DEBUG]", "[WARNING]", "[ERROR]"} {
		if !strings.Contains(string(data), level) {
			t.Errorf("Expected %s entry in log, got %q", level, string(data))
		}
	}
}

func TestLogger_ConcurrentWritesKeepLinesIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	logger := New(WithPath(path), WithEcho(nil))

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			logger.Info(fmt.Sprintf("message %d", i))
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Error reading log file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != writers {
		t.Fatalf("Expected %d lines, got %d", writers, len(lines))
	}
	for _, line := range lines {
		if !lineRe.MatchString(line) {
			t.Errorf("Corrupted line: %q", line)
		}
	}
}

func TestLogger_UnwritableDestinationNeverFails(t *testing.T) {
	var echo bytes.Buffer
	logger := New(WithPath("/nonexistent-dir/test.log"), WithEcho(&echo), WithNoColor())

	// Must not panic or error; the echo still receives the line.
	logger.Error("still alive")

	if !strings.Contains(echo.String(), "still alive") {
		t.Errorf("Expected echo despite unwritable file, got %q", echo.String())
	}
}

func TestLogger_LevelUppercased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	logger := New(WithPath(path), WithEcho(nil))

	logger.Log("hi", "debug")

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "[DEBUG]") {
		t.Errorf("Expected uppercased level tag, got %q", string(data))
	}
}
