package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// DefaultLogFile is the destination used when no path is configured.
const DefaultLogFile = "snag.log"

// Log levels used throughout the client.
const (
	LevelInfo    = "INFO"
	LevelDebug   = "DEBUG"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// Logger appends timestamped, leveled lines to a log file and mirrors
// them to a live writer. Logging is best-effort: a failed append never
// propagates to the request path.
type Logger struct {
	path    string
	echo    io.Writer
	noColor bool

	// mu serializes appends so concurrent batch workers can't
	// interleave partial lines.
	mu sync.Mutex
}

// Option is a function that configures a Logger
type Option func(*Logger)

// New creates a logger writing to DefaultLogFile and echoing to stdout.
func New(opts ...Option) *Logger {
	l := &Logger{
		path: DefaultLogFile,
		echo: os.Stdout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithPath sets the log file path
func WithPath(path string) Option {
	return func(l *Logger) {
		l.path = path
	}
}

// WithEcho replaces the live echo writer (stdout by default).
// Pass io.Discard to disable the echo entirely.
func WithEcho(w io.Writer) Option {
	return func(l *Logger) {
		l.echo = w
	}
}

// WithNoColor disables the colored level tag on the echo writer
func WithNoColor() Option {
	return func(l *Logger) {
		l.noColor = true
	}
}

// Log appends a line in the form "[2006-01-02 15:04:05] [LEVEL]: message"
// to the log file and writes the same line to the echo writer.
func (l *Logger) Log(message, level string) {
	level = strings.ToUpper(level)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] [%s]: %s\n", timestamp, level, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Best-effort append; an unwritable destination must not fail the caller.
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		_, _ = f.WriteString(line)
		_ = f.Close()
	}

	if l.echo != nil {
		fmt.Fprintf(l.echo, "[%s] [%s]: %s\n", timestamp, l.levelTag(level), message)
	}
}

// Info logs a message at INFO level
func (l *Logger) Info(message string) {
	l.Log(message, LevelInfo)
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(message string) {
	l.Log(message, LevelDebug)
}

// Warning logs a message at WARNING level
func (l *Logger) Warning(message string) {
	l.Log(message, LevelWarning)
}

// Error logs a message at ERROR level
func (l *Logger) Error(message string) {
	l.Log(message, LevelError)
}

// levelTag colors the level for terminal echoes; the file line stays plain.
func (l *Logger) levelTag(level string) string {
	if l.noColor || !l.echoIsTerminal() {
		return level
	}

	c := color.New(color.Bold)
	switch level {
	case LevelError:
		c.Add(color.FgRed)
	case LevelWarning:
		c.Add(color.FgYellow)
	case LevelDebug:
		c.Add(color.FgCyan)
	default:
		c.Add(color.FgGreen)
	}

	return c.Sprint(level)
}

func (l *Logger) echoIsTerminal() bool {
	f, ok := l.echo.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
