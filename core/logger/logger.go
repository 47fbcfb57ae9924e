package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) color() string {
	switch l {
	case DEBUG:
		return ColorGray
	case INFO:
		return ColorBlue
	case WARN:
		return ColorYellow
	case ERROR:
		return ColorRed
	case FATAL:
		return ColorPurple
	default:
		return ColorWhite
	}
}

type leveledLogger struct {
	mu      sync.Mutex
	verbose bool
	out     io.Writer
	errOut  io.Writer
	logfile *os.File
}

var global = &leveledLogger{
	out:    os.Stdout,
	errOut: os.Stderr,
}

func SetVerbose(verbose bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.verbose = verbose
}

func IsVerbose() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.verbose
}

// SetLogfile tees every level into the named file, creating or appending as
// needed. Call Close when the process is done with it.
func SetLogfile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open logfile %s: %w", path, err)
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	global.logfile = f
	global.out = io.MultiWriter(os.Stdout, f)
	global.errOut = io.MultiWriter(os.Stderr, f)
	return nil
}

func Close() {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.logfile != nil {
		global.logfile.Close()
		global.logfile = nil
		global.out = os.Stdout
		global.errOut = os.Stderr
	}
}

func (l *leveledLogger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level == DEBUG && !l.verbose {
		return
	}

	w := l.out
	if level >= ERROR {
		w = l.errOut
	}

	timestamp := time.Now().Format("06-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "%s[%s]%s %s%-5s%s %s\n",
		ColorGray, timestamp, ColorReset,
		level.color(), level.String(), ColorReset,
		message)

	if level == FATAL {
		os.Exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	global.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	global.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	global.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	global.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	global.log(FATAL, format, args...)
}
