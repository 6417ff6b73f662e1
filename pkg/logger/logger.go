package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger is an explicit logger instance handed to the components that need
// one. Nothing here runs at import time.
type Logger struct {
	info    *log.Logger
	warn    *log.Logger
	errlog  *log.Logger
	logFile *os.File
}

// New creates a logger writing to the given writer.
func New(w io.Writer) *Logger {
	return &Logger{
		info:   log.New(w, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		warn:   log.New(w, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile),
		errlog: log.New(w, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// NewWithFile creates a logger writing to stdout and a timestamped log file
// under dir, creating the directory if needed.
func NewWithFile(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory '%s': %w", dir, err)
	}

	name := time.Now().Format("01_02_2006_15_04_05") + ".log"
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := New(io.MultiWriter(os.Stdout, f))
	l.logFile = f
	return l, nil
}

func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.info.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.warn.Output(2, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.errlog.Output(2, fmt.Sprintf(format, v...))
}
