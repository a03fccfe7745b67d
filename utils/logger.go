/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000"

var (
	loggerRegistryMu sync.RWMutex
	loggerRegistry   = map[string]*logrus.Logger{}

	settingsMu   sync.RWMutex
	defaultLevel = ParseLogLevel(EnvDefaultString("LOG_LEVEL", "info"))
	logFormat    = EnvDefaultString("CONSOLE_LOG_FORMAT", "text")
	logOutput    io.Writer = os.Stdout
)

// ParseLogLevel maps a level name to a logrus level, defaulting to info.
func ParseLogLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// NewLogger returns the named logger, creating and registering it on first
// use. Console output uses the log4j-style text formatter unless the format
// is "json".
func NewLogger(name string) *logrus.Logger {
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	if l, ok := loggerRegistry[name]; ok {
		return l
	}

	settingsMu.RLock()
	level, format, out := defaultLevel, logFormat, logOutput
	settingsMu.RUnlock()

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetReportCaller(true)
	l.SetFormatter(newFormatter(name, format))
	loggerRegistry[name] = l
	return l
}

func newFormatter(name, format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &JSONLogFormatter{LoggerName: name}
	}
	return &Log4jColorFormatter{LoggerName: name, NameWidth: 10, Color: isTerminal(logOutput)}
}

// SetLoggerLevel changes one registered logger; it reports false when no
// logger has that name.
func SetLoggerLevel(name string, lvlStr string) bool {
	loggerRegistryMu.RLock()
	l, ok := loggerRegistry[name]
	loggerRegistryMu.RUnlock()
	if !ok {
		return false
	}
	l.SetLevel(ParseLogLevel(lvlStr))
	return true
}

// ConfigureLogLevel sets the level of every registered and future logger.
func ConfigureLogLevel(levelStr string) {
	lvl := ParseLogLevel(levelStr)
	settingsMu.Lock()
	defaultLevel = lvl
	settingsMu.Unlock()
	eachLogger(func(_ string, l *logrus.Logger) { l.SetLevel(lvl) })
}

// ConfigureLogFormat switches every logger between "text" and "json".
func ConfigureLogFormat(format string) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "json" {
		format = "text"
	}
	settingsMu.Lock()
	logFormat = format
	settingsMu.Unlock()
	eachLogger(func(name string, l *logrus.Logger) { l.SetFormatter(newFormatter(name, format)) })
}

// ConfigureOutput redirects every logger. A non-empty file path appends to
// that file in addition to w.
func ConfigureOutput(w io.Writer, file string) error {
	if w == nil {
		w = os.Stdout
	}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		w = io.MultiWriter(w, f)
	}
	settingsMu.Lock()
	logOutput = w
	settingsMu.Unlock()
	eachLogger(func(_ string, l *logrus.Logger) { l.SetOutput(w) })
	return nil
}

func eachLogger(fn func(name string, l *logrus.Logger)) {
	loggerRegistryMu.RLock()
	defer loggerRegistryMu.RUnlock()
	for name, l := range loggerRegistry {
		fn(name, l)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// Log4jColorFormatter renders
// "2006-01-02 15:04:05.000  INFO 1234 --- [  DATABASE] file.go:42 : message k=v".
type Log4jColorFormatter struct {
	LoggerName string
	NameWidth  int
	Color      bool
}

func (f *Log4jColorFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	lvl := fmt.Sprintf("%5s", levelText(entry.Level))
	name := fmt.Sprintf("%*s", f.NameWidth, limitRunes(f.LoggerName, f.NameWidth))
	caller := ""
	if entry.Caller != nil {
		caller = fmt.Sprintf(" %s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}
	if f.Color {
		lvl = colorLevel(lvl, entry.Level)
		name = nameColor.Sprint(name)
		caller = callerColor.Sprint(caller)
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%s %s %-6d --- [%s]%s : %s",
		entry.Time.Format(timestampFormat), lvl, os.Getpid(), name, caller, entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		_, _ = fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// JSONLogFormatter renders one JSON object per line.
type JSONLogFormatter struct {
	LoggerName string
}

func (f *JSONLogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	type jsonLogRecord struct {
		Time    string                 `json:"time"`
		Level   string                 `json:"level"`
		Logger  string                 `json:"logger"`
		Caller  string                 `json:"caller,omitempty"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields,omitempty"`
	}
	rec := jsonLogRecord{
		Time:    entry.Time.Format(timestampFormat),
		Level:   entry.Level.String(),
		Logger:  f.LoggerName,
		Message: entry.Message,
	}
	if entry.Caller != nil {
		rec.Caller = fmt.Sprintf("%s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}
	if len(entry.Data) > 0 {
		rec.Fields = make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			if err, ok := v.(error); ok {
				v = err.Error()
			}
			rec.Fields[k] = v
		}
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

var (
	errorLevelColor = color.New(color.FgRed)
	warnLevelColor  = color.New(color.FgYellow)
	infoLevelColor  = color.New(color.FgGreen)
	debugLevelColor = color.New(color.FgBlue)
	traceLevelColor = color.New(color.FgMagenta)
	nameColor       = color.New(color.FgCyan)
	callerColor     = color.New(color.Faint)
)

func colorLevel(s string, level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return errorLevelColor.Sprint(s)
	case logrus.WarnLevel:
		return warnLevelColor.Sprint(s)
	case logrus.InfoLevel:
		return infoLevelColor.Sprint(s)
	case logrus.DebugLevel:
		return debugLevelColor.Sprint(s)
	default:
		return traceLevelColor.Sprint(s)
	}
}

func levelText(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

func limitRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnvDefaultString returns the environment value of key, or def when unset.
func EnvDefaultString(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
