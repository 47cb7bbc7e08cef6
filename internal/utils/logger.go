package utils

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"spark/internal/config"
)

const timestampFormat = "2006-01-02 15:04:05.000"

var (
	base   = newBaseLogger()
	baseMu sync.RWMutex
)

func newBaseLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: timestampFormat,
		FullTimestamp:   true,
	})
	return l
}

// ConfigureLogging 按配置设置全局日志级别与格式。
// 日志只写标准错误，标准输出留给探测结果
func ConfigureLogging(cfg config.LogConfig, out io.Writer) {
	l := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
		l.Warnf("无效的日志级别 '%s', 使用 info", cfg.Level)
	}
	l.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
		})
	}

	baseMu.Lock()
	base = l
	baseMu.Unlock()
}

type Logger struct {
	name  string
	entry *logrus.Entry
}

func NewLogger(name string) *Logger {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return &Logger{
		name:  name,
		entry: base.WithField("module", name),
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// WithFields 返回带结构化字段的日志条目
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.entry.WithFields(fields)
}

// DebugEnabled 用于跳过代价较高的调试日志拼装
func (l *Logger) DebugEnabled() bool {
	return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}
