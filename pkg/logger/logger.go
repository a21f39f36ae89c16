package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *zap.Logger
var Sugar *zap.SugaredLogger
var atomicLevel zap.AtomicLevel

func init() {
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	Log = newLogger(zapcore.AddSync(os.Stdout))
	Sugar = Log.Sugar()
}

func newLogger(out zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, atomicLevel)
	return zap.New(core)
}

// SetupFileOutput mirrors console output into a rotated file under logDir.
func SetupFileOutput(logDir string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}
	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "presensi.log"),
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
	}
	sink := zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(rotated))
	Log = newLogger(sink)
	Sugar = Log.Sugar()
	return nil
}

// SetLevel adjusts the minimum level at runtime.
func SetLevel(level string) {
	switch level {
	case "debug":
		atomicLevel.SetLevel(zap.DebugLevel)
	case "warn":
		atomicLevel.SetLevel(zap.WarnLevel)
	case "error":
		atomicLevel.SetLevel(zap.ErrorLevel)
	default:
		atomicLevel.SetLevel(zap.InfoLevel)
	}
}

func Debug(args ...interface{}) { Sugar.Debug(args...) }
func Info(args ...interface{})  { Sugar.Info(args...) }
func Warn(args ...interface{})  { Sugar.Warn(args...) }
func Error(args ...interface{}) { Sugar.Error(args...) }
func Fatal(args ...interface{}) { Sugar.Fatal(args...) }

func Debugf(format string, args ...interface{}) { Sugar.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { Sugar.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { Sugar.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { Sugar.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { Sugar.Fatalf(format, args...) }
