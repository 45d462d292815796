// Package log configures log15 handlers for console and rotating file output.
package log

import (
	"os"

	"github.com/govalues/bigint/internal/config"
	"github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetLogLevel sets the console log level and drops any file handler.
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(consoleHandler(logLevel))
}

// SetFileLog sets console and file logging from cfg.
// A nil cfg or an empty LogFile configures the console only.
func SetFileLog(cfg *config.Log) {
	if cfg == nil {
		cfg = config.Default().Log
	}
	fillDefaultValue(cfg)
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
		return
	}
	log15.Root().SetHandler(log15.MultiHandler(consoleHandler(cfg.LogConsoleLevel), fileHandler(cfg)))
}

// New returns a logger with the given context, e.g. New("module", "calc").
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}

// error is the default level, so that nothing but failures is printed.
func fillDefaultValue(cfg *config.Log) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
}

func isWindows() bool {
	return os.PathSeparator == '\\' && os.PathListSeparator == ';'
}

func consoleHandler(logLevel string) log15.Handler {
	format := log15.TerminalFormat()
	if isWindows() {
		format = log15.LogfmtFormat()
	}
	return log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(os.Stderr, format),
	)
}

func fileHandler(cfg *config.Log) log15.Handler {
	rotateLogger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}

	fileh := log15.LvlFilterHandler(
		getLevel(cfg.Loglevel),
		log15.StreamHandler(rotateLogger, log15.LogfmtFormat()),
	)

	if cfg.CallerFile {
		fileh = log15.CallerFileHandler(fileh)
	}
	if cfg.CallerFunction {
		fileh = log15.CallerFuncHandler(fileh)
	}
	return fileh
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		return log15.LvlError
	}
	return lvl
}
