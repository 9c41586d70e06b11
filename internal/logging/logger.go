// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
}

// Setup points the standard logrus logger at stdout and/or a rotating log
// file. With an empty file name everything goes to stdout.
func Setup(params SetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:  params.LogFileName,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}

	if params.LogToStdout {
		logrus.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
	} else {
		logrus.SetOutput(fileLogger)
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "warn":
		return logrus.WarnLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}
