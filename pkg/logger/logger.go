package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Init настраивает глобальный логгер из переменных окружения.
// Вызывается один раз при старте (main.go) и в TestMain.
func Init() {
	Log = logrus.New()

	// 1. Уровень логирования. По умолчанию - "info", для отладки FOV - "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: "json" для сбора логов, иначе текст.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// For возвращает запись логгера с заполненным полем component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
