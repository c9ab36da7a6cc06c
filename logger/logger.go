// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable before Init is called,
// but Init must run at startup to apply the production configuration.
var Log = logrus.New()

// Init configures the shared logger for production use.
func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}
