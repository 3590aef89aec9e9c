package logsvc

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

// GommonLogger implements core.Logger on top of gommon's leveled logger.
type GommonLogger struct {
	l *log.Logger
}

var _ core.Logger = (*GommonLogger)(nil)

func NewGommonLogger(conf *core.Config) *GommonLogger {
	l := log.New(conf.AppName)
	if conf.Debug {
		l.SetLevel(log.DEBUG)
	} else {
		l.SetLevel(log.INFO)
	}
	return &GommonLogger{l: l}
}

func (g GommonLogger) format(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf("%s %+v", msg, args)
}

func (g GommonLogger) Debug(msg string, args ...interface{}) { g.l.Debug(g.format(msg, args)) }
func (g GommonLogger) Info(msg string, args ...interface{})  { g.l.Info(g.format(msg, args)) }
func (g GommonLogger) Warn(msg string, args ...interface{})  { g.l.Warn(g.format(msg, args)) }
func (g GommonLogger) Error(msg string, args ...interface{}) { g.l.Error(g.format(msg, args)) }
func (g GommonLogger) Fatal(msg string, args ...interface{}) { g.l.Fatal(g.format(msg, args)) }
