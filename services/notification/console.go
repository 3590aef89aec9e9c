package notifsvc

import (
	"fmt"
	"log"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

type consoleService struct {
	prefix string
}

var _ core.Notifier = (*consoleService)(nil)

// NewConsoleService returns a Notifier that writes notices to the standard
// logger. Meant for local development.
func NewConsoleService(conf *core.Config) core.Notifier {
	return &consoleService{prefix: "[" + conf.AppName + "] "}
}

func (svc consoleService) Notify(notices ...core.Notice) {
	for _, n := range notices {
		log.Println(svc.format(n))
	}
}

func (svc consoleService) format(n core.Notice) string {
	if n.Description == "" {
		return fmt.Sprintf("%s%s: %s", svc.prefix, n.Kind, n.Title)
	}
	return fmt.Sprintf("%s%s: %s - %s", svc.prefix, n.Kind, n.Title, n.Description)
}
