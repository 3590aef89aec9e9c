package sendgridnotif

import (
	"fmt"
	"net/http"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/codo-ajmalnk/evoka-admin/core"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// service forwards notices to a configured admin address by email.
// Used in environments where nobody is watching the console.
type service struct {
	key        string
	from       *sgmail.Email
	to         *sgmail.Email
	subjPrefix string
	logger     core.Logger
}

var _ core.Notifier = (*service)(nil)

func NewService(conf *core.Config, logger core.Logger) core.Notifier {
	return &service{
		key:        conf.SendgridAPIKey,
		from:       getSGEmail(conf.DefaultFromEmail),
		to:         getSGEmail(conf.AdminEmail),
		subjPrefix: "[" + conf.AppName + "] ",
		logger:     logger,
	}
}

func (svc *service) Notify(notices ...core.Notice) {
	for _, n := range notices {
		n := n
		go svc.send(n)
	}
}

func (svc *service) prepare(n core.Notice) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = fmt.Sprintf("%s%s: %s", svc.subjPrefix, n.Kind, n.Title)
	p.AddTos(svc.to)

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", n.Description))
	return m
}

func (svc *service) send(n core.Notice) {
	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(svc.prepare(n))

	res, err := sendgrid.API(req)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("sending notice: %v", err), err)
	} else if res.StatusCode >= http.StatusBadRequest {
		svc.logger.Error(fmt.Sprintf("sending notice - status: %d - Body: %s", res.StatusCode, res.Body))
	}
}

func getSGEmail(addr mail.Address) *sgmail.Email {
	return sgmail.NewEmail(addr.Name, addr.Address)
}
