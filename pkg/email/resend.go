package email

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"github.com/sefazor/stripe-memberships/internal/models"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Sender is the part of the resend client used here.
type Sender interface {
	Send(params *resend.SendEmailRequest) (resend.SendEmailResponse, error)
}

type EmailService struct {
	sender    Sender
	from      string
	fromName  string
	templates *template.Template
	logger    *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) (*EmailService, error) {
	client := resend.NewClient(apiKey)
	return newEmailService(client.Emails, from, fromName, logger)
}

func newEmailService(sender Sender, from, fromName string, logger *zap.Logger) (*EmailService, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &EmailService{
		sender:    sender,
		from:      from,
		fromName:  fromName,
		templates: tmpl,
		logger:    logger.Named("email"),
	}, nil
}

func (s *EmailService) SendMembershipActivatedEmail(email string, membership *models.Membership) error {
	s.logger.Info("sending membership activated email", zap.String("email", email))

	templateData := map[string]interface{}{
		"Email":        email,
		"TipoProducto": membership.TipoProducto,
		"ProductoID":   membership.ProductoID,
		"FechaInicio":  membership.FechaInicio.Format("02/01/2006"),
		"Year":         time.Now().Year(),
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "membership-activated.html", templateData); err != nil {
		s.logger.Error("error executing membership template", zap.String("email", email), zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Tu membresía está activa",
		Html:    body.String(),
	}

	resp, err := s.sender.Send(params)
	if err != nil {
		s.logger.Error("failed to send membership email", zap.String("email", email), zap.Error(err))
		return err
	}

	s.logger.Info("membership email sent", zap.String("email", email), zap.String("id", resp.Id))
	return nil
}
