package notify

import (
	"fmt"

	"recruitment-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// ApplicationReceived acknowledges a public application by mail.
	// A send failure is logged only; the application itself stands.
	ApplicationReceived(candidateName, candidateEmail, position string)
}

var Instance Provider

func NewHandler(fromEmail string) {
	Instance = impl{
		fromEmail: fromEmail,
	}
}

type impl struct {
	fromEmail string
}

func (i impl) ApplicationReceived(candidateName, candidateEmail, position string) {
	subject := "Application received"
	message := fmt.Sprintf("Hello %s,\n\nwe received your application for the %s position. "+
		"Our HR team will review it and reach out about the next steps.", candidateName, position)
	if err := smtp.Instance.SendEMail(i.fromEmail, candidateEmail, message, subject); err != nil {
		log.WithError(err).
			WithField("candidate_email", candidateEmail).
			Error("application confirmation mail failed")
	}
}
