package service

import "context"

// EmailRecipient is one addressee of a transactional email.
type EmailRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// EmailMessage is a templated transactional email.
type EmailMessage struct {
	To         []EmailRecipient
	TemplateID int64
	Params     map[string]any
}

// EmailSender sends templated transactional email.
type EmailSender interface {
	SendTemplate(ctx context.Context, msg *EmailMessage) error
}
