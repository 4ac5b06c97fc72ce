// Package email sends templated transactional email through the Brevo API.
package email

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	brevo "github.com/getbrevo/brevo-go/lib"

	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/errors"
)

const (
	apiVersionPath     = "/v3"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)

// StatusError is returned for non-2xx responses from the email API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("email API returned status %d: %s", e.StatusCode, e.Body)
}

// IsClientError reports whether the request itself was rejected.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// brevoSender sends templates through the Brevo transactional emails API.
type brevoSender struct {
	client *brevo.APIClient
	sender *brevo.SendSmtpEmailSender
}

func newBrevoSender(httpClient *http.Client, baseURL, apiKey, senderEmail, senderName string) *brevoSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	cfg := brevo.NewConfiguration()
	cfg.BasePath = strings.TrimRight(baseURL, "/") + apiVersionPath
	cfg.HTTPClient = httpClient
	cfg.AddDefaultHeader("api-key", apiKey)

	var sender *brevo.SendSmtpEmailSender
	if senderEmail != "" {
		sender = &brevo.SendSmtpEmailSender{Email: senderEmail, Name: senderName}
	}

	return &brevoSender{
		client: brevo.NewAPIClient(cfg),
		sender: sender,
	}
}

// SendTemplate sends one templated email.
func (s *brevoSender) SendTemplate(ctx context.Context, msg *service.EmailMessage) error {
	if msg == nil || len(msg.To) == 0 {
		return errors.New("email message has no recipients")
	}

	email := brevo.SendSmtpEmail{
		Sender:     s.sender,
		To:         make([]brevo.SendSmtpEmailTo, 0, len(msg.To)),
		TemplateId: msg.TemplateID,
	}
	if msg.Params != nil {
		var params any = msg.Params
		email.Params = &params
	}
	for _, r := range msg.To {
		email.To = append(email.To, brevo.SendSmtpEmailTo{Email: r.Email, Name: r.Name})
	}

	_, resp, err := s.client.TransactionalEmailsApi.SendTransacEmail(ctx, email)
	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return &StatusError{StatusCode: resp.StatusCode, Body: errorExcerpt(err)}
	}
	if err != nil {
		return errors.Wrap(err, "failed to send email request")
	}

	return nil
}

// errorExcerpt returns the start of the response body carried by an SDK error.
func errorExcerpt(err error) string {
	var body string
	if apiErr, ok := errors.AsType[brevo.GenericSwaggerError](err); ok {
		body = string(apiErr.Body())
	} else if err != nil {
		body = err.Error()
	}
	body = strings.TrimSpace(body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return body
}
