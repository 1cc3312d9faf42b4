package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate moq -rm -out notifier_mock.go . Notifier

// Notifier informs a publisher's contact address about the outcome of a
// sync pass. Implementations must never fail the pass because a mail could
// not be sent.
type Notifier interface {
	SendSummary(ctx context.Context, publisher domain.Publisher, summary Summary)
	SendFetchErrorMail(ctx context.Context, publisher domain.Publisher, url string)
	SendAuthErrorMail(ctx context.Context, publisher domain.Publisher, url string)
}

// Summary collects everything a sync pass did to a publisher's datasets.
type Summary struct {
	Archived    []domain.SyncStatus
	New         []domain.RegistryDataset
	Updated     []domain.RegistryDataset
	Invalid     []InvalidDataset
	Unsupported []domain.DatasetSummary
}

// InvalidDataset is a dataset that failed schema validation, together with
// the violations found.
type InvalidDataset struct {
	Summary domain.DatasetSummary
	Errors  []domain.ValidationError
}

// Empty reports whether the pass changed nothing worth mailing about.
func (s Summary) Empty() bool {
	return len(s.Archived) == 0 && len(s.New) == 0 && len(s.Updated) == 0 &&
		len(s.Invalid) == 0 && len(s.Unsupported) == 0
}

// NewSendGridNotifier creates a notifier that delivers mail through
// SendGrid from the given sender address.
func NewSendGridNotifier(apiKey, sender string) Notifier {
	return &sendgridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

type sendgridNotifier struct {
	client *sendgrid.Client
	sender string
}

func (n *sendgridNotifier) SendSummary(ctx context.Context, publisher domain.Publisher, summary Summary) {
	date := time.Now().Format("02/01/06")
	subject := fmt.Sprintf("Federated metadata synchronisation (%s)", date)

	body := mailOpening()
	body += fmt.Sprintf(`<tr style="text-align: left;"><th>Federated metadata synchronisation summary for %s</th></tr><tr></tr>`, date)

	if len(summary.New) > 0 {
		body += formatDocumentList("New datasets", summary.New)
	}

	if len(summary.Updated) > 0 {
		body += formatDocumentList("Updated datasets", summary.Updated)
	}

	if len(summary.Archived) > 0 {
		body += formatSubtitle("Archived datasets", len(summary.Archived))
		body += "<tr><th><ul>"
		for _, entry := range summary.Archived {
			body += formatListItem(fmt.Sprintf("%s (version: %s)", entry.PID, entry.Version))
		}
		body += "</ul></th></tr>"
	}

	if len(summary.Invalid) > 0 {
		body += formatSubtitle("Validation failed", len(summary.Invalid))
		body += "<tr><th><ul>"
		for _, invalid := range summary.Invalid {
			body += formatListItem(fmt.Sprintf("%s (version: %s)", invalid.Summary.Identifier, invalid.Summary.Version))
			for _, violation := range invalid.Errors {
				body += formatListItem(fmt.Sprintf("&nbsp;&nbsp;%s at %v", violation.Error, violation.Path))
			}
		}
		body += "</ul></th></tr>"
	}

	if len(summary.Unsupported) > 0 {
		body += formatSubtitle("Unsupported datasets", len(summary.Unsupported))
		body += "<tr><th><ul>"
		for _, entry := range summary.Unsupported {
			body += formatListItem(fmt.Sprintf("%s (version: %s, schema version: %s)", entry.Identifier, entry.Version, entry.Schema))
		}
		body += "</ul></th></tr>"
	}

	body += mailClosing()

	n.send(ctx, publisher, subject, body)
}

func (n *sendgridNotifier) SendFetchErrorMail(ctx context.Context, publisher domain.Publisher, url string) {
	date := time.Now().Format("02/01/06")
	subject := fmt.Sprintf("Federated metadata synchronisation (%s) - error retrieving list of datasets", date)

	body := mailOpening()
	body += fmt.Sprintf(`<tr><th style="border: 0; font-size: 14px; text-align: left; font-weight: normal;">During the federated metadata synchronisation process, our systems encountered
		an error when retrieving data from your organisation's datasets endpoint at %s.
		<p></p>
		This endpoint is critical to the functionality of the synchronisation process. As such,
		we have paused metadata syncing for your account. Please contact the registry's support team to resolve this issue.
		</th></tr>`, url)
	body += mailClosing()

	n.send(ctx, publisher, subject, body)
}

func (n *sendgridNotifier) SendAuthErrorMail(ctx context.Context, publisher domain.Publisher, url string) {
	date := time.Now().Format("02/01/06")
	subject := fmt.Sprintf("Federated metadata synchronisation (%s) - authorisation error", date)

	body := mailOpening()
	body += fmt.Sprintf(`<tr><th style="border: 0; font-size: 14px; text-align: left; font-weight: normal;">During the federated metadata synchronisation process, our systems were
		unable to authorise with the following endpoint: %s.
		<p></p>
		For the moment, we have paused metadata syncing for your account. Please contact the registry's support team to resolve this issue.
		</th></tr>`, url)
	body += mailClosing()

	n.send(ctx, publisher, subject, body)
}

func (n *sendgridNotifier) send(ctx context.Context, publisher domain.Publisher, subject, body string) {
	log := logging.GetFromContext(ctx)

	if publisher.NotificationEmail == "" {
		log.Warn().Msgf("publisher %s has no notification email configured", publisher.ID)
		return
	}

	from := mail.NewEmail("", n.sender)
	to := mail.NewEmail("", publisher.NotificationEmail)
	content := mail.NewContent("text/html", body)
	message := mail.NewV3MailInit(from, subject, to, content)

	response, err := n.client.Send(message)
	if err != nil {
		log.Error().Err(err).Msgf("failed to send notification to %s", publisher.NotificationEmail)
		return
	}

	if response.StatusCode >= 400 {
		log.Error().Msgf("notification to %s was rejected with status %d", publisher.NotificationEmail, response.StatusCode)
	}
}

func formatDocumentList(subtitle string, docs []domain.RegistryDataset) string {
	html := formatSubtitle(subtitle, len(docs))

	html += "<tr><th><ul>"
	for _, doc := range docs {
		html += formatListItem(fmt.Sprintf("%s (version: %s)", doc.PID, doc.DatasetVersion))
	}
	html += "</ul></th></tr>"

	return html
}

func formatSubtitle(subtitle string, count int) string {
	return fmt.Sprintf(`<tr><th style="border: 0; color: #29235c; font-size: 14px; text-align: left;">%s (%d): </th></tr>`, subtitle, count)
}

func formatListItem(text string) string {
	return fmt.Sprintf(`<li style="border: 0; font-size: 12px; font-weight: normal; color: #333333; text-align: left;">%s</li>`, text)
}

func mailOpening() string {
	return `<div style="border: 1px solid #d0d3d4; border-radius: 15px; width: 700px; margin: 0 auto;">
		<table
		align="center"
		border="0"
		cellpadding="0"
		cellspacing="10"
		width="700"
		style="font-family: Arial, sans-serif">
		<thead>`
}

func mailClosing() string {
	return "</thead></table></div>"
}
