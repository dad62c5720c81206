package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"ecotrack/internal/utils/mailing"

	"github.com/gofiber/fiber/v2/log"
)

type EventKind string

const (
	EventItemAdded    EventKind = "item_added"
	EventItemConsumed EventKind = "item_consumed"
	EventItemWasted   EventKind = "item_wasted"
	EventWasteLogged  EventKind = "waste_logged"
	EventExpiryDigest EventKind = "expiry_digest"
)

// Event is a user-facing message raised by the ledgers.
type Event struct {
	Kind    EventKind
	Title   string
	Message string
	Lines   []string
}

type (
	Notifier interface {
		Notify(ctx context.Context, event Event) error
	}

	logNotifier struct{}

	mailNotifier struct {
		mailer  mailing.Mailer
		toEmail string
		kinds   map[EventKind]bool
	}

	multiNotifier struct {
		notifiers []Notifier
	}
)

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(_ context.Context, event Event) error {
	log.Infow(event.Message, "kind", event.Kind, "title", event.Title)
	return nil
}

// NewMailNotifier mails events of the given kinds, or of every kind when
// none are listed.
func NewMailNotifier(mailer mailing.Mailer, toEmail string, kinds ...EventKind) Notifier {
	n := &mailNotifier{mailer: mailer, toEmail: toEmail}
	if len(kinds) > 0 {
		n.kinds = make(map[EventKind]bool, len(kinds))
		for _, k := range kinds {
			n.kinds[k] = true
		}
	}
	return n
}

func (n *mailNotifier) Notify(_ context.Context, event Event) error {
	if n.kinds != nil && !n.kinds[event.Kind] {
		return nil
	}
	if err := n.mailer.SendMail(n.toEmail, event.Title, renderHTML(event)); err != nil {
		return fmt.Errorf("failed to mail %s notification: %w", event.Kind, err)
	}
	return nil
}

func renderHTML(event Event) string {
	var b strings.Builder
	b.WriteString("<p>")
	b.WriteString(html.EscapeString(event.Message))
	b.WriteString("</p>")
	if len(event.Lines) > 0 {
		b.WriteString("<ul>")
		for _, line := range event.Lines {
			b.WriteString("<li>")
			b.WriteString(html.EscapeString(line))
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// NewMulti fans an event out to every notifier; one failing does not stop
// the others.
func NewMulti(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

func (m *multiNotifier) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
