package mailfmt

import (
	"strings"
	"time"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

// Envelope renders the fixed ten field IMAP ENVELOPE list: date, subject,
// from, sender, reply-to, to, cc, bcc, in-reply-to, message-id. Sender and
// reply-to reuse the from field, matching the protocol convention that both
// default to the author. Absent fields render as NIL.
func Envelope(m *mail.Mail) string {
	if m == nil {
		m = &mail.Mail{}
	}

	from := AddressList(m.From.Addresses())

	fields := []string{
		quoteTime(m.Date),
		quoteEscaped(m.Subject),
		from,
		from, // sender defaults to the author
		from, // reply-to defaults to the author
		AddressList(m.To.Addresses()),
		AddressList(m.Cc.Addresses()),
		AddressList(m.Bcc.Addresses()),
		"NIL", // in-reply-to is not tracked
		quoteVerbatim(m.MessageID),
	}
	return "(" + strings.Join(fields, " ") + ")"
}

func quoteTime(t time.Time) string {
	if t.IsZero() {
		return "NIL"
	}
	return "\"" + t.Format(envelopeDateLayout) + "\""
}

func quoteEscaped(s string) string {
	if s == "" {
		return "NIL"
	}
	return "\"" + escapeQuotes(s) + "\""
}

func quoteVerbatim(s string) string {
	if s == "" {
		return "NIL"
	}
	return "\"" + s + "\""
}
