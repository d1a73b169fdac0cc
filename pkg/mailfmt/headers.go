package mailfmt

import (
	"strings"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

// Headers renders the literal RFC 822 style header block for the mail.
// Every line ends with CRLF. Message-ID and Subject appear verbatim when
// set; MIME-Version is always present; the Content-Type mirrors the shape
// logic of BodyStructure. docID feeds the multipart boundary token and
// defaults to the mail's UID, so rendering never fails.
func Headers(m *mail.Mail, docID string) string {
	if m == nil {
		m = &mail.Mail{}
	}

	var b strings.Builder
	if m.MessageID != "" {
		b.WriteString("Message-ID: " + m.MessageID + "\r\n")
	}
	if m.Subject != "" {
		b.WriteString("Subject: " + m.Subject + "\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: " + contentType(m, docID) + "\r\n")
	return b.String()
}

// contentType selects the top level Content-Type for the mail shape.
func contentType(m *mail.Mail, docID string) string {
	switch {
	case len(m.Attachments) > 0:
		return "multipart/mixed; boundary=\"" + boundary(m, docID) + "\""
	case m.Text != "" && m.HTML != "":
		return "multipart/alternative; boundary=\"" + boundary(m, docID) + "\""
	case m.HTML != "":
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func boundary(m *mail.Mail, docID string) string {
	return "boundary_" + resolveDocID(m, docID)
}

// resolveDocID falls back to the document hash when the caller did not
// supply an identifier. The fallback is deterministic for one document.
func resolveDocID(m *mail.Mail, docID string) string {
	if docID != "" {
		return docID
	}
	if uid, err := m.UID(); err == nil {
		return uid
	}
	return "0"
}
