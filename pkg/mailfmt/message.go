package mailfmt

import (
	"strings"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

// Message renders the complete raw message: header block, blank line, MIME
// body. The boundary resolves from the same docID on both sides so headers
// and body always agree.
func Message(m *mail.Mail, docID string) string {
	if m == nil {
		m = &mail.Mail{}
	}
	id := resolveDocID(m, docID)
	return Headers(m, id) + "\r\n" + Body(m, id)
}

// Body renders the MIME body matching the Content-Type that Headers emits
// for the same mail and docID. Single part bodies are the text verbatim
// with bare line feeds normalized to CRLF; multipart bodies carry base64
// transfer encoded parts between boundary_<docID> delimiters.
func Body(m *mail.Mail, docID string) string {
	if m == nil {
		m = &mail.Mail{}
	}

	switch {
	case len(m.Attachments) > 0:
		return mixedBody(m, "boundary_"+resolveDocID(m, docID))
	case m.Text != "" && m.HTML != "":
		return alternativeBody(m, "boundary_"+resolveDocID(m, docID))
	case m.HTML != "":
		return crlf(m.HTML)
	default:
		return crlf(m.Text)
	}
}

// mixedBody renders the multipart/mixed body: the text portion first (a
// nested alternative part when both bodies are present), then one part per
// attachment.
func mixedBody(m *mail.Mail, boundary string) string {
	var b strings.Builder

	if m.Text != "" && m.HTML != "" {
		altBoundary := boundary + "_alt"
		b.WriteString("--" + boundary + "\r\n")
		b.WriteString("Content-Type: multipart/alternative; boundary=\"" + altBoundary + "\"\r\n")
		b.WriteString("\r\n")
		b.WriteString(alternativeBody(m, altBoundary))
	} else if m.HTML != "" {
		writeTextPart(&b, boundary, "html", m.HTML)
	} else {
		writeTextPart(&b, boundary, "plain", m.Text)
	}

	for _, att := range m.Attachments {
		writeAttachmentPart(&b, boundary, att)
	}

	b.WriteString("--" + boundary + "--\r\n")
	return b.String()
}

// alternativeBody renders a complete multipart/alternative body, plain
// part first, including the closing delimiter.
func alternativeBody(m *mail.Mail, boundary string) string {
	var b strings.Builder
	writeTextPart(&b, boundary, "plain", m.Text)
	writeTextPart(&b, boundary, "html", m.HTML)
	b.WriteString("--" + boundary + "--\r\n")
	return b.String()
}

// writeTextPart emits one base64 transfer encoded text part, wrapped the
// way the BODYSTRUCTURE leaf descriptors declare.
func writeTextPart(b *strings.Builder, boundary, subtype, content string) {
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/" + subtype + "; charset=utf-8\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString("\r\n")
	writeWrapped(b, Encode(content))
}

func writeAttachmentPart(b *strings.Builder, boundary string, att mail.Attachment) {
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: " + contentType + "\r\n")
	b.WriteString("Content-Disposition: attachment; filename=\"" + att.Filename + "\"\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString("\r\n")
	writeWrapped(b, att.Data)
}

// writeWrapped writes base64 text in lines of 76 characters, each line
// CRLF terminated.
func writeWrapped(b *strings.Builder, encoded string) {
	for i := 0; i < len(encoded); i += 76 {
		end := i + 76
		if end > len(encoded) {
			end = len(encoded)
		}
		b.WriteString(encoded[i:end])
		b.WriteString("\r\n")
	}
}

// crlf normalizes bare line feeds to CRLF.
func crlf(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
