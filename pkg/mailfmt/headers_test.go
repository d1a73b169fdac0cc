package mailfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

func TestHeadersPlainText(t *testing.T) {
	got := Headers(&mail.Mail{Text: "hi"}, "X")
	assert.Equal(t, "MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n", got)
}

func TestHeadersHTMLOnly(t *testing.T) {
	got := Headers(&mail.Mail{HTML: "<p>hi</p>"}, "X")
	assert.Equal(t, "MIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n", got)
}

func TestHeadersSubjectAndMessageID(t *testing.T) {
	m := &mail.Mail{Subject: `He said "hi"`, MessageID: "<42@example.com>", Text: "x"}
	want := "Message-ID: <42@example.com>\r\n" +
		"Subject: He said \"hi\"\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n"
	assert.Equal(t, want, Headers(m, "X"))
}

func TestHeadersAlternative(t *testing.T) {
	m := &mail.Mail{Text: "a", HTML: "b"}
	got := Headers(m, "X")
	assert.Contains(t, got, "Content-Type: multipart/alternative; boundary=\"boundary_X\"\r\n")
}

func TestHeadersMixed(t *testing.T) {
	m := &mail.Mail{
		Text:        "a",
		Attachments: []mail.Attachment{{Filename: "f.pdf", ContentType: "application/pdf"}},
	}
	got := Headers(m, "doc-7")
	assert.Contains(t, got, "Content-Type: multipart/mixed; boundary=\"boundary_doc-7\"\r\n")
}

func TestHeadersCRLFOnly(t *testing.T) {
	m := &mail.Mail{Subject: "s", MessageID: "<m@x>", Text: "a", HTML: "b"}
	got := Headers(m, "X")
	assert.True(t, strings.HasSuffix(got, "\r\n"))
	assert.NotContains(t, strings.ReplaceAll(got, "\r\n", ""), "\n")
	assert.Contains(t, got, "MIME-Version: 1.0\r\n")
}

func TestHeadersDocIDFallback(t *testing.T) {
	m := &mail.Mail{Text: "a", HTML: "b"}
	uid, err := m.UID()
	require.NoError(t, err)

	got := Headers(m, "")
	assert.Contains(t, got, "boundary=\"boundary_"+uid+"\"")
	assert.Equal(t, got, Headers(m, ""), "fallback must be deterministic")
}
