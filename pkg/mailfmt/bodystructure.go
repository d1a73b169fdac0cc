package mailfmt

import (
	"fmt"
	"strings"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

// BodyStructure renders the IMAP BODYSTRUCTURE description of the mail.
// Attachments wrap everything in multipart/mixed; text and html together
// form multipart/alternative; html alone is a single HTML leaf; anything
// else is a single PLAIN leaf over the (possibly empty) text. Nesting never
// goes beyond the one mixed/alternative level.
func BodyStructure(m *mail.Mail) string {
	if m == nil {
		m = &mail.Mail{}
	}

	inner := textStructure(m)
	if len(m.Attachments) == 0 {
		return inner
	}

	parts := make([]string, 0, len(m.Attachments)+1)
	parts = append(parts, inner)
	for _, att := range m.Attachments {
		parts = append(parts, attachmentPart(att))
	}
	return multipart(parts, "mixed")
}

// textStructure renders the text portion: an alternative pair when both
// bodies are present, otherwise a single leaf.
func textStructure(m *mail.Mail) string {
	switch {
	case m.Text != "" && m.HTML != "":
		return multipart([]string{textLeaf("PLAIN", m.Text), textLeaf("HTML", m.HTML)}, "alternative")
	case m.HTML != "":
		return textLeaf("HTML", m.HTML)
	default:
		return textLeaf("PLAIN", m.Text)
	}
}

// textLeaf renders one text leaf descriptor. The size is the length of the
// base64 transfer encoded content, matching what Body emits for the part.
func textLeaf(subtype, content string) string {
	return fmt.Sprintf("(\"TEXT\" \"%s\" NIL NIL NIL \"BASE64\" %d NIL)", subtype, len(Encode(content)))
}

// attachmentPart renders one attachment descriptor with its disposition.
// Malformed content types and missing filenames degrade to empty fields,
// never abort the surrounding structure.
func attachmentPart(att mail.Attachment) string {
	mediaType, subtype := splitContentType(att.ContentType)
	return fmt.Sprintf("(\"%s\" \"%s\" (\"ATTACHMENT\" (\"FILENAME\" \"%s\")) NIL NIL \"BASE64\" %d NIL)",
		mediaType, subtype, att.Filename, att.Size)
}

// splitContentType lower-cases and splits a type/subtype pair on the first
// slash. A missing slash leaves the subtype empty.
func splitContentType(contentType string) (string, string) {
	mediaType, subtype, _ := strings.Cut(strings.ToLower(contentType), "/")
	return mediaType, subtype
}

// multipart renders inner descriptors back to back followed by the quoted
// subtype token.
func multipart(parts []string, subtype string) string {
	return fmt.Sprintf("(%s \"%s\")", strings.Join(parts, ""), subtype)
}
