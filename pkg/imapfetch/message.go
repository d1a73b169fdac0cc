// Package imapfetch converts mail documents into go-imap FETCH data. The
// conversions mirror the textual fragments produced by pkg/mailfmt, so a
// server answering from either path reports the same structures.
package imapfetch

import (
	"bytes"
	"strings"
	"time"

	"github.com/emersion/go-imap"

	"github.com/freeflowuniverse/heromail/pkg/mail"
	"github.com/freeflowuniverse/heromail/pkg/mailfmt"
)

// Message is one stored mail document bound to its IMAP identity.
type Message struct {
	Mail *mail.Mail
	Uid  uint32
	Key  string // storage key the document was loaded from
}

// Fetch converts the message into an imap.Message carrying the requested
// items.
func (msg *Message) Fetch(seqNum uint32, items []imap.FetchItem) (*imap.Message, error) {
	m := msg.Mail
	if m == nil {
		m = &mail.Mail{}
	}

	fetched := imap.NewMessage(seqNum, items)
	fetched.Uid = msg.Uid
	fetched.Flags = mailfmt.Flags(m)

	for _, item := range items {
		switch item {
		case imap.FetchEnvelope:
			fetched.Envelope = Envelope(m)
		case imap.FetchBody, imap.FetchBodyStructure:
			fetched.BodyStructure = BodyStructure(m, item == imap.FetchBodyStructure)
		case imap.FetchFlags:
			// Flags already set above
		case imap.FetchInternalDate:
			if !m.Date.IsZero() {
				fetched.InternalDate = m.Date
			} else {
				fetched.InternalDate = time.Now()
			}
		case imap.FetchRFC822Size:
			fetched.Size = uint32(len(mailfmt.Message(m, "")))
		default:
			if section, err := imap.ParseBodySectionName(item); err == nil {
				fetched.Body[section] = bodySection(m, section)
			}
		}
	}

	return fetched, nil
}

// Envelope converts the mail into an IMAP envelope. Sender and reply-to
// reuse the from addresses, matching the rendered ENVELOPE fragment.
func Envelope(m *mail.Mail) *imap.Envelope {
	if m == nil {
		m = &mail.Mail{}
	}
	from := addresses(m.From.Addresses())
	return &imap.Envelope{
		Date:      m.Date,
		Subject:   m.Subject,
		From:      from,
		Sender:    from,
		ReplyTo:   from,
		To:        addresses(m.To.Addresses()),
		Cc:        addresses(m.Cc.Addresses()),
		Bcc:       addresses(m.Bcc.Addresses()),
		MessageId: m.MessageID,
	}
}

// BodyStructure converts the mail's content shape into an IMAP body
// structure: mixed around attachments, alternative for the text/html pair,
// a bare text leaf otherwise.
func BodyStructure(m *mail.Mail, extended bool) *imap.BodyStructure {
	if m == nil {
		m = &mail.Mail{}
	}

	inner := textStructure(m, extended)
	if len(m.Attachments) == 0 {
		return inner
	}

	bs := &imap.BodyStructure{
		MIMEType:    "multipart",
		MIMESubType: "mixed",
		Parts:       []*imap.BodyStructure{inner},
		Extended:    extended,
	}
	for _, att := range m.Attachments {
		bs.Parts = append(bs.Parts, attachmentStructure(att, extended))
	}
	return bs
}

func textStructure(m *mail.Mail, extended bool) *imap.BodyStructure {
	switch {
	case m.Text != "" && m.HTML != "":
		return &imap.BodyStructure{
			MIMEType:    "multipart",
			MIMESubType: "alternative",
			Parts: []*imap.BodyStructure{
				textLeaf("plain", m.Text, extended),
				textLeaf("html", m.HTML, extended),
			},
			Extended: extended,
		}
	case m.HTML != "":
		return textLeaf("html", m.HTML, extended)
	default:
		return textLeaf("plain", m.Text, extended)
	}
}

func textLeaf(subtype, content string, extended bool) *imap.BodyStructure {
	return &imap.BodyStructure{
		MIMEType:    "text",
		MIMESubType: subtype,
		Params:      map[string]string{"charset": "utf-8"},
		Encoding:    "base64",
		Size:        uint32(len(mailfmt.Encode(content))),
		Extended:    extended,
	}
}

func attachmentStructure(att mail.Attachment, extended bool) *imap.BodyStructure {
	mediaType, subtype, _ := strings.Cut(strings.ToLower(att.ContentType), "/")
	return &imap.BodyStructure{
		MIMEType:          mediaType,
		MIMESubType:       subtype,
		Params:            map[string]string{"name": att.Filename},
		Encoding:          "base64",
		Size:              uint32(att.Size),
		Disposition:       "attachment",
		DispositionParams: map[string]string{"filename": att.Filename},
		Extended:          extended,
	}
}

// addresses converts the valid addresses, dropping entries without both a
// local part and a domain.
func addresses(addrs []mail.Address) []*imap.Address {
	out := make([]*imap.Address, 0, len(addrs))
	for _, a := range addrs {
		local, domain, found := strings.Cut(a.Address, "@")
		if !found || local == "" || domain == "" {
			continue
		}
		out = append(out, &imap.Address{
			PersonalName: a.Name,
			MailboxName:  local,
			HostName:     domain,
		})
	}
	return out
}

// bodySection renders the requested section from the same formatting the
// raw export uses.
func bodySection(m *mail.Mail, section *imap.BodySectionName) imap.Literal {
	var buf bytes.Buffer
	switch section.Specifier {
	case imap.HeaderSpecifier:
		buf.WriteString(mailfmt.Headers(m, ""))
	case imap.TextSpecifier:
		buf.WriteString(mailfmt.Body(m, ""))
	default:
		buf.WriteString(mailfmt.Message(m, ""))
	}
	return bytes.NewReader(buf.Bytes())
}
