package mail

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Mail is one mail document as stored and exchanged by this module. Every
// field is optional; formatting treats the zero value as an absent field.
type Mail struct {
	Subject   string    `json:"subject"`
	Date      time.Time `json:"date"`
	MessageID string    `json:"message_id"`

	From *AddressField `json:"from,omitempty"`
	To   *AddressField `json:"to,omitempty"`
	Cc   *AddressField `json:"cc,omitempty"`
	Bcc  *AddressField `json:"bcc,omitempty"`

	Text        string       `json:"text"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`

	Read     bool `json:"read"`
	Saved    bool `json:"saved"`
	Deleted  bool `json:"deleted"`
	Draft    bool `json:"draft"`
	Answered bool `json:"answered"`
}

// AddressField is one address header: the display text plus the structured
// addresses. Only Value is consumed by formatting, Text is never re-derived.
type AddressField struct {
	Text  string    `json:"text"`
	Value []Address `json:"value,omitempty"`
}

// Addresses returns the structured addresses, nil for an absent field.
func (f *AddressField) Addresses() []Address {
	if f == nil {
		return nil
	}
	return f.Value
}

// Address is a single mailbox: an optional display name and the address in
// local@domain form.
type Address struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Attachment represents a mail attachment.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type"`
	Data        string `json:"data,omitempty"` // Base64 encoded binary data
}

// UID returns the Blake2b-192 hash of the mail document in JSON format.
func (m *Mail) UID() (string, error) {
	doc, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal mail: %w", err)
	}

	hash, err := blake2b.New(24, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create Blake2b hash: %w", err)
	}

	if _, err := hash.Write(doc); err != nil {
		return "", fmt.Errorf("failed to write to hash: %w", err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
