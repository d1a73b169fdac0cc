package mailqueue

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeflowuniverse/heromail/pkg/mail"
	"github.com/freeflowuniverse/heromail/pkg/mailfmt"
)

func TestDocument(t *testing.T) {
	m := &mail.Mail{
		Subject: "Outbound",
		Date:    time.Date(2025, time.May, 20, 16, 45, 0, 0, time.UTC),
		From: &mail.AddressField{Value: []mail.Address{
			{Name: "Pol", Address: "pol@example.com"},
		}},
		To: &mail.AddressField{Value: []mail.Address{
			{Name: "Jan", Address: "jan@example.com"},
		}},
		Text: "ship it",
	}

	key, fields, err := Document(m)
	require.NoError(t, err)

	uid, err := m.UID()
	require.NoError(t, err)
	assert.Equal(t, OutQueue+":"+uid, key)

	var stored mail.Mail
	require.NoError(t, json.Unmarshal([]byte(fields["data"]), &stored))
	assert.Equal(t, m.Subject, stored.Subject)
	assert.Equal(t, m.From, stored.From)

	assert.Equal(t, mailfmt.Message(m, uid), fields["raw"])
	assert.Equal(t, strconv.Itoa(len(fields["raw"])), fields["size"])
}

func TestDocumentDeterministic(t *testing.T) {
	m := &mail.Mail{Subject: "same"}
	key1, _, err := Document(m)
	require.NoError(t, err)
	key2, _, err := Document(m)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)
}

func TestFolderKey(t *testing.T) {
	assert.Equal(t, "mail:in:pol:inbox:abc123", FolderKey("pol", "inbox", "abc123"))
	assert.Equal(t, "mail:in:jan:inbox/work:*", FolderKey("jan", "inbox/work", "*"))
}
