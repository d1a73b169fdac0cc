package mailfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

func TestFlags(t *testing.T) {
	tests := []struct {
		name string
		mail *mail.Mail
		want []string
	}{
		{"nil mail", nil, []string{}},
		{"unset", &mail.Mail{}, []string{}},
		{"read", &mail.Mail{Read: true}, []string{`\Seen`}},
		{"read saved answered", &mail.Mail{Read: true, Saved: true, Answered: true},
			[]string{`\Seen`, `\Flagged`, `\Answered`}},
		{"deleted draft", &mail.Mail{Deleted: true, Draft: true},
			[]string{`\Deleted`, `\Draft`}},
		{"all", &mail.Mail{Read: true, Saved: true, Deleted: true, Draft: true, Answered: true},
			[]string{`\Seen`, `\Flagged`, `\Deleted`, `\Draft`, `\Answered`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flags(tt.mail))
		})
	}
}

func TestFlagList(t *testing.T) {
	assert.Equal(t, "()", FlagList(&mail.Mail{}))
	assert.Equal(t, `(\Seen \Flagged)`, FlagList(&mail.Mail{Read: true, Saved: true}))
}
