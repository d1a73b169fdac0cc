package mailfmt

import (
	"strings"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

// Canonical flag tokens in their fixed output order.
const (
	FlagSeen     = "\\Seen"
	FlagFlagged  = "\\Flagged"
	FlagDeleted  = "\\Deleted"
	FlagDraft    = "\\Draft"
	FlagAnswered = "\\Answered"
)

// Flags derives the protocol flag tokens from the mail state booleans. The
// output order is fixed: Seen, Flagged, Deleted, Draft, Answered. An unset
// mail yields an empty list, never NIL.
func Flags(m *mail.Mail) []string {
	flags := make([]string, 0, 5)
	if m == nil {
		return flags
	}
	if m.Read {
		flags = append(flags, FlagSeen)
	}
	if m.Saved {
		flags = append(flags, FlagFlagged)
	}
	if m.Deleted {
		flags = append(flags, FlagDeleted)
	}
	if m.Draft {
		flags = append(flags, FlagDraft)
	}
	if m.Answered {
		flags = append(flags, FlagAnswered)
	}
	return flags
}

// FlagList renders the flags as a parenthesized list for FETCH responses.
func FlagList(m *mail.Mail) string {
	return "(" + strings.Join(Flags(m), " ") + ")"
}
