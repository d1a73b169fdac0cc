// Package mailfmt renders mail documents into the textual wire fragments
// used by IMAP FETCH responses and by raw MIME message export. Every
// function is pure and total: absent input degrades to the protocol
// placeholder instead of an error.
package mailfmt

import (
	"strings"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

// AddressList renders addresses in the IMAP ADDRESS list syntax:
// ("name" NIL "local" "domain") entries joined by single spaces. Addresses
// without both a local part and a domain are dropped silently; when nothing
// valid remains the result is NIL.
func AddressList(addrs []mail.Address) string {
	rendered := make([]string, 0, len(addrs))
	for _, a := range addrs {
		local, domain, ok := splitAddress(a.Address)
		if !ok {
			continue
		}
		rendered = append(rendered,
			"(\""+escapeQuotes(a.Name)+"\" NIL \""+local+"\" \""+domain+"\")")
	}
	if len(rendered) == 0 {
		return "NIL"
	}
	return strings.Join(rendered, " ")
}

// splitAddress splits on the first @. Both halves must be non-empty for
// the address to count as valid.
func splitAddress(addr string) (local, domain string, ok bool) {
	local, domain, found := strings.Cut(addr, "@")
	if !found || local == "" || domain == "" {
		return "", "", false
	}
	return local, domain, true
}

// escapeQuotes escapes double quotes for quoted IMAP strings. Only the
// quote character is escaped.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
