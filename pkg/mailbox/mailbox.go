// Package mailbox maps between account addresses and mailbox identities.
// Both directions are pure string transforms; neither validates that the
// resulting account or folder exists.
package mailbox

import "strings"

// Config holds the configuration for mailbox name mapping.
type Config struct {
	// DomainSuffix is the top level mail domain accounts live under.
	DomainSuffix string
	// AdminUser owns the bare domain; every other user gets a per user
	// subdomain.
	AdminUser string
	// SpecialFolders are the folder prefixes stripped from a mailbox path
	// before the remainder is treated as a target mailbox name.
	SpecialFolders []string
}

// DefaultConfig returns a default mapping configuration.
func DefaultConfig() Config {
	return Config{
		DomainSuffix:   "localhost",
		AdminUser:      "admin",
		SpecialFolders: []string{"INBOX", "Sent-Messages", "Drafts", "Trash"},
	}
}

// AccountToBox returns the mailbox name for an account address: the local
// part before the first @, dots and plus addressing preserved verbatim. An
// input without @ is returned unchanged.
func AccountToBox(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// BoxToAccount resolves a mailbox path to the account address it targets.
// A leading special folder segment followed by a slash is stripped, then
// the domain derived from username is appended: the admin user maps to the
// bare domain suffix, everyone else to a per user subdomain.
func (c Config) BoxToAccount(username, mailboxPath string) string {
	box := mailboxPath
	for _, folder := range c.SpecialFolders {
		if rest, ok := strings.CutPrefix(mailboxPath, folder+"/"); ok {
			box = rest
			break
		}
	}

	domain := c.DomainSuffix
	if username != c.AdminUser {
		domain = username + "." + c.DomainSuffix
	}
	return box + "@" + domain
}
