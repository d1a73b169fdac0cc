package mailfmt

import "time"

// internalDateLayout is the IMAP INTERNALDATE form: zero padded day, three
// letter English month, 24 hour clock, signed four digit zone offset.
const internalDateLayout = "02-Jan-2006 15:04:05 -0700"

// envelopeDateLayout is the RFC 5322 date form used inside ENVELOPE.
const envelopeDateLayout = "Mon, 02 Jan 2006 15:04:05 -0700"

// InternalDate renders t in the IMAP INTERNALDATE format. Calendar fields
// and zone offset all derive from t's own location.
func InternalDate(t time.Time) string {
	return t.Format(internalDateLayout)
}
