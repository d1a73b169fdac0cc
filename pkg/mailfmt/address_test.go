package mailfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freeflowuniverse/heromail/pkg/mail"
)

func TestAddressListEmpty(t *testing.T) {
	assert.Equal(t, "NIL", AddressList(nil))
	assert.Equal(t, "NIL", AddressList([]mail.Address{}))
}

func TestAddressListSingle(t *testing.T) {
	got := AddressList([]mail.Address{{Name: "John Doe", Address: "john@example.com"}})
	assert.Equal(t, `("John Doe" NIL "john" "example.com")`, got)
}

func TestAddressListEscapesQuotes(t *testing.T) {
	got := AddressList([]mail.Address{{Name: `John "Johnny" Doe`, Address: "john@example.com"}})
	assert.Equal(t, `("John \"Johnny\" Doe" NIL "john" "example.com")`, got)
}

func TestAddressListKeepsBackslashes(t *testing.T) {
	got := AddressList([]mail.Address{{Name: `back\slash`, Address: "a@b.c"}})
	assert.Equal(t, `("back\slash" NIL "a" "b.c")`, got)
}

func TestAddressListEmptyName(t *testing.T) {
	got := AddressList([]mail.Address{{Address: "pol@example.com"}})
	assert.Equal(t, `("" NIL "pol" "example.com")`, got)
}

func TestAddressListMultiple(t *testing.T) {
	got := AddressList([]mail.Address{
		{Name: "A", Address: "a@one.org"},
		{Name: "B", Address: "b@two.org"},
	})
	assert.Equal(t, `("A" NIL "a" "one.org") ("B" NIL "b" "two.org")`, got)
}

func TestAddressListDropsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		addrs []mail.Address
		want  string
	}{
		{"no at sign", []mail.Address{{Name: "X", Address: "nodomain"}}, "NIL"},
		{"empty domain", []mail.Address{{Name: "X", Address: "user@"}}, "NIL"},
		{"empty local", []mail.Address{{Name: "X", Address: "@domain"}}, "NIL"},
		{"empty address", []mail.Address{{Name: "X"}}, "NIL"},
		{"invalid among valid", []mail.Address{
			{Name: "X", Address: "nodomain"},
			{Name: "Y", Address: "y@ok.org"},
		}, `("Y" NIL "y" "ok.org")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddressList(tt.addrs))
		})
	}
}

func TestAddressListSplitsOnFirstAt(t *testing.T) {
	got := AddressList([]mail.Address{{Address: "user@left@right"}})
	assert.Equal(t, `("" NIL "user" "left@right")`, got)
}
