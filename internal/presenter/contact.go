package presenter

import (
	"net/url"
	"strings"
	"unicode"
)

// DialURL builds a tel:// link from the digits of phone. Anything else is dropped.
func DialURL(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	return "tel://" + digits
}

// MailURL builds a mailto: link for email.
func MailURL(email string) string {
	link := url.URL{Scheme: "mailto", Opaque: email}
	return link.String()
}
