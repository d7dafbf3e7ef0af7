package validate

import (
	"net/mail"
	"strings"
)

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

func Email(value string) bool {
	if !Required(value) {
		return false
	}
	_, err := mail.ParseAddress(strings.TrimSpace(value))
	return err == nil
}
