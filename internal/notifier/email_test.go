package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shaharia-lab/uploadnotify/internal/notifier"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"plain address", "email@example.com", true},
		{"subdomain", "user@mail.example.co.uk", true},
		{"plus tag", "user+tag@example.com", true},
		{"display name form", "Jo <jo@example.com>", true},
		{"no at sign", "invalid-email", false},
		{"empty", "", false},
		{"missing domain", "user@", false},
		{"missing local part", "@example.com", false},
		{"bare spaces", "user name@example.com", false},
		{"double at", "a@@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notifier.IsValidEmail(tt.addr))
		})
	}
}
