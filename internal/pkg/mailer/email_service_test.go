package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The From header is built from the account email plus a display name.
// A display name like "OctoBot" must never end up as the address itself.
func TestNewEmailServiceKeepsAddressAndNameApart(t *testing.T) {
	svc, ok := NewEmailService("smtp.example.com", 587, "bots@example.com", "secret", "OctoBot").(*emailService)
	require.True(t, ok)

	assert.Equal(t, "bots@example.com", svc.senderEmail)
	assert.Equal(t, "OctoBot", svc.senderName)
	assert.NotEqual(t, svc.senderEmail, svc.senderName)
}
