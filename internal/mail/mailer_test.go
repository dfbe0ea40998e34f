package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSenderAndPassword(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	_, err = New(Config{Sender: "sender@example.com"})
	assert.Error(t, err)

	_, err = New(Config{AppPassword: "secret"})
	assert.Error(t, err)
}

func TestNew_AppliesDefaults(t *testing.T) {
	m, err := New(Config{Sender: "sender@example.com", AppPassword: "secret"})
	require.NoError(t, err)

	assert.Equal(t, defaultHost, m.cfg.Host)
	assert.Equal(t, defaultSenderName, m.cfg.SenderName)
	assert.Equal(t, "sender@example.com", m.cfg.ReplyTo)
}

func TestNew_KeepsExplicitSettings(t *testing.T) {
	m, err := New(Config{
		Sender:      "sender@example.com",
		AppPassword: "secret",
		Host:        "smtp.example.com",
		SenderName:  "Readiness Desk",
		ReplyTo:     "replies@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", m.cfg.Host)
	assert.Equal(t, "Readiness Desk", m.cfg.SenderName)
	assert.Equal(t, "replies@example.com", m.cfg.ReplyTo)
}

func TestNewMsg_RejectsBadRecipient(t *testing.T) {
	m, err := New(Config{Sender: "sender@example.com", AppPassword: "secret"})
	require.NoError(t, err)

	_, err = m.newMsg("not-an-address", "subject")
	assert.Error(t, err)
}

func TestNewMsg_ValidRecipient(t *testing.T) {
	m, err := New(Config{Sender: "sender@example.com", AppPassword: "secret"})
	require.NoError(t, err)

	msg, err := m.newMsg("user@example.com", "Your Life Minus Work verification code")
	require.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hi Ada,", greeting("Ada"))
	assert.Equal(t, "Hi there,", greeting(""))
}
