package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safarsaathi/config"
	"safarsaathi/models"
)

func TestLeadMailer(t *testing.T) {
	t.Run("Disabled without SMTP host", func(t *testing.T) {
		m := NewLeadMailer(config.SMTPConfig{}, "no-reply@safarsaathi.in", "sales@safarsaathi.in")
		assert.False(t, m.Enabled())
		assert.NoError(t, m.SendLeadNotification(models.Lead{ParentName: "Anjali Patel"}))
	})

	t.Run("Disabled without sales address", func(t *testing.T) {
		m := NewLeadMailer(config.SMTPConfig{Host: "smtp.example.com", Port: 587}, "no-reply@safarsaathi.in", "")
		assert.False(t, m.Enabled())
	})

	t.Run("Enabled with full configuration", func(t *testing.T) {
		m := NewLeadMailer(config.SMTPConfig{Host: "smtp.example.com", Port: 587}, "no-reply@safarsaathi.in", "sales@safarsaathi.in")
		assert.True(t, m.Enabled())
	})
}
