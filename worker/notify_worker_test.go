package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safarsaathi/config"
	"safarsaathi/models"
	"safarsaathi/utils"
)

func TestNotifyWorker(t *testing.T) {
	t.Run("Drains leads and stops on cancel", func(t *testing.T) {
		// No SMTP configured: sends are no-ops, which is what we want here.
		mailer := utils.NewLeadMailer(config.SMTPConfig{}, "no-reply@safarsaathi.in", "")
		assert.False(t, mailer.Enabled())

		leads := make(chan models.Lead, 2)
		nw := NewNotifyWorker(mailer, leads)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			nw.Start(ctx)
			close(done)
		}()

		leads <- models.Lead{ID: "lead-1", ParentName: "Anjali Patel"}
		leads <- models.Lead{ID: "lead-2", ParentName: "Rahul Deshpande"}

		// Give the worker a beat to drain, then stop it.
		time.Sleep(50 * time.Millisecond)
		assert.Empty(t, leads)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop after cancel")
		}
	})

	t.Run("Stops when the channel closes", func(t *testing.T) {
		mailer := utils.NewLeadMailer(config.SMTPConfig{}, "no-reply@safarsaathi.in", "")
		leads := make(chan models.Lead)
		nw := NewNotifyWorker(mailer, leads)

		done := make(chan struct{})
		go func() {
			nw.Start(context.Background())
			close(done)
		}()

		close(leads)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop after channel close")
		}
	})
}
