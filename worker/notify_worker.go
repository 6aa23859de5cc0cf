package worker

import (
	"context"

	"github.com/sirupsen/logrus"

	"safarsaathi/models"
	"safarsaathi/utils"
)

// NotifyWorker drains captured leads off a channel and emails the sales
// inbox for each one. It runs beside the API so a slow or broken mail
// server never delays a submission response. Failures are logged and the
// lead is dropped from the queue; the row itself is already persisted.
type NotifyWorker struct {
	Mailer *utils.LeadMailer
	Leads  <-chan models.Lead
	Logger *logrus.Entry
}

func NewNotifyWorker(mailer *utils.LeadMailer, leads <-chan models.Lead) *NotifyWorker {
	return &NotifyWorker{
		Mailer: mailer,
		Leads:  leads,
		Logger: logrus.WithField("component", "notify-worker"),
	}
}

func (nw *NotifyWorker) Start(ctx context.Context) {
	if !nw.Mailer.Enabled() {
		nw.Logger.Info("Lead notifications disabled, worker idle")
	} else {
		nw.Logger.Info("Notify worker started")
	}

	for {
		select {
		case <-ctx.Done():
			nw.Logger.Info("Notify worker shutting down...")
			return
		case lead, ok := <-nw.Leads:
			if !ok {
				return
			}
			nw.process(lead)
		}
	}
}

func (nw *NotifyWorker) process(lead models.Lead) {
	if err := nw.Mailer.SendLeadNotification(lead); err != nil {
		nw.Logger.WithError(err).WithField("lead_id", lead.ID).Error("Failed to send lead notification")
		return
	}
	if nw.Mailer.Enabled() {
		nw.Logger.WithField("lead_id", lead.ID).Info("Lead notification sent")
	}
}
