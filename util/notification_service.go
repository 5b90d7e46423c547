// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/ZORO77a/Lockey/logging"
	"github.com/ZORO77a/Lockey/model"
)

// NotificationService delivers policy and bypass notices. Delivery is
// log-only; there is no mail transport.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// Register subscribes the service to the events it reports on.
func (n *NotificationService) Register(bus *EventBus) {
	bus.Subscribe(EventPolicyUpdated, func(ctx context.Context, e Event) error {
		cfg, ok := e.Payload.(model.PolicyConfig)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
		}
		return n.NotifyPolicyChange(ctx, cfg)
	})

	bypassHandler := func(ctx context.Context, e Event) error {
		req, ok := e.Payload.(model.BypassRequest)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
		}
		return n.NotifyBypassDecision(ctx, req)
	}
	bus.Subscribe(EventBypassApproved, bypassHandler)
	bus.Subscribe(EventBypassRejected, bypassHandler)
	bus.Subscribe(EventBypassRequested, func(ctx context.Context, e Event) error {
		req, ok := e.Payload.(model.BypassRequest)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Type)
		}
		return n.NotifyAdmins(ctx, fmt.Sprintf("bypass requested by %s from %s to %s",
			req.SubjectID, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02")))
	})
}

func (n *NotificationService) NotifyPolicyChange(ctx context.Context, cfg model.PolicyConfig) error {
	logger.Info("NOTIFICATION: Access policy updated",
		zap.Float64("latitude", cfg.Latitude),
		zap.Float64("longitude", cfg.Longitude),
		zap.Int("radiusMeters", cfg.RadiusMeters),
		zap.String("startTime", cfg.StartTime.String()),
		zap.String("endTime", cfg.EndTime.String()),
		zap.Bool("networkRestricted", cfg.NetworkFingerprint != ""))
	return nil
}

func (n *NotificationService) NotifyBypassDecision(ctx context.Context, req model.BypassRequest) error {
	switch req.Status {
	case model.BypassApproved, model.BypassRejected:
	default:
		return fmt.Errorf("unexpected bypass status: %s", req.Status)
	}
	return n.SendEmail(ctx, req.SubjectID,
		fmt.Sprintf("Your bypass request was %s", req.Status),
		fmt.Sprintf("Request %s for %s to %s was %s by %s.",
			req.ID, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), req.Status, req.DecidedBy))
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.Int("bodyLength", len(body)))
	return nil
}
