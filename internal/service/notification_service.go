package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/laundry-service/internal/config"
	"github.com/spec-kit/laundry-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.PushConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.PushConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEmployeeCreated, n.handleEmployeeChange)
	n.dispatcher.Subscribe(events.EventEmployeeUpdated, n.handleEmployeeChange)
	n.dispatcher.Subscribe(events.EventEmployeeDeleted, n.handleEmployeeChange)
	n.dispatcher.Subscribe(events.EventMachineStatusChanged, n.handleMachineStatusChanged)
}

func (n *NotificationService) handleEmployeeChange(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.String("branch_id", event.BranchID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleMachineStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("MachineStatusChanged", zap.String("branch_id", event.BranchID), zap.Any("payload", event.Payload))
	n.sendWebPushNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebPushNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.PrivateKey) == "" {
		return
	}
	n.logger.Debug("sendWebPushNotificationStub",
		zap.String("branch_id", event.BranchID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
