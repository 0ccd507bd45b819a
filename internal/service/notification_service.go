package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/repairshop-service/internal/config"
	"github.com/spec-kit/repairshop-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
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
	n.dispatcher.Subscribe(events.EventCustomerCreated, n.handleCustomerSaved)
	n.dispatcher.Subscribe(events.EventCustomerUpdated, n.handleCustomerSaved)
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketSaved)
	n.dispatcher.Subscribe(events.EventTicketUpdated, n.handleTicketSaved)
	n.dispatcher.Subscribe(events.EventTicketCompleted, n.handleTicketCompleted)
}

func (n *NotificationService) handleCustomerSaved(ctx context.Context, event events.Event) error {
	n.logger.Info("CustomerSaved",
		zap.String("type", string(event.Type)),
		zap.Int64("customer_id", event.EntityID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketSaved(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketSaved",
		zap.String("type", string(event.Type)),
		zap.Int64("ticket_id", event.EntityID),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTicketCompleted(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCompleted",
		zap.Int64("ticket_id", event.EntityID),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
