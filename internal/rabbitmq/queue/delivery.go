package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/shift-reminder/internal/config"
	"github.com/aliskhannn/shift-reminder/internal/model"
)

const (
	DefaultExchange   = "reminder-exchange"
	DefaultQueue      = "reminder-deliveries"
	DefaultDLQ        = "reminder-deliveries-dlq"
	DefaultRoutingKey = "delivery"
)

// DeliveryEvent is the message published for every persisted delivery record.
type DeliveryEvent struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	ShiftID    string    `json:"shift_id"`
	LeadHours  int       `json:"lead_hours"`
	Channel    string    `json:"channel"`
	Outcome    string    `json:"outcome"`
	ProviderID string    `json:"provider_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// DeliveryQueue publishes delivery events for downstream audit consumers.
type DeliveryQueue struct {
	Publisher  *rabbitmq.Publisher
	routingKey string
}

// NewDeliveryQueue declares the exchange, the audit queue with its dead
// letter queue, and binds them.
func NewDeliveryQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*DeliveryQueue, error) {
	exchangeName := valueOr(cfg.Exchange, DefaultExchange)
	queueName := valueOr(cfg.Queue, DefaultQueue)
	dlqName := valueOr(cfg.DLQ, DefaultDLQ)
	routingKey := valueOr(cfg.RoutingKey, DefaultRoutingKey)

	exchange := rabbitmq.NewExchange(exchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(dlqName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}

	mainQ, err := qm.DeclareQueue(queueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare delivery queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, routingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the delivery queue: %w", err)
	}

	return &DeliveryQueue{
		Publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		routingKey: routingKey,
	}, nil
}

// Publish sends the record as a JSON delivery event.
func (q *DeliveryQueue) Publish(rec model.DeliveryRecord, strategy retry.Strategy) error {
	body, err := encodeEvent(rec)
	if err != nil {
		return err
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

func encodeEvent(rec model.DeliveryRecord) ([]byte, error) {
	body, err := json.Marshal(DeliveryEvent{
		ID:         rec.ID,
		UserID:     rec.UserID,
		ShiftID:    rec.ShiftID,
		LeadHours:  rec.LeadHours,
		Channel:    string(rec.Channel),
		Outcome:    string(rec.Outcome),
		ProviderID: rec.ProviderID,
		Error:      rec.Error,
		CreatedAt:  rec.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery event: %w", err)
	}

	return body, nil
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
