// Package kafka publishes user-facing notifications to the platform's
// notification topic. Consumers downstream fan the event out to in-app
// feeds and push channels; this adapter only guarantees the publish.
package kafka

import (
	"context"
	"encoding/json"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// notificationEvent is the wire shape of one notification message.
type notificationEvent struct {
	UserID   string            `json:"userId"`
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Link     string            `json:"link,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Notifier implements ports.Notifier on top of a kafka-go writer.
// Messages are keyed by user ID so one user's notifications stay ordered
// within a partition.
type Notifier struct {
	writer *kafka.Writer
}

// NewNotifier creates a notifier publishing to the given brokers and topic.
func NewNotifier(brokers []string, topic string) *Notifier {
	return &Notifier{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// Notify publishes one notification event.
func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notificationEvent{
		UserID:   notification.UserID.String(),
		Type:     notification.Type,
		Title:    notification.Title,
		Message:  notification.Message,
		Link:     notification.Link,
		Metadata: notification.Metadata,
	})
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.UserID.String()),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
