package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client публикует события листа ожидания в topic exchange RabbitMQ
//
// Уведомление — fire-and-forget: отправляется после коммита отмены,
// и его сбой не влияет на результат отмены.
type Client struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      Logger
}

// NewClient создает клиент и объявляет exchange
func NewClient(url, exchange string, log Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrConnection, url, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnection, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnection, exchange, err)
	}

	return &Client{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

// NewDisabledClient создает no-op клиент для окружений без брокера
func NewDisabledClient(log Logger) *Client {
	return &Client{log: log}
}

// NotifySlotFreed публикует событие освобождения слота
func (c *Client) NotifySlotFreed(ctx context.Context, event SlotFreedEvent) error {
	if c.ch == nil {
		c.log.Info("Notifier disabled, skipping slot_freed event: user=%s, court=%d, date=%s, slot=%d",
			event.UserID, event.CourtID, event.Date, event.Slot)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	err = c.ch.PublishWithContext(ctx, c.exchange, RoutingKeySlotFreed, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("%w: publish %s: %v", ErrPublish, RoutingKeySlotFreed, err)
	}

	return nil
}

// Close закрывает канал и соединение с брокером
func (c *Client) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
