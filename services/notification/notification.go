package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sales/dto"
	"sales/models"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventSaleIngested = "sale.ingested"
	publishTimeout    = 5 * time.Second
)

// Service phát sự kiện ra bên ngoài sau khi dữ liệu đã được ghi
type Service interface {
	PublishSaleIngested(ctx context.Context, sale models.Sale) error
	Close() error
}

// SaleIngestedEvent là payload gửi lên exchange
type SaleIngestedEvent struct {
	EventID    string           `json:"event_id"`
	Event      string           `json:"event"`
	OccurredAt time.Time        `json:"occurred_at"`
	Sale       dto.SaleResponse `json:"sale"`
}

// EventBuilder dựng payload sự kiện cho một giao dịch
type EventBuilder struct {
	sale models.Sale
	now  func() time.Time
}

func NewEventBuilder(sale models.Sale) *EventBuilder {
	return &EventBuilder{
		sale: sale,
		now:  time.Now,
	}
}

func (b *EventBuilder) Build() SaleIngestedEvent {
	return SaleIngestedEvent{
		EventID:    uuid.NewString(),
		Event:      EventSaleIngested,
		OccurredAt: b.now().UTC(),
		Sale:       dto.ConvertToSaleResponse(b.sale),
	}
}

// NoopService dùng khi không cấu hình AMQP
type NoopService struct{}

func (NoopService) PublishSaleIngested(context.Context, models.Sale) error { return nil }
func (NoopService) Close() error                                         { return nil }

// AMQPService phát sự kiện lên một topic exchange của RabbitMQ
type AMQPService struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mu       sync.Mutex
}

func NewAMQPService(url, exchange string) (*AMQPService, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPService{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (s *AMQPService) PublishSaleIngested(ctx context.Context, sale models.Sale) error {
	event := NewEventBuilder(sale).Build()
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.channel.PublishWithContext(
		ctx,
		s.exchange,        // exchange
		EventSaleIngested, // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Timestamp:    event.OccurredAt,
			Type:         EventSaleIngested,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (s *AMQPService) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
