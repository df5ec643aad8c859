package notifications

import (
	"context"
	"fmt"

	"voyago/internal/shared/config"
	"voyago/pkg/logger"
)

const defaultConsumerWorkers = 3

// Service owns the Kafka producer/consumer lifecycle for travel events.
// When Kafka is disabled the service is inert and Publisher() returns an
// adapter that drops events.
type Service struct {
	producer *KafkaEventProducer
	consumer *KafkaEventConsumer
	adapter  *BookingEventAdapter
	log      *logger.Logger
}

// NewService creates a new notification service instance
func NewService(cfg *config.Config) (*Service, error) {
	svc := &Service{log: logger.GetDefault()}

	if !cfg.Kafka.Enabled {
		svc.adapter = NewBookingEventAdapter(nil)
		return svc, nil
	}

	producer, err := NewKafkaEventProducer(
		DefaultKafkaProducerConfig(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event producer: %w", err)
	}

	consumer, err := NewKafkaEventConsumer(
		DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.EventsTopic),
		NewEmailService(cfg.Email))
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to initialize event consumer: %w", err)
	}

	svc.producer = producer
	svc.consumer = consumer
	svc.adapter = NewBookingEventAdapter(producer)
	return svc, nil
}

// Publisher returns the adapter the booking services publish through.
func (s *Service) Publisher() *BookingEventAdapter {
	return s.adapter
}

// Start launches the consumer workers.
func (s *Service) Start(ctx context.Context) error {
	if s.consumer == nil {
		s.log.InfoWithContext(ctx, "kafka disabled, notification consumer not started", nil)
		return nil
	}
	return s.consumer.Start(ctx, defaultConsumerWorkers)
}

// Stop shuts down the consumer and producer.
func (s *Service) Stop() error {
	var firstErr error
	if s.consumer != nil {
		if err := s.consumer.Stop(); err != nil {
			firstErr = err
		}
	}
	if s.producer != nil {
		if err := s.producer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
