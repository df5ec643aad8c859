package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"voyago/pkg/logger"

	"github.com/IBM/sarama"
)

// EventConsumer interface defines the contract for consuming travel events
type EventConsumer interface {
	Start(ctx context.Context, numWorkers int) error
	Stop() error
}

// ConsumerConfig contains configuration for the Kafka event consumer
type ConsumerConfig struct {
	Brokers        []string
	GroupID        string
	Topics         []string
	SessionTimeout time.Duration
	Heartbeat      time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig(brokers []string, groupID, topic string) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topics:         []string{topic},
		SessionTimeout: 30 * time.Second,
		Heartbeat:      3 * time.Second,
		MaxRetries:     3,
		RetryBackoff:   time.Second,
	}
}

// KafkaEventConsumer drains travel events and dispatches notifications
type KafkaEventConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	emails        EmailService
	log           *logger.Logger
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

// NewKafkaEventConsumer creates a new Kafka event consumer
func NewKafkaEventConsumer(config *ConsumerConfig, emails EmailService) (*KafkaEventConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.Heartbeat
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &KafkaEventConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		emails:        emails,
		log:           logger.GetDefault(),
	}, nil
}

// Start launches the consumer workers.
func (c *KafkaEventConsumer) Start(ctx context.Context, numWorkers int) error {
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	go c.handleErrors()

	for i := 0; i < numWorkers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			c.runWorker(runCtx, workerID)
		}(i)
	}

	c.log.InfoWithContext(ctx, "event consumer workers started", map[string]interface{}{
		"workers": numWorkers,
		"topics":  c.config.Topics,
	})
	return nil
}

func (c *KafkaEventConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &eventGroupHandler{consumer: c, workerID: workerID}

	for {
		select {
		case <-ctx.Done():
			return
		default:
			if err := c.consumerGroup.Consume(ctx, c.config.Topics, handler); err != nil {
				c.log.ErrorWithContext(ctx, "consumer worker error", err, map[string]interface{}{
					"worker": workerID,
				})
				time.Sleep(time.Second)
			}
		}
	}
}

func (c *KafkaEventConsumer) handleErrors() {
	for err := range c.consumerGroup.Errors() {
		c.log.ErrorWithContext(context.Background(), "consumer group error", err, nil)
	}
}

// Stop shuts the workers down and closes the group.
func (c *KafkaEventConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()

	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type eventGroupHandler struct {
	consumer *KafkaEventConsumer
	workerID int
}

func (h *eventGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				h.consumer.log.ErrorWithContext(session.Context(), "failed to process travel event", err, map[string]interface{}{
					"worker": h.workerID,
					"offset": message.Offset,
				})
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *eventGroupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event TravelEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal travel event: %w", err)
	}

	return h.dispatchWithRetry(ctx, &event)
}

func (h *eventGroupHandler) dispatchWithRetry(ctx context.Context, event *TravelEvent) error {
	maxRetries := h.consumer.config.MaxRetries
	backoff := h.consumer.config.RetryBackoff

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = h.dispatch(ctx, event)
		if err == nil {
			return nil
		}
		if attempt == maxRetries {
			break
		}

		select {
		case <-time.After(backoff * time.Duration(1<<attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (h *eventGroupHandler) dispatch(ctx context.Context, event *TravelEvent) error {
	switch event.Type {
	case EventBookingCreated:
		return h.consumer.emails.SendBookingConfirmation(ctx, event)
	case EventBookingCancelled:
		return h.consumer.emails.SendCancellationNotice(ctx, event)
	default:
		h.consumer.log.InfoWithContext(ctx, "ignoring unknown event type", map[string]interface{}{
			"type": string(event.Type),
		})
		return nil
	}
}
