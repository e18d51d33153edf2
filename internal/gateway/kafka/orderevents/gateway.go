package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway publishes committed order events to the order-events topic,
// keyed by order id so per-order ordering is preserved.
type Gateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) ProduceStatusChanged(ctx context.Context, event entities.OrderEvent) error {
	message := FromDomainEvent(event)

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	producerMessage := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	var attempt uint64
	start := time.Now()

	err = g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		_, _, err := g.producer.SendMessage(producerMessage)
		return err
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	ProduceDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		ProduceRetriesTotal.WithLabelValues(g.topic, result).Inc()
	}

	if err != nil {
		return fmt.Errorf("produce order event %s: %w", event.OrderID, err)
	}
	return nil
}
