package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelops/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const batchTimeout = 10 * time.Millisecond

var ErrDisabled = errors.New("kafka is disabled")

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Decode unmarshals a consumed message value into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

type Client interface {
	Enabled() bool
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Consume(ctx context.Context, consumerGroup, topic string, handler func(ctx context.Context, message kafkaGo.Message))
	Close() error
}

type kafkaClientImpl struct {
	config    *config.Config
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport
	writers   map[string]*kafkaGo.Writer
	mu        sync.Mutex
}

func New(config *config.Config) Client {
	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	log.Info().Bool("enabled", config.Kafka.Enable).Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: config,
		dialer: &kafkaGo.Dialer{
			DualStack:     true,
			SASLMechanism: mechanism,
		},
		transport: &kafkaGo.Transport{
			SASL: mechanism,
		},
		writers: map[string]*kafkaGo.Writer{},
	}
}

func (k *kafkaClientImpl) Enabled() bool {
	return k.config.Kafka.Enable && len(k.config.Kafka.Brokers) > 0
}

// writer returns the topic's writer, creating it on first use. Writers are safe for concurrent use.
func (k *kafkaClientImpl) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	if w, ok := k.writers[topic]; ok {
		return w
	}

	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafkaGo.RequireOne,
		AllowAutoTopicCreation: true,
	}
	k.writers[topic] = w

	return w
}

// SendMessages publishes messages keyed for per-key ordering.
func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	if !k.Enabled() {
		return ErrDisabled
	}

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err := k.writer(topic).WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("Sent messages successfully.")

	return nil
}

// Consume reads topic until ctx is done, handing each message to handler in order. A new
// consumer group starts from the newest offset.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler func(ctx context.Context, message kafkaGo.Message)) {
	if !k.Enabled() || topic == "" {
		log.Warn().Str("topic", topic).Msg("Kafka consumer not started")

		return
	}

	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader.")
		}
	}()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Consumer context done.")

				return
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to read message from Kafka.")

			continue
		}

		handler(ctx, msg)
	}
}

func (k *kafkaClientImpl) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error
	for topic, w := range k.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close writer for %s: %w", topic, err))
		}
	}

	return errors.Join(errs...)
}
