package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"

	kafka "github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// messageWriter is the part of *kafka.Writer the log uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaLog publishes events as JSON keyed by "<kind>#<entity_id>", so one
// entity's events stay in one partition.
type KafkaLog struct {
	writer      messageWriter
	topic       string
	maxAttempts int
	baseDelay   time.Duration
}

var _ interfaces.IActivityLog = (*KafkaLog)(nil)

func NewKafkaLog(brokers, topic string) *KafkaLog {
	addrs := strings.Split(brokers, ",")
	for i := range addrs {
		addrs[i] = strings.TrimSpace(addrs[i])
	}
	return &KafkaLog{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(addrs...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		topic:       topic,
		maxAttempts: 3,
		baseDelay:   100 * time.Millisecond,
	}
}

func (l *KafkaLog) Append(ctx context.Context, ev entities.ActivityEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal activity event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(string(ev.Kind) + "#" + ev.EntityID),
		Value: data,
		Time:  ev.At,
	}

	var lastErr error
	for attempt := 0; attempt < l.maxAttempts; attempt++ {
		if lastErr = l.writer.WriteMessages(ctx, msg); lastErr == nil {
			return nil
		}
		if attempt == l.maxAttempts-1 {
			break
		}
		delay := l.baseDelay << attempt
		log.Printf("[activity][kafka] retry %d/%d topic=%s after %v: %v", attempt+1, l.maxAttempts, l.topic, delay, lastErr)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}
	return fmt.Errorf("publish to %s after %d attempts: %w", l.topic, l.maxAttempts, lastErr)
}

func (l *KafkaLog) Close() error {
	return l.writer.Close()
}
