package rocketmq

import (
	"context"
	"fmt"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// Publisher sends a message body to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, body []byte) error
	Close() error
}

type Producer struct {
	producer rocketmq.Producer
}

// InitProducer starts a rocketmq producer, or a LogPublisher when no name server is configured.
func InitProducer(cfg *config.RocketMQConfig) (Publisher, error) {
	if cfg == nil || len(cfg.NameServer) == 0 {
		log.L.Warn("rocketmq nameserver not configured, messages will only be logged")
		return &LogPublisher{}, nil
	}

	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNsResolver(primitive.NewPassthroughResolver(cfg.NameServer)),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		return nil, fmt.Errorf("new rocketmq producer: %w", err)
	}
	if err = p.Start(); err != nil {
		return nil, fmt.Errorf("start rocketmq producer: %w", err)
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	return &Producer{producer: p}, nil
}

func (p *Producer) Publish(ctx context.Context, topic, key string, body []byte) error {
	msg := primitive.NewMessage(topic, body)
	if key != "" {
		msg.WithKeys([]string{key})
	}
	res, err := p.producer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("message sent", zap.String("topic", topic), zap.String("msgId", res.MsgID))
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Shutdown()
}

// LogPublisher writes messages to the log instead of a broker.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic, key string, body []byte) error {
	log.L.Info("message published",
		zap.String("topic", topic),
		zap.String("key", key),
		zap.ByteString("body", body),
	)
	return nil
}

func (LogPublisher) Close() error { return nil }
