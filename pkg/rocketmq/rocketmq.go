// Package rocketmq publishes activity events to a RocketMQ 5 topic.
package rocketmq

import (
	"Chirp/config"
	"Chirp/pkg/log"
	"Chirp/types"
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	rmq_client "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/apache/rocketmq-clients/golang/v5/credentials"
	"go.uber.org/zap"
)

const sendTimeout = 3 * time.Second

func init() {
	// the client writes its own log file unless told otherwise
	_ = os.Setenv("mq.consoleAppender.enabled", "true")
	_ = os.Setenv("rocketmq.client.logLevel", "error")
	rmq_client.ResetLogger()
}

type sender interface {
	Send(ctx context.Context, msg *rmq_client.Message) ([]*rmq_client.SendReceipt, error)
}

// Publisher sends each event as a JSON message tagged with the event type.
// A Publisher without a producer drops events.
type Publisher struct {
	producer sender
	topic    string
}

// NewPublisher starts a producer when cfg is enabled. Start failures are
// logged and leave the publisher disabled.
func NewPublisher(cfg *config.RocketMQConfig) (*Publisher, func()) {
	if !cfg.Enabled() {
		log.L.Info("rocketmq disabled, activity events are dropped")
		return &Publisher{}, func() {}
	}

	p, err := rmq_client.NewProducer(&rmq_client.Config{
		Endpoint:  cfg.Endpoint,
		NameSpace: cfg.Namespace,
		Credentials: &credentials.SessionCredentials{
			AccessKey:    cfg.AccessKey,
			AccessSecret: cfg.AccessSecret,
		},
	}, rmq_client.WithTopics(cfg.Topic))
	if err != nil {
		log.L.Error("init producer", zap.String("endpoint", cfg.Endpoint), zap.Error(err))
		return &Publisher{}, func() {}
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer", zap.String("endpoint", cfg.Endpoint), zap.Error(err))
		return &Publisher{}, func() {}
	}
	log.L.Info("init producer success", zap.String("topic", cfg.Topic))

	cleanup := func() {
		if err := p.GracefulStop(); err != nil {
			log.L.Warn("stop producer", zap.Error(err))
		}
	}
	return &Publisher{producer: p, topic: cfg.Topic}, cleanup
}

// Publish sends event in the background. The request context is not used so
// delivery outlives the request.
func (p *Publisher) Publish(_ context.Context, event *types.ActivityEvent) {
	if p.producer == nil || event == nil {
		return
	}
	msg, err := p.message(event)
	if err != nil {
		log.L.Error("encode activity event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	go p.send(msg)
}

func (p *Publisher) message(event *types.ActivityEvent) (*rmq_client.Message, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	msg := &rmq_client.Message{
		Topic: p.topic,
		Body:  body,
	}
	msg.SetTag(event.Type)
	msg.SetKeys(strconv.FormatInt(event.ActorID, 10))
	return msg, nil
}

func (p *Publisher) send(msg *rmq_client.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	receipts, err := p.producer.Send(ctx, msg)
	if err != nil {
		log.L.Error("send activity event", zap.String("topic", msg.Topic), zap.Error(err))
		return
	}
	for _, r := range receipts {
		log.L.Debug("send activity event success", zap.String("msg_id", r.MessageID))
	}
}
