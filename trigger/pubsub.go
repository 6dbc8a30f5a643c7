package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/dan13ram/mint-queue/app"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const (
	publishTimeout = 10 * time.Second

	ActionDispatch = "dispatch"
)

var ErrInvalidPush = errors.New("invalid pubsub push message")

// DispatchMessage is published when a new mint request is waiting.
type DispatchMessage struct {
	Action     string    `json:"action"`
	InstanceId string    `json:"instance_id"`
	SentAt     time.Time `json:"sent_at"`
}

// PushEnvelope is the body Pub/Sub posts to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data      []byte `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Publisher is the part of a Pub/Sub topic the trigger needs.
type Publisher interface {
	Publish(ctx context.Context, data []byte) (string, error)
	Stop()
}

type topicPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

func (p *topicPublisher) Publish(ctx context.Context, data []byte) (string, error) {
	result := p.topic.Publish(ctx, &pubsub.Message{Data: data})
	return result.Get(ctx)
}

func (p *topicPublisher) Stop() {
	p.topic.Stop()
	if err := p.client.Close(); err != nil {
		log.Error("[TRIGGER] Error closing pubsub client: ", err)
	}
}

var newPubSubClient = func(ctx context.Context, projectId string, opts ...option.ClientOption) (*pubsub.Client, error) {
	return pubsub.NewClient(ctx, projectId, opts...)
}

// NewTopicPublisher connects to the configured dispatch topic.
func NewTopicPublisher(ctx context.Context) (Publisher, error) {
	config := app.Config.PubSub

	var opts []option.ClientOption
	if config.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(config.CredentialsJSON)))
	}

	client, err := newPubSubClient(ctx, config.ProjectId, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating pubsub client: %w", err)
	}

	log.Info("[TRIGGER] Publishing dispatch triggers to topic ", config.Topic)
	return &topicPublisher{client: client, topic: client.Topic(config.Topic)}, nil
}

// PubSub fans a dispatch trigger out to every instance subscribed to the topic.
type PubSub struct {
	publisher Publisher
	now       func() time.Time
}

func (p *PubSub) Fire(ctx context.Context) error {
	data, err := json.Marshal(DispatchMessage{
		Action:     ActionDispatch,
		InstanceId: app.InstanceId(),
		SentAt:     p.now().UTC(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	id, err := p.publisher.Publish(ctx, data)
	if err != nil {
		return fmt.Errorf("error publishing dispatch trigger: %w", err)
	}
	log.Debug("[TRIGGER] Published dispatch trigger: ", id)
	return nil
}

func NewPubSub(publisher Publisher) *PubSub {
	return &PubSub{publisher: publisher, now: time.Now}
}

// DecodePush extracts the dispatch message from a push request body.
func DecodePush(body []byte) (*DispatchMessage, error) {
	var envelope PushEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPush, err)
	}

	var msg DispatchMessage
	if err := json.Unmarshal(envelope.Message.Data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPush, err)
	}
	if msg.Action != ActionDispatch {
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidPush, msg.Action)
	}
	return &msg, nil
}
