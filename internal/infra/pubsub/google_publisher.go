package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends place events to a Google Cloud Pub/Sub topic.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.PlaceEventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishPlaceEvent blocks until the server acknowledges the message or ctx ends.
func (p *googlePublisher) PublishPlaceEvent(ctx context.Context, event *service.PlaceEvent) error {
	msg, err := newPlaceMessage(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "publish %s for place %s", event.Type, event.PlaceID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Place event published",
		slog.String("topic", p.topic),
		slog.String("event_type", event.Type),
		slog.String("place_id", event.PlaceID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
