package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "sportera/internal/delivery/context"
	"sportera/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultPushTimeout = 10 * time.Second
	localSubscription  = "projects/local/subscriptions/place-events-push"
)

// PushEnvelope is the body Pub/Sub POSTs to push subscribers.
// Local development uses it so a consumer needs no code path of its own.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// pushPublisher delivers events straight to an HTTP endpoint, imitating a push subscription.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
	logger   *slog.Logger
}

// NewPushPublisher creates a publisher that POSTs PushEnvelopes to endpoint.
func NewPushPublisher(endpoint string, timeout time.Duration, logger *slog.Logger) service.PlaceEventPublisher {
	if timeout <= 0 {
		timeout = defaultPushTimeout
	}

	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		now:      time.Now,
		logger:   logger,
	}
}

func (p *pushPublisher) PublishPlaceEvent(ctx context.Context, event *service.PlaceEvent) error {
	msg, err := newPlaceMessage(event)
	if err != nil {
		return err
	}

	var envelope PushEnvelope
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.OrderingKey = msg.orderingKey
	envelope.Message.PublishTime = p.now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s to %s", event.Type, p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint %s answered %d", p.endpoint, resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Place event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", event.Type),
		slog.String("place_id", event.PlaceID),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
