package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/models"
)

type redisBroker struct {
	client  *redis.Client
	channel string

	logger *logger.Logger
}

// NewBroker returns a redis-backed [Broker] for cfg, or a dropping broker
// when cfg.RedisAddress is empty. The connection is established lazily.
func NewBroker(cfg config.Messaging, logger *logger.Logger) Broker {
	if cfg.RedisAddress == "" {
		logger.Info().Str("func", "NewBroker").Msg("no redis address configured, delivery notices are dropped")
		return &nopBroker{logger: logger}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &redisBroker{client: client, channel: cfg.Channel, logger: logger}
}

// Publish implements [Publisher].
func (b *redisBroker) Publish(ctx context.Context, notice models.DeliveryNotice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", app.ErrInternal, ErrEncodingNotice, err)
	}

	receivers, err := b.client.Publish(ctx, b.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("%w: %w: %w", app.ErrBackendUnavailable, ErrPublishing, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "redisBroker.Publish").
		Str("delivery_id", notice.DeliveryID).
		Int64("receivers", receivers).
		Msg("notice published")

	return nil
}

// Subscribe implements [Subscriber]. It waits for the subscription to be
// confirmed before returning.
func (b *redisBroker) Subscribe(ctx context.Context) (Subscription, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("%w: %w: %w", app.ErrBackendUnavailable, ErrSubscribing, err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		out:    make(chan models.DeliveryNotice),
		done:   make(chan struct{}),
	}
	go decodeNotices(ctx, pubsub.Channel(), sub.out, sub.done, logger.FromContext(ctx))

	return sub, nil
}

// Ping implements [Broker].
func (b *redisBroker) Ping(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", app.ErrBackendUnavailable, err)
	}
	return nil
}

// Close implements [Broker].
func (b *redisBroker) Close() error {
	return b.client.Close()
}

type redisSubscription struct {
	pubsub *redis.PubSub
	out    chan models.DeliveryNotice

	done      chan struct{}
	closeOnce sync.Once
}

func (s *redisSubscription) Notices() <-chan models.DeliveryNotice {
	return s.out
}

func (s *redisSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}

// decodeNotices forwards decoded messages from in to out until in is closed,
// done is closed or ctx ends. It closes out on return. Messages that are not
// notices are logged and skipped.
func decodeNotices(ctx context.Context, in <-chan *redis.Message, out chan<- models.DeliveryNotice, done <-chan struct{}, log *logger.Logger) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case msg, ok := <-in:
			if !ok {
				return
			}

			var notice models.DeliveryNotice
			if err := json.Unmarshal([]byte(msg.Payload), &notice); err != nil {
				log.Warn().Err(err).
					Str("func", "decodeNotices").
					Str("channel", msg.Channel).
					Msg("skipping malformed notice")
				continue
			}

			select {
			case out <- notice:
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}
}
