package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/models"
)

func noticeMessage(t *testing.T, n models.DeliveryNotice) *redis.Message {
	t.Helper()
	payload, err := json.Marshal(n)
	require.NoError(t, err)
	return &redis.Message{Channel: "deliveries", Payload: string(payload)}
}

// ── NewBroker ──

func TestNewBroker_EmptyAddressDrops(t *testing.T) {
	b := NewBroker(config.Messaging{}, logger.Nop())
	defer b.Close()

	require.NoError(t, b.Publish(context.Background(), models.DeliveryNotice{DeliveryID: "d1"}))
	require.NoError(t, b.Ping(context.Background()))

	_, err := b.Subscribe(context.Background())
	assert.ErrorIs(t, err, ErrMessagingDisabled)
}

func TestRedisBroker_UnreachableIsBackendUnavailable(t *testing.T) {
	// nothing listens on the discard port
	b := NewBroker(config.Messaging{RedisAddress: "127.0.0.1:9", Channel: "deliveries"}, logger.Nop())
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := b.Publish(ctx, models.DeliveryNotice{DeliveryID: "d1", Payload: "vault:v1:x"})
	assert.ErrorIs(t, err, app.ErrBackendUnavailable)
	assert.ErrorIs(t, err, ErrPublishing)

	_, err = b.Subscribe(ctx)
	assert.ErrorIs(t, err, ErrSubscribing)

	assert.ErrorIs(t, b.Ping(ctx), app.ErrBackendUnavailable)
}

// ── decodeNotices ──

func TestDecodeNotices_ForwardsAndSkipsMalformed(t *testing.T) {
	in := make(chan *redis.Message, 3)
	out := make(chan models.DeliveryNotice)
	done := make(chan struct{})

	in <- noticeMessage(t, models.DeliveryNotice{DeliveryID: "d1", Payload: "vault:v1:a"})
	in <- &redis.Message{Channel: "deliveries", Payload: "not json"}
	in <- noticeMessage(t, models.DeliveryNotice{DeliveryID: "d2", Payload: "vault:v1:b"})
	close(in)

	go decodeNotices(context.Background(), in, out, done, logger.Nop())

	var got []models.DeliveryNotice
	for n := range out {
		got = append(got, n)
	}

	require.Len(t, got, 2)
	assert.Equal(t, "d1", got[0].DeliveryID)
	assert.Equal(t, models.CipherText("vault:v1:b"), got[1].Payload)
}

func TestDecodeNotices_StopsOnDone(t *testing.T) {
	in := make(chan *redis.Message)
	out := make(chan models.DeliveryNotice)
	done := make(chan struct{})

	finished := make(chan struct{})
	go func() {
		decodeNotices(context.Background(), in, out, done, logger.Nop())
		close(finished)
	}()

	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("decodeNotices did not stop after done was closed")
	}

	_, ok := <-out
	assert.False(t, ok)
}

func TestDecodeNotices_StopsOnContextWhileBlocked(t *testing.T) {
	in := make(chan *redis.Message, 1)
	out := make(chan models.DeliveryNotice)
	ctx, cancel := context.WithCancel(context.Background())

	in <- noticeMessage(t, models.DeliveryNotice{DeliveryID: "d1"})

	finished := make(chan struct{})
	go func() {
		decodeNotices(ctx, in, out, make(chan struct{}), logger.Nop())
		close(finished)
	}()

	// nobody reads out, so the worker is blocked on the send
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("decodeNotices did not stop after context was cancelled")
	}
}

func TestDeliveryNotice_WireFormat(t *testing.T) {
	payload, err := json.Marshal(models.DeliveryNotice{DeliveryID: "d1", Payload: "vault:v1:x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deliveryId":"d1","payload":"vault:v1:x"}`, string(payload))
}
