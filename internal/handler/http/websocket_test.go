package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/messaging"
	"github.com/MKhiriev/go-deliveries/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSubscription struct {
	notices chan models.DeliveryNotice
	closed  atomic.Bool
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{notices: make(chan models.DeliveryNotice, 4)}
}

func (s *fakeSubscription) Notices() <-chan models.DeliveryNotice { return s.notices }

func (s *fakeSubscription) Close() error {
	s.closed.Store(true)
	return nil
}

var _ messaging.Subscription = (*fakeSubscription)(nil)

func dialNotices(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/messages"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestStreamNotices_RelaysCipherText(t *testing.T) {
	router, mocks := newTestRouter(t)
	sub := newFakeSubscription()
	mocks.notices.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialNotices(t, srv)

	sub.notices <- models.DeliveryNotice{DeliveryID: "d1", Payload: "vault:v1:one"}
	sub.notices <- models.DeliveryNotice{DeliveryID: "d2", Payload: "vault:v1:two"}

	for _, want := range []string{"vault:v1:one", "vault:v1:two"} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		kind, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, websocket.TextMessage, kind)
		assert.Equal(t, want, string(data))
	}
}

func TestStreamNotices_ClientDisconnectClosesSubscription(t *testing.T) {
	router, mocks := newTestRouter(t)
	sub := newFakeSubscription()
	mocks.notices.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialNotices(t, srv)
	require.NoError(t, conn.Close())

	assert.Eventually(t, sub.closed.Load, 2*time.Second, 10*time.Millisecond)
}

func TestStreamNotices_StreamEndClosesSession(t *testing.T) {
	router, mocks := newTestRouter(t)
	sub := newFakeSubscription()
	mocks.notices.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialNotices(t, srv)
	close(sub.notices)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestStreamNotices_SubscribeFailure(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.notices.EXPECT().Subscribe(gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", app.ErrBackendUnavailable, errors.New("dial tcp: connection refused")))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/ws/messages", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to process request: BackendUnavailable(dial tcp: connection refused)", rec.Body.String())
}
