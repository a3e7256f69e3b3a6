package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/handler"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, srv)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(), errNothingToServe)
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	addr := freeAddress(t)
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	h := newHTTPServer(router, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- h.RunServer() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	h.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_ShutdownCancelsRequestContexts(t *testing.T) {
	addr := freeAddress(t)
	started := make(chan context.Context, 1)
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- r.Context()
		<-r.Context().Done()
	})
	h := newHTTPServer(router, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())
	go func() { _ = h.RunServer() }()

	go func() {
		for i := 0; i < 50; i++ {
			resp, err := http.Get("http://" + addr + "/")
			if err == nil {
				resp.Body.Close()
				return
			}
			time.Sleep(20 * time.Millisecond)
		}
	}()

	var reqCtx context.Context
	select {
	case reqCtx = <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("request never reached the handler")
	}

	h.Shutdown()

	select {
	case <-reqCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("request context was not cancelled")
	}
}

func TestRun_ListenFailureReturns(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	handlers, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.(*server).run())
}
