package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/messaging"
	"github.com/MKhiriev/go-deliveries/internal/mock"
	"github.com/MKhiriev/go-deliveries/internal/service"
)

func TestNoticeService_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriber := mock.NewMockSubscriber(ctrl)
	subscription := mock.NewMockSubscription(ctrl)

	subscriber.EXPECT().Subscribe(gomock.Any()).Return(subscription, nil)

	got, err := service.NewNoticeService(subscriber, logger.Nop()).Subscribe(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, subscription, got)
}

func TestNoticeService_SubscribeDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriber := mock.NewMockSubscriber(ctrl)

	subscriber.EXPECT().Subscribe(gomock.Any()).Return(nil, messaging.ErrMessagingDisabled)

	_, err := service.NewNoticeService(subscriber, logger.Nop()).Subscribe(context.Background())
	assert.ErrorIs(t, err, messaging.ErrMessagingDisabled)
}
