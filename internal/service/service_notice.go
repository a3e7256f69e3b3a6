package service

import (
	"context"

	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/messaging"
)

type noticeService struct {
	subscriber messaging.Subscriber

	logger *logger.Logger
}

func NewNoticeService(subscriber messaging.Subscriber, logger *logger.Logger) NoticeService {
	return &noticeService{subscriber: subscriber, logger: logger}
}

func (s *noticeService) Subscribe(ctx context.Context) (messaging.Subscription, error) {
	return s.subscriber.Subscribe(ctx)
}
