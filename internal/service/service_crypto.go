package service

import (
	"context"

	"github.com/MKhiriev/go-deliveries/internal/crypto"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/models"
)

type cryptoService struct {
	gateway crypto.Gateway

	logger *logger.Logger
}

func NewCryptoService(gateway crypto.Gateway, logger *logger.Logger) CryptoService {
	return &cryptoService{gateway: gateway, logger: logger}
}

func (s *cryptoService) Encrypt(ctx context.Context, plaintext string) (models.CipherText, error) {
	return s.gateway.Encrypt(ctx, plaintext)
}

func (s *cryptoService) Decrypt(ctx context.Context, cipher models.CipherText) (string, error) {
	return s.gateway.Decrypt(ctx, cipher)
}
