package crypto

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-deliveries/internal/adapter"
	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/models"
)

// TransitGateway implements [Gateway] and [ActivationState] over a
// [adapter.TransitAdapter].
//
// Construction starts exactly one activation attempt in the background:
// mount the transit engine, then create the encryption key and the signature
// key. The outcome is written once, before done is closed. A failed
// activation is logged and leaves the gateway degraded; calls still go to the
// engine, so they succeed as soon as the engine is usable.
type TransitGateway struct {
	transit adapter.TransitAdapter

	encryptionKey    string
	signatureKey     string
	signatureKeyType string
	timeout          time.Duration

	done          chan struct{}
	activationErr error

	logger *logger.Logger
}

// NewTransitGateway returns a gateway and starts its activation. It never
// blocks on the engine.
func NewTransitGateway(transit adapter.TransitAdapter, cfg config.Vault, logger *logger.Logger) *TransitGateway {
	g := &TransitGateway{
		transit:          transit,
		encryptionKey:    cfg.EncryptionKey,
		signatureKey:     cfg.SignatureKey,
		signatureKeyType: cfg.SignatureKeyType,
		timeout:          cfg.Timeout,
		done:             make(chan struct{}),
		logger:           logger,
	}

	go g.activate()

	return g
}

func (g *TransitGateway) activate() {
	defer close(g.done)

	ctx, cancel := g.withTimeout(context.Background())
	defer cancel()

	err := g.transit.EnableEngine(ctx)
	if err == nil {
		err = g.transit.CreateKey(ctx, g.encryptionKey, "")
	}
	if err == nil && g.signatureKey != "" {
		err = g.transit.CreateKey(ctx, g.signatureKey, g.signatureKeyType)
	}

	if err != nil {
		g.activationErr = fmt.Errorf("%w: %w", ErrActivationFailed, err)
		g.logger.Warn().Err(err).
			Str("func", "TransitGateway.activate").
			Str("kind", app.KindOf(err)).
			Msg("transit engine activation failed, gateway is degraded")
		return
	}

	g.logger.Info().
		Str("func", "TransitGateway.activate").
		Str("encryption_key", g.encryptionKey).
		Str("signature_key", g.signatureKey).
		Msg("transit engine activated")
}

// Activated implements [ActivationState].
func (g *TransitGateway) Activated() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Degraded implements [ActivationState].
func (g *TransitGateway) Degraded() bool {
	return g.ActivationErr() != nil
}

// ActivationErr implements [ActivationState].
func (g *TransitGateway) ActivationErr() error {
	if !g.Activated() {
		return nil
	}
	return g.activationErr
}

// AwaitActivation blocks until activation has finished or ctx is done and
// returns the activation failure, if any.
func (g *TransitGateway) AwaitActivation(ctx context.Context) error {
	select {
	case <-g.done:
		return g.activationErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Encrypt implements [Gateway].
func (g *TransitGateway) Encrypt(ctx context.Context, secret string) (models.CipherText, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	cipher, err := g.transit.Encrypt(ctx, g.encryptionKey, []byte(secret))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "TransitGateway.Encrypt").
			Bool("degraded", g.Degraded()).
			Msg("encrypt failed")
		return "", categorize(err)
	}

	return cipher, nil
}

// Decrypt implements [Gateway]. A plaintext that is not valid UTF-8 is
// reported as app.ErrInvalidCipherText.
func (g *TransitGateway) Decrypt(ctx context.Context, cipher models.CipherText) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	plaintext, err := g.transit.Decrypt(ctx, g.encryptionKey, cipher)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "TransitGateway.Decrypt").
			Bool("degraded", g.Degraded()).
			Msg("decrypt failed")
		return "", categorize(err)
	}

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: %w", app.ErrInvalidCipherText, ErrPlaintextNotUTF8)
	}

	return string(plaintext), nil
}

func (g *TransitGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// categorize makes sure err carries a category. The adapter already
// classifies its errors; anything else is internal.
func categorize(err error) error {
	if errors.Is(err, app.ErrInternal) || app.KindOf(err) != app.KindInternal {
		return err
	}
	return fmt.Errorf("%w: %w", app.ErrInternal, err)
}
