package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-deliveries/internal/app"
)

// operation names the transit call a response belongs to. The same status
// code means different things for different calls.
type operation string

const (
	opEnableEngine operation = "enable engine"
	opCreateKey    operation = "create key"
	opEncrypt      operation = "encrypt"
	opDecrypt      operation = "decrypt"
)

// errorResponse is the error body shape of the Vault HTTP API.
type errorResponse struct {
	Errors []string `json:"errors"`
}

// mapRequestError classifies a failure to get any response at all.
func mapRequestError(op operation, err error) error {
	return fmt.Errorf("%w: %w: %s: %w", app.ErrBackendUnavailable, ErrTransitRequest, op, err)
}

// mapHTTPError converts a non-2xx response into a categorised error and
// returns nil for 2xx. The engine's own message is the innermost cause.
//
//	5xx                      -> app.ErrBackendUnavailable
//	404                      -> app.ErrKeyNotFound
//	400 "not found"          -> app.ErrKeyNotFound
//	400 on decrypt           -> app.ErrInvalidCipherText
//	anything else            -> app.ErrInternal
func mapHTTPError(op operation, resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)
	cause := fmt.Errorf("%w: %s: http %d: %w", ErrTransitResponse, op, status, errors.New(message))

	switch {
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", app.ErrBackendUnavailable, cause)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %w", app.ErrKeyNotFound, cause)
	case status == http.StatusBadRequest && strings.Contains(strings.ToLower(message), "not found"):
		return fmt.Errorf("%w: %w", app.ErrKeyNotFound, cause)
	case status == http.StatusBadRequest && op == opDecrypt:
		return fmt.Errorf("%w: %w", app.ErrInvalidCipherText, cause)
	default:
		return fmt.Errorf("%w: %w", app.ErrInternal, cause)
	}
}

// isAlreadyMounted reports whether resp is the engine's answer to mounting
// a path that is already in use.
func isAlreadyMounted(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(responseMessage(resp)), "already in use")
}

func responseMessage(resp *resty.Response) string {
	body := resp.Body()

	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && len(er.Errors) > 0 {
		return strings.Join(er.Errors, "; ")
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}
	return message
}
