package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Error categories. Every failure surfaced to a client is classified into
// one of these by [KindOf]; lower layers wrap their own sentinels inside a
// category with fmt.Errorf("%w: %w", category, cause).
var (
	// ErrNotFound marks a keyed lookup with no matching row.
	ErrNotFound = errors.New("not found")

	// ErrBackendUnavailable marks an unreachable or timed-out record store
	// or crypto engine.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrKeyNotFound marks a crypto engine rejection because the key handle
	// does not exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidCipherText marks a crypto engine rejection of a decrypt payload.
	ErrInvalidCipherText = errors.New("invalid cipher text")

	// ErrTransactionFailure marks a statement or commit failure after a
	// transaction began. The transaction is rolled back.
	ErrTransactionFailure = errors.New("transaction failure")

	// ErrInternal marks any other unexpected failure.
	ErrInternal = errors.New("internal error")
)

// Kind names reported in error responses.
const (
	KindNotFound           = "NotFound"
	KindBackendUnavailable = "BackendUnavailable"
	KindKeyNotFound        = "KeyNotFound"
	KindInvalidCipherText  = "InvalidCipherText"
	KindTransactionFailure = "TransactionFailure"
	KindInternal           = "Internal"
)

// kinds is ordered: the first match wins. TransactionFailure precedes
// BackendUnavailable so that a dropped connection mid-transaction is
// reported as a failed transaction.
var kinds = []struct {
	err  error
	name string
}{
	{ErrNotFound, KindNotFound},
	{ErrKeyNotFound, KindKeyNotFound},
	{ErrInvalidCipherText, KindInvalidCipherText},
	{ErrTransactionFailure, KindTransactionFailure},
	{ErrBackendUnavailable, KindBackendUnavailable},
	{ErrInternal, KindInternal},
}

// KindOf returns the category name of err, or [KindInternal] if err matches
// no category.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return KindInternal
}

// RootCause returns the error whose message describes the failure. It walks
// through the plain wrappers built with fmt.Errorf and errors.Join, following
// the last cause of a multi-%w wrapper since every layer wraps as "%w: %w"
// with the sentinel first. The walk stops at:
//   - a typed error such as *net.OpError or *url.Error, whose message is
//     already complete;
//   - a "%w: detail" wrapper around a leaf sentinel, so the detail is kept.
func RootCause(err error) error {
	for err != nil {
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			errs := e.Unwrap()
			if len(errs) == 0 || !isPlainWrapper(err) {
				return err
			}
			err = errs[len(errs)-1]
		case interface{ Unwrap() error }:
			next := e.Unwrap()
			if next == nil || !isPlainWrapper(err) || annotatesLeaf(err, next) {
				return err
			}
			err = next
		default:
			return err
		}
	}
	return err
}

// isPlainWrapper reports whether err was built by fmt.Errorf or errors.Join
// rather than being a typed error of some other package.
func isPlainWrapper(err error) bool {
	t := reflect.TypeOf(err)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	pkg := t.PkgPath()
	return pkg == "fmt" || pkg == "errors"
}

// annotatesLeaf reports whether err is "<leaf>: <detail>", a sentinel with
// context appended after it.
func annotatesLeaf(err, leaf error) bool {
	if _, ok := leaf.(interface{ Unwrap() error }); ok {
		return false
	}
	if _, ok := leaf.(interface{ Unwrap() []error }); ok {
		return false
	}
	return strings.HasPrefix(err.Error(), leaf.Error()+": ")
}

// Describe formats err as "<ErrorKind>(<message>)" where message is the
// root cause's message.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s(%s)", KindOf(err), RootCause(err).Error())
}
