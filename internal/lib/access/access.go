// Package access holds the admin capability. An Admin value can only be obtained by
// presenting the configured key, so operations that take one are admin-only by signature.
package access

import (
	"context"
	"crypto/subtle"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

type Admin struct {
	granted bool
}

// Valid reports whether the capability was produced by Authorize.
func (a Admin) Valid() bool {
	return a.granted
}

// Authorize compares the supplied key with the expected one in constant time.
func Authorize(expected, supplied string) (Admin, bool) {
	if expected == "" || supplied == "" {
		return Admin{}, false
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) != 1 {
		return Admin{}, false
	}

	return Admin{granted: true}, true
}

type ctxKey struct{}

func NewContext(ctx context.Context, admin Admin) context.Context {
	return context.WithValue(ctx, ctxKey{}, admin)
}

func FromContext(ctx context.Context) (Admin, bool) {
	admin, ok := ctx.Value(ctxKey{}).(Admin)
	if !ok || !admin.Valid() {
		return Admin{}, false
	}

	return admin, true
}
