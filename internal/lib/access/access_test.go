package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		expected string
		supplied string
		ok       bool
	}{
		{name: "matching key", expected: "secret", supplied: "secret", ok: true},
		{name: "wrong key", expected: "secret", supplied: "secreT", ok: false},
		{name: "empty supplied", expected: "secret", supplied: "", ok: false},
		{name: "unconfigured server key", expected: "", supplied: "", ok: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			admin, ok := Authorize(tc.expected, tc.supplied)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.ok, admin.Valid())
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(NewContext(context.Background(), Admin{}))
	assert.False(t, ok, "zero value must not grant access")

	admin, _ := Authorize("k", "k")
	got, ok := FromContext(NewContext(context.Background(), admin))
	assert.True(t, ok)
	assert.True(t, got.Valid())
}
