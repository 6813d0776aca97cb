package docwal_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/docwal/docwal-go/pkg/docwal"
	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	httpErr := &docwal.Error{
		Kind:       docwal.ErrorKindNotFound,
		Message:    "Resource not found",
		StatusCode: 404,
	}
	assert.Equal(t, "Resource not found (status 404)", httpErr.Error())

	transportErr := &docwal.Error{
		Kind:    docwal.ErrorKindGeneric,
		Message: "Failed to connect to https://docwal.com/api",
	}
	assert.Equal(t, "Failed to connect to https://docwal.com/api", transportErr.Error())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestKindPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		kind      docwal.ErrorKind
		predicate func(error) bool
	}{
		{
			name:      "authentication",
			kind:      docwal.ErrorKindAuthentication,
			predicate: docwal.IsAuthentication,
		},
		{
			name:      "permission",
			kind:      docwal.ErrorKindPermission,
			predicate: docwal.IsPermission,
		},
		{
			name:      "not found",
			kind:      docwal.ErrorKindNotFound,
			predicate: docwal.IsNotFound,
		},
		{
			name:      "rate limit",
			kind:      docwal.ErrorKindRateLimit,
			predicate: docwal.IsRateLimit,
		},
		{
			name:      "validation",
			kind:      docwal.ErrorKindValidation,
			predicate: docwal.IsValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := &docwal.Error{Kind: tt.kind, Message: "boom", StatusCode: 400}
			assert.True(t, tt.predicate(err))

			other := &docwal.Error{Kind: docwal.ErrorKindGeneric, Message: "boom", StatusCode: 500}
			assert.False(t, tt.predicate(other))

			assert.False(t, tt.predicate(errors.New("plain error")))
		})
	}
}

func TestKindPredicates_WrappedError(t *testing.T) {
	t.Parallel()

	inner := &docwal.Error{
		Kind:       docwal.ErrorKindPermission,
		Message:    "Permission denied",
		StatusCode: 403,
	}
	wrapped := fmt.Errorf("revoking credential: %w", inner)

	assert.True(t, docwal.IsPermission(wrapped))
	assert.False(t, docwal.IsNotFound(wrapped))
}
