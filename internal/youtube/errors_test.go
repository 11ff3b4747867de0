package youtube

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "read tcp: connection reset by peer" }
func (fakeNetError) Timeout() bool   { return false }
func (fakeNetError) Temporary() bool { return true }

func TestMapQueryError(t *testing.T) {
	tests := []struct {
		err  error
		want error
		name string
	}{
		{
			name: "400 is an invalid group",
			err:  &googleapi.Error{Code: 400, Message: "invalid filter"},
			want: common.ErrInvalidGroup,
		},
		{
			name: "404 is an invalid group",
			err:  &googleapi.Error{Code: 404, Message: "group not found"},
			want: common.ErrInvalidGroup,
		},
		{
			name: "401 is auth",
			err:  &googleapi.Error{Code: 401, Message: "invalid credentials"},
			want: common.ErrAuth,
		},
		{
			name: "403 is auth",
			err:  &googleapi.Error{Code: 403, Message: "forbidden"},
			want: common.ErrAuth,
		},
		{
			name: "429 is transient",
			err:  &googleapi.Error{Code: 429, Message: "rate limited"},
			want: common.ErrTransient,
		},
		{
			name: "503 is transient",
			err:  &googleapi.Error{Code: 503, Message: "backend error"},
			want: common.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapQueryError(tt.err, "grp-1")
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapQueryError_IncludesGroupID(t *testing.T) {
	err := mapQueryError(&googleapi.Error{Code: 404}, "grp-channels")
	assert.Contains(t, err.Error(), "grp-channels")
}

func TestMapAPIError(t *testing.T) {
	t.Run("network error is transient", func(t *testing.T) {
		err := mapAPIError(fmt.Errorf("query: %w", fakeNetError{}))
		assert.ErrorIs(t, err, common.ErrTransient)
	})

	t.Run("deadline exceeded is transient", func(t *testing.T) {
		err := mapAPIError(fmt.Errorf("query: %w", context.DeadlineExceeded))
		assert.ErrorIs(t, err, common.ErrTransient)
	})

	t.Run("unclassified api error passes through", func(t *testing.T) {
		apiErr := &googleapi.Error{Code: 409, Message: "conflict"}
		got := mapAPIError(apiErr)
		assert.False(t, common.IsRetryable(got))
		assert.False(t, common.IsFatal(got))

		var out *googleapi.Error
		assert.True(t, errors.As(got, &out))
	})

	t.Run("plain error passes through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Equal(t, plain, mapAPIError(plain))
	})
}
