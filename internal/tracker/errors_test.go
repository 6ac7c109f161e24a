package tracker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("request failed")
	err := &RemoteError{Op: "search issues", StatusCode: 400, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "search issues")
	assert.Contains(t, err.Error(), "400")
}

func TestRemoteErrorWithoutStatus(t *testing.T) {
	err := &RemoteError{Op: "authenticate", Err: errors.New("connection refused")}

	assert.NotContains(t, err.Error(), "status")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "Configuration error",
			err:      &ConfigurationError{Reason: `invalid source: "c"`},
			contains: `invalid source: "c"`,
		},
		{
			name:     "Validation error names the field",
			err:      &ValidationError{Field: "product_id"},
			contains: `"product_id"`,
		},
		{
			name:     "Empty result error names the resource",
			err:      &EmptyResultError{Resource: "boards", Key: "GHOST"},
			contains: `no boards found for "GHOST"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		raw     string
		want    Source
		wantErr bool
	}{
		{raw: "a", want: SourceA},
		{raw: "b", want: SourceB},
		{raw: "", wantErr: true},
		{raw: "A", wantErr: true},
		{raw: "production", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			source, err := ParseSource(tt.raw)
			if tt.wantErr {
				var configErr *ConfigurationError
				assert.True(t, errors.As(err, &configErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, source)
		})
	}
}
