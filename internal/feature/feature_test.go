package feature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/cookie/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Feature
		wantErr bool
	}{
		{"none", "none", None, false},
		{"http", "http", HTTP, false},
		{"pubsub", "pubsub", PubSub, false},
		{"empty selects none", "", None, false},
		{"uppercase", "HTTP", HTTP, false},
		{"mixed case with spaces", "  PubSub ", PubSub, false},
		{"unknown", "grpc", "", true},
		{"fragment name is not a feature", "ff_http", "", true},
		{"combined selection", "http,pubsub", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSelection))
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		feature      Feature
		wantFragment Fragment
		wantOK       bool
		wantErr      bool
	}{
		{"none resolves to no fragment", None, "", false, false},
		{"http resolves to ff_http", HTTP, "ff_http", true, false},
		{"pubsub resolves to ff_pubsub", PubSub, "ff_pubsub", true, false},
		{"unparsed value fails", Feature("bogus"), "", false, true},
		{"case is not normalized by Resolve", Feature("HTTP"), "", false, true},
		{"zero value fails", Feature(""), "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragment, ok, err := Resolve(tt.feature)
			if tt.wantErr {
				var selErr *InvalidSelectionError
				require.True(t, errors.As(err, &selErr))
				assert.Equal(t, string(tt.feature), selErr.Value)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantFragment, fragment)
		})
	}
}

func TestInvalidSelectionError_Message(t *testing.T) {
	_, err := Parse("grpc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"grpc"`)
	assert.Contains(t, err.Error(), "none, http, pubsub")
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"none", "http", "pubsub"}, Names())
	assert.Equal(t, []Fragment{"ff_http", "ff_pubsub"}, Fragments())
	assert.Len(t, All(), 3)

	// All returns a copy.
	all := All()
	all[0].Description = "changed"
	assert.NotEqual(t, "changed", All()[0].Description)
}
