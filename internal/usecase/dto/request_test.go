package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freight-estimator/internal/usecase/dto"
)

func TestVolume_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want dto.Volume
	}{
		{name: "number", body: `{"volume": 2.5}`, want: "2.5"},
		{name: "integer", body: `{"volume": 2}`, want: "2"},
		{name: "string", body: `{"volume": "2,5"}`, want: "2,5"},
		{name: "empty string", body: `{"volume": ""}`, want: ""},
		{name: "null", body: `{"volume": null}`, want: ""},
		{name: "missing", body: `{}`, want: ""},
		{name: "garbage string", body: `{"volume": "abc"}`, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.QuoteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Volume)
		})
	}
}

func TestVolume_UnmarshalJSON_Invalid(t *testing.T) {
	var req dto.QuoteRequest
	err := json.Unmarshal([]byte(`{"volume": true}`), &req)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"volume": [1]}`), &req)
	assert.Error(t, err)
}

func TestVolume_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(dto.QuoteRequest{Volume: "2.5"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"volume":2.5`)

	data, err = json.Marshal(dto.QuoteRequest{Volume: "2,5"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"volume":"2,5"`)
}
