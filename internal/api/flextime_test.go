package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "RFC3339 with Z",
			input:    `"2022-11-20T16:00:00Z"`,
			expected: time.Date(2022, 11, 20, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with offset",
			input:    `"2022-11-20T19:00:00+03:00"`,
			expected: time.Date(2022, 11, 20, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "without seconds",
			input:    `"2022-11-20T16:00Z"`,
			expected: time.Date(2022, 11, 20, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "empty string",
			input:    `""`,
			expected: time.Time{},
		},
		{
			name:     "null",
			input:    `null`,
			expected: time.Time{},
		},
		{
			name:        "date only",
			input:       `"2022-11-20"`,
			expectError: true,
		},
		{
			name:        "garbage",
			input:       `"kick-off soon"`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FlexTime
			err := json.Unmarshal([]byte(tt.input), &ft)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ft.Time), "expected %v, got %v", tt.expected, ft.Time)
		})
	}
}

func TestFlexTime_InStruct(t *testing.T) {
	var dto struct {
		Datetime FlexTime `json:"datetime"`
	}

	err := json.Unmarshal([]byte(`{"datetime":"2022-11-21T13:00:00Z"}`), &dto)
	require.NoError(t, err)
	assert.Equal(t, 13, dto.Datetime.Hour())
}
