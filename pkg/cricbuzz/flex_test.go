package cricbuzz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexInt
		wantErr bool
	}{
		{"number", `142`, 142, false},
		{"quoted_string", `"142"`, 142, false},
		{"float_truncates", `142.0`, 142, false},
		{"quoted_float", `"142.0"`, 142, false},
		{"null", `null`, 0, false},
		{"empty_string", `""`, 0, false},
		{"garbage", `"abc"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"number", `28.4`, 28.4, false},
		{"quoted_string", `"28.4"`, 28.4, false},
		{"integer", `28`, 28.0, false},
		{"null", `null`, 0, false},
		{"garbage", `"n/a"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(f), 0.0001)
		})
	}
}
