package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stumpline/cricket-cli/internal/model"
)

func TestTotalBalls(t *testing.T) {
	tests := []struct {
		overs float64
		want  int
	}{
		{0, 0},
		{1.0, 6},
		{5.0, 30},
		{10.3, 63},
		{19.5, 119},
		{0.1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalBalls(tt.overs), "overs %g", tt.overs)
	}
}

func TestRunRate(t *testing.T) {
	tests := []struct {
		name  string
		runs  int
		overs float64
		want  float64
	}{
		{"zero_overs_no_division", 50, 0, 0.0},
		{"spec_example_10_3", 65, 10.3, 6.19},
		{"even_overs", 60, 10.0, 6.0},
		{"single_ball", 4, 0.1, 24.0},
		{"zero_runs", 0, 5.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RunRate(tt.runs, tt.overs), 0.001)
		})
	}
}

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		name   string
		format string
		overs  float64
		want   model.Phase
	}{
		{"t20_powerplay", "t20", 5.5, model.PhasePowerplay},
		{"t20_death", "t20", 16.0, model.PhaseDeathOvers},
		{"t20_middle", "t20", 10.0, model.PhaseMiddleOvers},
		{"t20_boundary_six", "t20", 6.0, model.PhaseMiddleOvers},
		{"t20_boundary_fifteen", "t20", 15.0, model.PhaseMiddleOvers},
		{"t20i_variant", "T20I", 3.2, model.PhasePowerplay},
		{"odi_powerplay", "odi", 9.9, model.PhasePowerplay},
		{"odi_death", "ODI", 41.0, model.PhaseDeathOvers},
		{"odi_middle", "odi", 25.0, model.PhaseMiddleOvers},
		{"test_always_middle", "test", 3.0, model.PhaseMiddleOvers},
		{"unknown_always_middle", "", 45.0, model.PhaseMiddleOvers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhaseFor(tt.format, tt.overs))
		})
	}
}
