package normalize

import (
	"math"
	"strings"

	"github.com/stumpline/cricket-cli/internal/model"
)

// TotalBalls converts cricket-notation overs to a ball count. The
// integer part is completed overs; the first decimal digit is balls
// bowled in the current over (0-5). 10.3 means 10 overs and 3 balls,
// i.e. 63 balls.
func TotalBalls(overs float64) int {
	whole := int(overs)
	balls := int(math.Round((overs - float64(whole)) * 10))
	return whole*6 + balls
}

// RunRate computes runs per 6-ball over, rounded to two decimals.
// Returns 0.0 when no balls have been bowled.
func RunRate(runs int, overs float64) float64 {
	if overs <= 0 {
		return 0.0
	}
	balls := TotalBalls(overs)
	if balls <= 0 {
		return 0.0
	}
	return math.Round(float64(runs)/float64(balls)*6*100) / 100
}

// PhaseFor classifies the innings phase from the match format and overs
// elapsed. Formats other than T20 and ODI (Tests, unknown) have no
// powerplay or death-overs window.
func PhaseFor(format string, overs float64) model.Phase {
	f := strings.ToLower(format)
	switch {
	case strings.Contains(f, "t20"):
		if overs < 6 {
			return model.PhasePowerplay
		}
		if overs > 15 {
			return model.PhaseDeathOvers
		}
	case strings.Contains(f, "odi"):
		if overs < 10 {
			return model.PhasePowerplay
		}
		if overs > 40 {
			return model.PhaseDeathOvers
		}
	}
	return model.PhaseMiddleOvers
}
