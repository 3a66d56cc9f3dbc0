// Package score computes the focus-session score: an incentive term scaled
// by importance, difficulty, and concentration, minus a distraction penalty.
package score

import "math"

// Input holds one session's parameters. Zero values take the model defaults.
// The JSON keys match the scoring parameter files users already keep.
type Input struct {
	Rate            float64 `json:"r"`     // base reward rate per hour, default 30
	EstimatedHours  float64 `json:"T_est"`
	Progress        float64 `json:"P"` // completion ratio 0..1
	Importance      float64 `json:"I"` // 1..5, default 3
	Difficulty      float64 `json:"D"` // 1..5, default 3
	Concentration   float64 `json:"c"` // 0..1
	Mu              float64 `json:"mu"` // concentration exponent, default 1.2
	DistractedHours float64 `json:"T_distract"`
	PhoneHours      float64 `json:"T_phone"`
}

type Output struct {
	Total     float64 `json:"total_score"`
	Incentive float64 `json:"incentive_score"`
	Penalty   float64 `json:"penalty_score"`
}

// Calculate applies
//
//	S = r * T_est * P * (1 + 0.15*(I-3)) * (1 + 0.05*(D-3)) * c^mu
//	penalty = -30*T_distract - 6*T_phone
//
// and returns both terms plus their sum, rounded to two decimals.
func Calculate(in Input) Output {
	if in.Rate == 0 {
		in.Rate = 30
	}
	if in.Importance == 0 {
		in.Importance = 3
	}
	if in.Difficulty == 0 {
		in.Difficulty = 3
	}
	if in.Mu == 0 {
		in.Mu = 1.2
	}

	incentive := in.Rate * in.EstimatedHours * in.Progress *
		(1 + 0.15*(in.Importance-3)) *
		(1 + 0.05*(in.Difficulty-3)) *
		math.Pow(in.Concentration, in.Mu)
	penalty := -30*in.DistractedHours - 6*in.PhoneHours

	return Output{
		Total:     round2(incentive + penalty),
		Incentive: round2(incentive),
		Penalty:   round2(penalty),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
