package score

import (
	"encoding/json"
	"testing"
)

func TestCalculate(t *testing.T) {
	got := Calculate(Input{
		EstimatedHours:  2,
		Progress:        1,
		Importance:      4,
		Difficulty:      4,
		Concentration:   1,
		DistractedHours: 0.5,
		PhoneHours:      0.5,
	})

	// 30 * 2 * 1 * 1.15 * 1.05 * 1 = 72.45; penalty -30*0.5 - 6*0.5 = -18.
	if got.Incentive != 72.45 {
		t.Errorf("incentive = %v, want 72.45", got.Incentive)
	}
	if got.Penalty != -18 {
		t.Errorf("penalty = %v, want -18", got.Penalty)
	}
	if got.Total != 54.45 {
		t.Errorf("total = %v, want 54.45", got.Total)
	}
}

func TestInputParameterFileKeys(t *testing.T) {
	// Parameter files use the short model names for each variable.
	data := []byte(`{"r": 30, "T_est": 2, "P": 1, "I": 4, "D": 4, "c": 1, "T_distract": 0.5, "T_phone": 0.5}`)

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		t.Fatalf("decoding input: %v", err)
	}
	got := Calculate(in)
	if got.Total != 54.45 {
		t.Errorf("total = %v, want 54.45", got.Total)
	}
	if got.Incentive != 72.45 || got.Penalty != -18 {
		t.Errorf("unexpected terms %+v", got)
	}
}

func TestCalculateDefaults(t *testing.T) {
	// Zero ratings fall back to 3, so both multipliers are neutral.
	got := Calculate(Input{EstimatedHours: 1, Progress: 1, Concentration: 1})
	if got.Incentive != 30 {
		t.Errorf("incentive = %v, want 30 from defaults", got.Incentive)
	}
	if got.Penalty != 0 {
		t.Errorf("penalty = %v, want 0", got.Penalty)
	}
}

func TestCalculateConcentrationExponent(t *testing.T) {
	half := Calculate(Input{EstimatedHours: 1, Progress: 1, Concentration: 0.5})
	full := Calculate(Input{EstimatedHours: 1, Progress: 1, Concentration: 1})
	// c^1.2 at c=0.5 is below 0.5, so halving concentration costs more
	// than half the incentive.
	if half.Incentive >= full.Incentive/2 {
		t.Errorf("expected superlinear concentration falloff, got %v vs %v", half.Incentive, full.Incentive)
	}
	if half.Incentive != 13.06 {
		t.Errorf("incentive = %v, want 13.06", half.Incentive)
	}
}

func TestCalculateZeroProgress(t *testing.T) {
	got := Calculate(Input{EstimatedHours: 3, Progress: 0, Concentration: 1, DistractedHours: 1})
	if got.Incentive != 0 {
		t.Errorf("incentive = %v, want 0 with no progress", got.Incentive)
	}
	if got.Total != -30 {
		t.Errorf("total = %v, want the bare penalty", got.Total)
	}
}
