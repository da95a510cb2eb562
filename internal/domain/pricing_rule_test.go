package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingRule_Apply(t *testing.T) {
	tests := []struct {
		name       string
		rule       PricingRule
		cost       float64
		wantCost   float64
		wantEffect string
	}{
		{
			name:       "multiplier",
			rule:       PricingRule{Type: RuleTypeMultiplier, Value: 1.2},
			cost:       100,
			wantCost:   120,
			wantEffect: "x1.2",
		},
		{
			name:       "fixed add",
			rule:       PricingRule{Type: RuleTypeFixedAdd, Value: 50},
			cost:       100,
			wantCost:   150,
			wantEffect: "+50",
		},
		{
			name:       "integer multiplier has no trailing zeros",
			rule:       PricingRule{Type: RuleTypeMultiplier, Value: 2},
			cost:       70,
			wantCost:   140,
			wantEffect: "x2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effect := tt.rule.Apply(tt.cost)
			assert.InDelta(t, tt.wantCost, got, 1e-9)
			assert.Equal(t, tt.wantEffect, effect)
		})
	}
}

func TestRuleCondition_Matches(t *testing.T) {
	indoor := CourtTypeIndoor

	tests := []struct {
		name      string
		condition RuleCondition
		day       int
		slot      int
		courtType CourtType
		want      bool
	}{
		{"empty condition always matches", RuleCondition{}, 3, 10, CourtTypeOutdoor, true},
		{"hour matches", RuleCondition{Hours: []int{18, 19, 20}}, 3, 19, CourtTypeIndoor, true},
		{"hour does not match", RuleCondition{Hours: []int{18, 19, 20}}, 3, 17, CourtTypeIndoor, false},
		{"day matches", RuleCondition{Days: []int{0, 6}}, 6, 10, CourtTypeIndoor, true},
		{"day does not match", RuleCondition{Days: []int{0, 6}}, 5, 10, CourtTypeIndoor, false},
		{"court type matches", RuleCondition{CourtType: &indoor}, 3, 10, CourtTypeIndoor, true},
		{"court type does not match", RuleCondition{CourtType: &indoor}, 3, 10, CourtTypeOutdoor, false},
		{
			"all fields must match",
			RuleCondition{Days: []int{6}, Hours: []int{18}, CourtType: &indoor},
			6, 17, CourtTypeIndoor,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.condition.Matches(tt.day, tt.slot, tt.courtType))
		})
	}
}

func TestEquipmentMap_Codec(t *testing.T) {
	original := EquipmentMap{1: 2, 15: 1}

	value, err := original.Value()
	require.NoError(t, err)

	var restored EquipmentMap
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original, restored)

	// NULL колонка — пустая карта
	var fromNull EquipmentMap
	require.NoError(t, fromNull.Scan(nil))
	assert.Empty(t, fromNull)
}

func TestEquipmentMap_SortedIDs(t *testing.T) {
	m := EquipmentMap{42: 1, 1: 2, 7: 3}
	assert.Equal(t, []int64{1, 7, 42}, m.SortedIDs())
}
