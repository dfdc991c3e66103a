package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributePredicate(t *testing.T) {
	tests := []struct {
		expr    string
		wantOp  Operator
		wantVal int
		wantErr bool
	}{
		{expr: "<10", wantOp: OpLess, wantVal: 10},
		{expr: "> 3", wantOp: OpGreater, wantVal: 3},
		{expr: "=7", wantOp: OpEqual, wantVal: 7},
		{expr: "<=1", wantOp: OpLessEqual, wantVal: 1},
		{expr: ">=0", wantOp: OpGreaterEqual, wantVal: 0},
		{expr: "42", wantOp: OpEqual, wantVal: 42},
		{expr: "<ten", wantErr: true},
		{expr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := ParseAttributePredicate(AttributeMaintenance, tt.expr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, p.Op)
			assert.Equal(t, tt.wantVal, p.Value)
		})
	}
}

func TestCondition_Test(t *testing.T) {
	ride := Ride{Name: "Dumbo", Maintenance: 5, WaitTime: 30}

	cond := Condition{
		{Attribute: AttributeMaintenance, Op: OpLess, Value: 10},
		{Attribute: AttributeWaitTime, Op: OpGreaterEqual, Value: 30},
	}
	assert.True(t, cond.Test(ride))

	cond = append(cond, AttributePredicate{Attribute: AttributeWaitTime, Op: OpGreater, Value: 30})
	assert.False(t, cond.Test(ride), "all predicates must hold")

	assert.True(t, Condition{}.Test(ride), "empty condition matches everything")
}

func TestParseNumericAttribute(t *testing.T) {
	attr, err := ParseNumericAttribute("m/")
	require.NoError(t, err)
	assert.Equal(t, AttributeMaintenance, attr)

	attr, err = ParseNumericAttribute("WaitTime")
	require.NoError(t, err)
	assert.Equal(t, AttributeWaitTime, attr)

	_, err = ParseNumericAttribute("address")
	assert.ErrorIs(t, err, ErrValidation)
}
