package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"10-3", 7},
		{"6*7", 42},
		{"9/2", 4.5},
		{"10%3", 1},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-4-3", 3},
		{"100/10/2", 5},
		{"-5+3", -2},
		{"-(2+3)", -5},
		{"+7", 7},
		{"--4", 4},
		{"3.5*2", 7},
		{".5+.5", 1},
		{"  2 + 2  ", 4},
		{"((((1))))", 1},
		{"7.5%2", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		expr    string
		wantMsg string
	}{
		{"10/0", "division by zero"},
		{"5%0", "modulo by zero"},
		{"", "unexpected end of expression"},
		{"2+", "unexpected end of expression"},
		{"(2+3", "missing closing parenthesis"},
		{"2+3)", "unexpected character"},
		{"1..2", "malformed number"},
		{"2 3", "unexpected character"},
		{"*4", "unexpected character"},
		{".", "malformed number"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := evaluate(tt.expr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
