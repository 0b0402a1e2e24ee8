package normalizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFloat_NuncaFalha(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected float64
	}{
		{name: "nulo", input: nil, expected: 0.0},
		{name: "float64", input: 42.5, expected: 42.5},
		{name: "float32", input: float32(1.5), expected: 1.5},
		{name: "int", input: 7, expected: 7.0},
		{name: "int64", input: int64(9), expected: 9.0},
		{name: "string numérica", input: "10.25", expected: 10.25},
		{name: "string com espaços", input: "  3.5 ", expected: 3.5},
		{name: "string vazia", input: "", expected: 0.0},
		{name: "string não numérica", input: "not-a-number", expected: 0.0},
		{name: "mapa aninhado", input: map[string]interface{}{"x": 1}, expected: 0.0},
		{name: "lista", input: []interface{}{1, 2}, expected: 0.0},
		{name: "booleano", input: true, expected: 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SafeFloat(tc.input))
		})
	}
}

func TestSafeInt_TruncaViaFloat(t *testing.T) {
	assert.Equal(t, 3, SafeInt("3.0"))
	assert.Equal(t, 3, SafeInt("3.9"))
	assert.Equal(t, 0, SafeInt(nil))
	assert.Equal(t, 0, SafeInt("abc"))
	assert.Equal(t, 5, SafeInt(5))
	assert.Equal(t, 2, SafeInt(2.7))
}
