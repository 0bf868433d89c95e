package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/palmwatch/internal/domain"
)

func TestScalar_String(t *testing.T) {
	tests := map[string]string{
		`24`:      "24",
		`8.0`:     "8",
		`1012.25`: "1012.25",
		`-3.5`:    "-3.5",
		`"1012"`:  "1012",
		`"n/a"`:   "n/a",
		`true`:    "true",
		`null`:    "null",
		`1e3`:     "1000",
		`{"a":1}`: `{"a":1}`,
		`"°C"`:    "°C",
		`-0`:      "0",
		`-0.0`:    "0",
		`1e21`:    "1e+21",
		`123e20`:  "1.23e+22",
		`-2e25`:   "-2e+25",
		`1e20`:    "100000000000000000000",
		`1e-7`:    "1e-7",
		`1.5e-7`:  "1.5e-7",
		`1e-6`:    "0.000001",
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			var s domain.Scalar
			require.NoError(t, json.Unmarshal([]byte(raw), &s))
			assert.True(t, s.Present())
			assert.Equal(t, want, s.String())
		})
	}
}

func TestScalar_Truthy(t *testing.T) {
	tests := map[string]bool{
		`null`:           false,
		`false`:          false,
		`0`:              false,
		`0.0`:            false,
		`-0`:             false,
		`""`:             false,
		`true`:           true,
		`"0"`:            true,
		`"Invalid City"`: true,
		`1`:              true,
		`{}`:             true,
		`[]`:             true,
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			var s domain.Scalar
			require.NoError(t, json.Unmarshal([]byte(raw), &s))
			assert.Equal(t, want, s.Truthy())
		})
	}
}

func TestEnvelope_AbsentErrorIsNotAFailure(t *testing.T) {
	var env domain.Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"result":"<b>Low Risk</b>"}`), &env))

	assert.False(t, env.Error.Present())
	assert.False(t, env.Failed())
	assert.Equal(t, "<b>Low Risk</b>", env.Result)
}

func TestScalarOf_RoundTripsThroughEnvelope(t *testing.T) {
	env := domain.Envelope{
		Result: "<p>Moderate</p>",
		WeatherSummary: &domain.WeatherSummary{
			Temp: domain.ScalarOf(24), RH: domain.ScalarOf(55), Dew: domain.ScalarOf(14),
			Wind: domain.ScalarOf(10), Vis: domain.ScalarOf(8.5), Pressure: domain.ScalarOf(1012),
		},
	}
	b, err := json.Marshal(env)
	require.NoError(t, err)

	var got domain.Envelope
	require.NoError(t, json.Unmarshal(b, &got))
	assert.False(t, got.Failed())
	assert.Equal(t, "8.5", got.WeatherSummary.Vis.String())
}

func TestValidationError_ListsFieldNames(t *testing.T) {
	err := &domain.ValidationError{Missing: []domain.Field{{Name: "temp"}, {Name: "age"}}}
	assert.Equal(t, "missing required fields: temp, age", err.Error())
}
