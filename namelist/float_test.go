package namelist

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestFloat_String_MatchesReaderFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{265.0, "265.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{0.86, "0.86"},
		{0.0002, "0.0002"},
		{0.005, "0.005"},
		{5e-6, "5e-06"},
		{1.5e-5, "1.5e-05"},
		{86400, "86400.0"},
		{-3.25, "-3.25"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.2345e20, "1.2345e+20"},
		{1e-100, "1e-100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Float(tt.in).String(), "Float(%v)", tt.in)
	}
}

func TestFloat_MarshalJSON_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := json.Marshal(Float(v))
		assert.Error(t, err, "Float(%v)", v)
	}
}

func TestFloat_MarshalYAML_KeepsFloatForm(t *testing.T) {
	out, err := yaml.Marshal(map[string]Float{"dz": 5.0, "divergence": 5e-6})
	assert.NoError(t, err)
	assert.Equal(t, "divergence: 5e-06\ndz: 5.0\n", string(out))

	var back map[string]float64
	assert.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, 5.0, back["dz"])
	assert.Equal(t, 5e-6, back["divergence"])
}
