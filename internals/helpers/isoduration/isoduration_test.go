package isoduration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTripsExactly(t *testing.T) {
	cases := []string{
		"PT2H",
		"PT2H30M",
		"P1D",
		"P1DT2H30M",
		"P1M",
		"P3W",
		"P1Y2M3W4DT5H6M7.5S",
		"PT0.5S",
	}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			d, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, d.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"bare P", "P"},
		{"bare PT", "PT"},
		{"no leading P", "2H"},
		{"hours in date part", "P2H"},
		{"trailing number", "PT2H3"},
		{"designators out of order", "PT1M2H"},
		{"repeated designator", "PT1H2H"},
		{"double fraction", "PT1.2.3S"},
		{"garbage", "hello"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			assert.Error(t, err)
		})
	}
}

func TestDuration_JSON(t *testing.T) {
	d := MustParse("PT2H")
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"PT2H"`, string(b))

	var back Duration
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "PT2H", back.String())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &back))
}

func TestDuration_ScanValue(t *testing.T) {
	d := MustParse("P1DT2H")
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "P1DT2H", v)

	var scanned Duration
	require.NoError(t, scanned.Scan("P1DT2H"))
	assert.Equal(t, "P1DT2H", scanned.String())

	require.NoError(t, scanned.Scan([]byte("PT45M")))
	assert.Equal(t, "PT45M", scanned.String())

	assert.Error(t, scanned.Scan(42))
	assert.Error(t, scanned.Scan("banana"))
}
