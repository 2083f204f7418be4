package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElementByAtomicNumber(t *testing.T) {
	el, err := ParseElement("6")
	require.NoError(t, err)
	assert.Equal(t, "C", el.Symbol)
	assert.EqualValues(t, 6, el.Number)
}

func TestParseElementBySymbolCaseInsensitiveTrimmed(t *testing.T) {
	for _, in := range []string{"Na", "na", "NA", "  Na  "} {
		el, err := ParseElement(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "Na", el.Symbol)
		assert.EqualValues(t, 11, el.Number)
	}
}

func TestParseElementUnknown(t *testing.T) {
	_, err := ParseElement("Xx")
	require.Error(t, err)
	var parseErr *ElementParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Xx", parseErr.Input)
}

func TestParseElementOutOfRangeAtomicNumber(t *testing.T) {
	_, err := ParseElement("0")
	require.Error(t, err)

	_, err = ParseElement("119")
	require.Error(t, err)
}

func TestParseElementEmpty(t *testing.T) {
	_, err := ParseElement("   ")
	require.Error(t, err)
}

func TestElementByNumberRoundTrip(t *testing.T) {
	for n := uint8(1); n <= 118; n++ {
		el, ok := ElementByNumber(n)
		require.True(t, ok)
		assert.EqualValues(t, n, el.Number)

		reparsed, err := ParseElement(el.Symbol)
		require.NoError(t, err)
		assert.Equal(t, el, reparsed)
	}
}

func TestValenceElectronsDefinedForMainGroupOnly(t *testing.T) {
	carbon, _ := ElementByNumber(6)
	assert.True(t, carbon.HasValenceElectrons())
	assert.EqualValues(t, 4, carbon.ValenceElectrons)

	iron, _ := ElementByNumber(26)
	assert.False(t, iron.HasValenceElectrons())
}
