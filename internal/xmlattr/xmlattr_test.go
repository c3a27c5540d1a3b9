package xmlattr

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrs(pairs ...string) []xml.Attr {
	var out []xml.Attr
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, xml.Attr{Name: xml.Name{Local: pairs[i]}, Value: pairs[i+1]})
	}
	return out
}

func TestStringFirstAliasWins(t *testing.T) {
	a := attrs("NaimSokr", "ТЕСТ", "NaimULPolnAttr", "ООО ТЕСТ")
	v, ok := String(a, "NaimULPolnAttr", "NaimPoln")
	assert.True(t, ok)
	assert.Equal(t, "ООО ТЕСТ", v)
}

func TestStringEmptyIsAbsent(t *testing.T) {
	a := attrs("NaimSokr", "   ")
	_, ok := String(a, "NaimSokr")
	assert.False(t, ok)
}

func TestDateFormats(t *testing.T) {
	cases := map[string]string{
		"2020-01-01": "2020-01-01",
		"01.02.2020": "2020-02-01",
		"2020.03.04": "2020-03-04",
		"05/06/2020": "2020-06-05",
		"20200708":   "2020-07-08",
	}
	for input, want := range cases {
		d, ok, err := Date(attrs("Data", input))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, d.Format("2006-01-02"))
	}
}

func TestDateNoMatchIsError(t *testing.T) {
	_, ok, err := Date(attrs("Data", "not-a-date"))
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestFloatCommaNormalization(t *testing.T) {
	v, ok, err := Float(attrs("SumKap", "10000,50"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 10000.50, v, 0.0001)
}

func TestBoolAliases(t *testing.T) {
	for _, truthy := range []string{"1", "true", "да", "ДА", "yes"} {
		v, ok := Bool(attrs("Flag", truthy))
		require.True(t, ok)
		assert.True(t, v, truthy)
	}
	v, ok := Bool(attrs("Flag", "0"))
	require.True(t, ok)
	assert.False(t, v)
}

func TestTagMatchesStripsNamespace(t *testing.T) {
	assert.True(t, TagMatches(xml.Name{Local: "ns:SvNaim"}, "SvNaim"))
	assert.True(t, TagMatches(xml.Name{Local: "SvNaimULcls"}, "SvNaimULcls", "SvNaim"))
	assert.False(t, TagMatches(xml.Name{Local: "Other"}, "SvNaim"))
}
