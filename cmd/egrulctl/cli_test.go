package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInfoReportsLERecordCount(t *testing.T) {
	infoInput = testdataPath(t, "sample_le.xml")
	infoSamples = false
	jsonOut = false
	quiet = false

	out, err := captureOutput(t, runInfo)
	require.NoError(t, err)
	assertContains(t, out, []string{"Encoding:       UTF8", "LE records:     1", "SP records:     0"})
}

func TestRunInfoJSONOutput(t *testing.T) {
	infoInput = testdataPath(t, "sample_le.xml")
	infoSamples = false
	jsonOut = true
	quiet = false
	defer func() { jsonOut = false }()

	out, err := captureOutput(t, runInfo)
	require.NoError(t, err)
	assertJSON(t, out)
	assertContains(t, out, []string{`"le_count": 1`})
}

func TestRunValidateAcceptsWellFormedFile(t *testing.T) {
	validateInput = testdataPath(t, "sample_le.xml")
	validateErrorsOnly = false
	jsonOut = false
	quiet = false

	out, err := captureOutput(t, runValidate)
	require.NoError(t, err)
	assert.Contains(t, out, "1 valid, 0 invalid")
}

func TestFormatBytesHumanReadable(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
}

func TestFormatNumberGroupsThousands(t *testing.T) {
	assert.Equal(t, "1,234,567", formatNumber(1234567))
	assert.Equal(t, "42", formatNumber(42))
}
