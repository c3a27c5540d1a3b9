package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDetectUTF8BOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<?xml version="1.0"?>`)...)
	assert.Equal(t, UTF8, Detect(raw))
}

func TestDetectDeclarationWindows1251(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="windows-1251"?><ФАЙЛ/>`)
	assert.Equal(t, Windows1251, Detect(raw))
}

func TestDetectHeuristicWindows1251(t *testing.T) {
	cyr, err := charmap.Windows1251.NewEncoder().String("Общество с ограниченной ответственностью")
	require.NoError(t, err)
	raw := []byte(`<?xml version="1.0"?><ФАЙЛ НаимПолн="` + cyr + `"/>`)
	assert.Equal(t, Windows1251, Detect(raw))
}

func TestDetectHeuristicUTF8(t *testing.T) {
	raw := []byte(`<?xml version="1.0"?><ФАЙЛ НаимПолн="Общество с ограниченной ответственностью"/>`)
	assert.Equal(t, UTF8, Detect(raw))
}

func TestDecodeRewritesDeclaration(t *testing.T) {
	cyr, err := charmap.Windows1251.NewEncoder().String(`<?xml version="1.0" encoding="windows-1251"?><ФАЙЛ НаимПолн="ООО ТЕСТ"/>`)
	require.NoError(t, err)

	text, kind, err := Decode([]byte(cyr))
	require.NoError(t, err)
	assert.Equal(t, Windows1251, kind)
	assert.Contains(t, text, `encoding="UTF-8"`)
	assert.Contains(t, text, "ООО ТЕСТ")
	assert.NotContains(t, text, "windows-1251")
}

func TestDecodeUTF8Passthrough(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="UTF-8"?><ФАЙЛ/>`)
	text, kind, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, UTF8, kind)
	assert.Equal(t, string(raw), text)
}
