package form

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

func TestCheckImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")

	require.NoError(t, CheckImage(upstream.File{Name: "a.png", ContentType: "image/png", Data: png}, MaxDocumentSize))
	require.NoError(t, CheckImage(upstream.File{Name: "a.png", Data: png}, MaxDocumentSize))

	big := bytes.Repeat([]byte{1}, MaxDocumentSize+1)
	assert.ErrorIs(t, CheckImage(upstream.File{Name: "big.png", ContentType: "image/png", Data: big}, MaxDocumentSize), ErrFileTooLarge)

	assert.ErrorIs(t, CheckImage(upstream.File{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}, MaxDocumentSize), ErrUnsupportedType)

	_, ok := AsValidation(CheckImage(upstream.File{Name: "empty"}, MaxLogoSize))
	assert.True(t, ok)
}
