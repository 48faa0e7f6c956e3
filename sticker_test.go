package pll

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStickerValues(t *testing.T) {
	assert.Equal(t, Sticker(1), Orange)
	assert.Equal(t, Sticker(2), Blue)
	assert.Equal(t, Sticker(3), Red)
	assert.Equal(t, Sticker(4), Green)
	assert.Equal(t, Sticker(5), Yellow)
}

func TestStickerString(t *testing.T) {
	tests := []struct {
		s    Sticker
		want string
	}{
		{Orange, "Orange"},
		{Blue, "Blue"},
		{Red, "Red"},
		{Green, "Green"},
		{Yellow, "Yellow"},
		{Sticker(0), "Sticker(0)"},
		{Sticker(6), "Sticker(6)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestStickerHex(t *testing.T) {
	assert.Equal(t, "#ff8300", Orange.Hex())
	assert.Equal(t, "#07347c", Blue.Hex())
	assert.Equal(t, "#a31010", Red.Hex())
	assert.Equal(t, "#76ff00", Green.Hex())
	assert.Equal(t, "#ffff00", Yellow.Hex())
	assert.Empty(t, Sticker(0).Hex())
}

func TestStickerJSONRoundTrip(t *testing.T) {
	for _, s := range []Sticker{Orange, Blue, Red, Green, Yellow} {
		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `"`+s.String()+`"`, string(data))

		var got Sticker
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, s, got)
	}
}

func TestStickerMarshalInvalid(t *testing.T) {
	_, err := json.Marshal(Sticker(0))
	require.ErrorIs(t, err, ErrInvalidSticker)
}

func TestStickerUnmarshalInvalid(t *testing.T) {
	inputs := []string{`"Purple"`, `"orange"`, `3`, `null`}
	for _, in := range inputs {
		var s Sticker
		err := json.Unmarshal([]byte(in), &s)
		assert.ErrorIs(t, err, ErrInvalidSticker, "input %s", in)
	}
}
