package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestParse(t *testing.T) {
	data := NewBuilder().
		String(1, "DRTH41cvmXk").
		Varint(5, 1665477463).
		Bytes(6, []byte{0x0a, 0x02, 'U', 'S'}).
		ToBytes()

	fields, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	f, ok := fields.First(1)
	require.True(t, ok)
	assert.Equal(t, protowire.BytesType, f.Type)
	assert.Equal(t, "DRTH41cvmXk", f.Text())

	f, ok = fields.First(5)
	require.True(t, ok)
	assert.Equal(t, protowire.VarintType, f.Type)
	assert.Equal(t, uint64(1665477463), f.Varint)

	f, ok = fields.First(6)
	require.True(t, ok)
	nested, err := Parse(f.Bytes)
	require.NoError(t, err)
	region, ok := nested.First(1)
	require.True(t, ok)
	assert.Equal(t, "US", region.Text())

	_, ok = fields.First(9)
	assert.False(t, ok)
}

func TestParse_Empty(t *testing.T) {
	fields, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tag", []byte{0x80}},
		{"truncated varint", []byte{0x08, 0x80}},
		{"truncated length", []byte{0x0a, 0x05, 'a'}},
		{"field number zero", []byte{0x00, 0x01}},
		{"fixed32", protowire.AppendFixed32(protowire.AppendTag(nil, 1, protowire.Fixed32Type), 7)},
		{"fixed64", protowire.AppendFixed64(protowire.AppendTag(nil, 1, protowire.Fixed64Type), 7)},
		{"start group", protowire.AppendTag(nil, 1, protowire.StartGroupType)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, fields)
		})
	}
}

func TestDecodeBase64(t *testing.T) {
	raw := []byte{0x0a, 0x02, 'U', 'S'}
	tests := []struct {
		name  string
		value string
	}{
		{"unpadded", "CgJVUw"},
		{"padded", "CgJVUw=="},
		{"percent encoded", "CgJVUw%3D%3D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.value)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}

	// percent-encoded padding keeps '+' and '/' of the standard alphabet
	std := []struct {
		name  string
		value string
		want  []byte
	}{
		{"plus with escaped padding", "++++AQ%3D%3D", []byte{0xfb, 0xef, 0xbe, 0x01}},
		{"slash and plus with escaped padding", "+/8%3D", []byte{0xfb, 0xff}},
		{"slashes with escaped padding", "//+/AQ%3D%3D", []byte{0xff, 0xff, 0xbf, 0x01}},
	}
	for _, tt := range std {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// standard alphabet characters map onto the url-safe ones
	stdBytes := []byte{0xfb, 0xff}
	got, err := DecodeBase64("+/8=")
	require.NoError(t, err)
	assert.Equal(t, stdBytes, got)
	assert.Equal(t, "-_8", EncodeBase64(stdBytes))

	_, err = DecodeBase64("not base64!")
	assert.Error(t, err)

	_, err = DecodeBase64("%zz")
	assert.Error(t, err)
}
