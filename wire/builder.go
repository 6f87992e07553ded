package wire

import (
	"github.com/oddbit-project/visitordata/utils"
	"google.golang.org/protobuf/encoding/protowire"
)

const ErrInvalidFieldNumber = utils.Error("invalid field number")

// Number is a protobuf field number
type Number = protowire.Number

// Builder accumulates encoded fields in an append-only buffer
// A Builder is meant to be owned by a single construction call and is not safe for concurrent use
type Builder struct {
	buf []byte
}

// NewBuilder creates an empty Builder
func NewBuilder() *Builder {
	return &Builder{}
}

func checkNumber(num Number) {
	if !num.IsValid() || (num >= protowire.FirstReservedNumber && num <= protowire.LastReservedNumber) {
		panic(ErrInvalidFieldNumber)
	}
}

// String appends a length-delimited UTF-8 field
func (b *Builder) String(num Number, value string) *Builder {
	checkNumber(num)
	b.buf = protowire.AppendTag(b.buf, num, protowire.BytesType)
	b.buf = protowire.AppendString(b.buf, value)
	return b
}

// Varint appends an unsigned base-128 varint field
func (b *Builder) Varint(num Number, value uint64) *Builder {
	checkNumber(num)
	b.buf = protowire.AppendTag(b.buf, num, protowire.VarintType)
	b.buf = protowire.AppendVarint(b.buf, value)
	return b
}

// Bytes appends a length-delimited field with an opaque payload
func (b *Builder) Bytes(num Number, value []byte) *Builder {
	checkNumber(num)
	b.buf = protowire.AppendTag(b.buf, num, protowire.BytesType)
	b.buf = protowire.AppendBytes(b.buf, value)
	return b
}

// Message appends the current contents of nested as a bytes field
func (b *Builder) Message(num Number, nested *Builder) *Builder {
	return b.Bytes(num, nested.buf)
}

// Len returns the encoded size in bytes
func (b *Builder) Len() int {
	return len(b.buf)
}

// ToBytes returns a copy of the encoded buffer
func (b *Builder) ToBytes() []byte {
	result := make([]byte, len(b.buf))
	copy(result, b.buf)
	return result
}

// Base64 returns the encoded buffer as unpadded base64url text
func (b *Builder) Base64() string {
	return EncodeBase64(b.buf)
}
