package wire

import (
	"fmt"

	"github.com/oddbit-project/visitordata/utils"
	"google.golang.org/protobuf/encoding/protowire"
)

const ErrMalformed = utils.Error("malformed record")

// Field is a single decoded field
// Varint is set for protowire.VarintType, Bytes for protowire.BytesType
type Field struct {
	Number Number
	Type   protowire.Type
	Varint uint64
	Bytes  []byte
}

// Text returns the payload of a length-delimited field as a string
func (f Field) Text() string {
	return string(f.Bytes)
}

type Fields []Field

// First returns the first field with the given number
func (f Fields) First(num Number) (Field, bool) {
	for _, field := range f {
		if field.Number == num {
			return field, true
		}
	}
	return Field{}, false
}

// Parse decodes a flat record; nested records stay as Bytes and can be parsed again
// Only varint and length-delimited fields are accepted
func Parse(data []byte) (Fields, error) {
	result := make(Fields, 0)
	offset := 0
	for offset < len(data) {
		num, typ, n := protowire.ConsumeTag(data[offset:])
		if n < 0 {
			return nil, fmt.Errorf("%w: offset %d: %v", ErrMalformed, offset, protowire.ParseError(n))
		}
		field := Field{Number: num, Type: typ}
		pos := offset + n

		switch typ {
		case protowire.VarintType:
			v, m := protowire.ConsumeVarint(data[pos:])
			if m < 0 {
				return nil, fmt.Errorf("%w: offset %d: %v", ErrMalformed, pos, protowire.ParseError(m))
			}
			field.Varint = v
			pos += m

		case protowire.BytesType:
			v, m := protowire.ConsumeBytes(data[pos:])
			if m < 0 {
				return nil, fmt.Errorf("%w: offset %d: %v", ErrMalformed, pos, protowire.ParseError(m))
			}
			field.Bytes = v
			pos += m

		default:
			return nil, fmt.Errorf("%w: offset %d: unsupported wire type %d", ErrMalformed, offset, typ)
		}

		result = append(result, field)
		offset = pos
	}
	return result, nil
}
