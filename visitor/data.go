package visitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/oddbit-project/visitordata/utils"
	"github.com/oddbit-project/visitordata/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// field numbers
const (
	fieldID        wire.Number = 1
	fieldTimestamp wire.Number = 5
	fieldLocale    wire.Number = 6

	fieldRegion     wire.Number = 1
	fieldSeedRecord wire.Number = 2

	fieldSeedPadding wire.Number = 2
	fieldSeed        wire.Number = 4
)

const (
	// Prefix is the usual start of a token whose id begins with a letter
	Prefix = "Cgt"
	// altPrefix is produced when the id begins with a digit or '-'
	altPrefix = "Cgs"

	ErrInvalidToken = utils.Error("invalid visitor data")
)

// rejection reasons reported to metrics
const (
	reasonEncoding  = "encoding"
	reasonStructure = "structure"
)

// Data is the decoded content of a visitor data token
type Data struct {
	ID        string `json:"id"`
	Timestamp uint64 `json:"timestamp"`
	Region    string `json:"region,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
}

// Time returns Timestamp as UTC time
// A timestamp that wrapped below zero maps to a time before the epoch
func (d *Data) Time() time.Time {
	return time.Unix(int64(d.Timestamp), 0).UTC()
}

// Encode builds the token for d
func (d *Data) Encode() string {
	seed := wire.NewBuilder().
		String(fieldSeedPadding, "").
		Varint(fieldSeed, d.Seed)
	locale := wire.NewBuilder().
		String(fieldRegion, d.Region).
		Message(fieldSeedRecord, seed)
	return wire.NewBuilder().
		String(fieldID, d.ID).
		Varint(fieldTimestamp, d.Timestamp).
		Message(fieldLocale, locale).
		Base64()
}

// HasValidPrefix returns true if value looks like a visitor data token
func HasValidPrefix(value string) bool {
	return strings.HasPrefix(value, Prefix) || strings.HasPrefix(value, altPrefix)
}

// Decode parses a visitor data token
// The locale record is optional, since stock tokens sent by web clients omit it
func Decode(value string) (*Data, error) {
	data, _, err := decode(value)
	return data, err
}

func decode(value string) (*Data, string, error) {
	raw, err := wire.DecodeBase64(value)
	if err != nil {
		return nil, reasonEncoding, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	outer, err := wire.Parse(raw)
	if err != nil {
		return nil, reasonEncoding, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	result := &Data{}
	id, err := requireField(outer, fieldID, protowire.BytesType)
	if err != nil {
		return nil, reasonStructure, err
	}
	result.ID = id.Text()

	ts, err := requireField(outer, fieldTimestamp, protowire.VarintType)
	if err != nil {
		return nil, reasonStructure, err
	}
	result.Timestamp = ts.Varint

	if _, ok := outer.First(fieldLocale); !ok {
		return result, "", nil
	}
	localeField, err := requireField(outer, fieldLocale, protowire.BytesType)
	if err != nil {
		return nil, reasonStructure, err
	}
	locale, err := wire.Parse(localeField.Bytes)
	if err != nil {
		return nil, reasonStructure, fmt.Errorf("%w: locale: %v", ErrInvalidToken, err)
	}
	region, err := requireField(locale, fieldRegion, protowire.BytesType)
	if err != nil {
		return nil, reasonStructure, err
	}
	result.Region = region.Text()

	seedField, err := requireField(locale, fieldSeedRecord, protowire.BytesType)
	if err != nil {
		return nil, reasonStructure, err
	}
	seed, err := wire.Parse(seedField.Bytes)
	if err != nil {
		return nil, reasonStructure, fmt.Errorf("%w: seed: %v", ErrInvalidToken, err)
	}
	seedValue, err := requireField(seed, fieldSeed, protowire.VarintType)
	if err != nil {
		return nil, reasonStructure, err
	}
	result.Seed = seedValue.Varint
	return result, "", nil
}

func requireField(fields wire.Fields, num wire.Number, typ protowire.Type) (wire.Field, error) {
	field, ok := fields.First(num)
	if !ok {
		return field, fmt.Errorf("%w: missing field %d", ErrInvalidToken, num)
	}
	if field.Type != typ {
		return field, fmt.Errorf("%w: field %d has wire type %d, expected %d", ErrInvalidToken, num, field.Type, typ)
	}
	return field, nil
}
