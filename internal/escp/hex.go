package escp

import (
	"encoding/hex"

	"escp2render/internal/errs"
)

// DecodeHex decodes a hex literal into raw bytes, surfacing an Encoding
// error (rather than panicking or returning a partial slice) when the
// literal has an odd length or contains non-hex characters.
func DecodeHex(literal string) ([]byte, error) {
	if len(literal)%2 != 0 {
		return nil, errs.NewEncoding("DecodeHex", "hex literal has odd length")
	}
	b, err := hex.DecodeString(literal)
	if err != nil {
		return nil, errs.NewEncoding("DecodeHex", err.Error())
	}
	return b, nil
}

// EncodeHex renders raw bytes as a lowercase hex literal. This direction
// cannot fail, but is kept alongside DecodeHex for a symmetric API.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}
