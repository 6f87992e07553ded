package wire

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// EncodeBase64 encodes data with the URL-safe alphabet and no padding
func EncodeBase64(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64 is the lenient counterpart of EncodeBase64
// It also accepts padding, the standard alphabet and percent-encoded input such as "...%3D%3D"
func DecodeBase64(value string) ([]byte, error) {
	if strings.Contains(value, "%") {
		unescaped, err := url.PathUnescape(value)
		if err != nil {
			return nil, err
		}
		value = unescaped
	}
	value = strings.TrimRight(value, "=")
	value = strings.NewReplacer("+", "-", "/", "_").Replace(value)
	return base64.RawURLEncoding.DecodeString(value)
}
