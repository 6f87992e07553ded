package visitor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/oddbit-project/visitordata/utils"
)

const (
	ErrNotFound       = utils.Error("visitor data not found")
	ErrInvalidPayload = utils.Error("invalid service worker payload")
)

// xssiGuard prefixes the JSON body of sw.js_data
var xssiGuard = []byte(")]}'")

var tokenPattern = regexp.MustCompile(`^Cg[ts]`)

// ExtractFromServiceWorker returns the visitor data embedded in a sw.js_data response body
// The body is an XSSI-guarded JSON array; the token is the first string in [0][2] that
// looks like visitor data. A body without the guard returns ErrInvalidPayload.
func ExtractFromServiceWorker(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if !bytes.HasPrefix(body, xssiGuard) {
		return "", fmt.Errorf("%w: missing %q prefix", ErrInvalidPayload, xssiGuard)
	}
	body = body[len(xssiGuard):]

	var root []json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(root) == 0 {
		return "", ErrNotFound
	}

	var header []json.RawMessage
	if err := json.Unmarshal(root[0], &header); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(header) < 3 {
		return "", ErrNotFound
	}

	var candidates []json.RawMessage
	if err := json.Unmarshal(header[2], &candidates); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	for _, candidate := range candidates {
		var value string
		// non-string entries are skipped
		if json.Unmarshal(candidate, &value) != nil {
			continue
		}
		if tokenPattern.MatchString(value) {
			return value, nil
		}
	}
	return "", ErrNotFound
}
