package timetable

import (
	"crypto/sha1"
	"encoding/hex"

	"campushub-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// Fingerprint derives the content version of a resolved payload: the
// hex SHA-1 of its serialized form. Struct field order is fixed, so
// equal payloads always hash equal. SHA-1 is a cache validator here,
// not a security boundary.
func Fingerprint(payload interface{}) (string, error) {
	serialized, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrComputeFingerprint(err)
	}
	sum := sha1.Sum(serialized)
	return hex.EncodeToString(sum[:]), nil
}
