package domain

import (
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDWrapper matches identifiers pasted in their shell representation,
// e.g. ObjectId("507f1f77bcf86cd799439011").
var objectIDWrapper = regexp.MustCompile(`^ObjectId\(\s*["']([^"']*)["']\s*\)$`)

// NormalizeID strips an ObjectId("...") wrapper and surrounding whitespace.
// Anything else is returned unchanged apart from the trimming.
func NormalizeID(raw string) string {
	s := strings.TrimSpace(raw)
	if m := objectIDWrapper.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// ParseID normalizes raw and checks it is a storage identifier, returning
// the canonical lowercase hex form.
func ParseID(raw string) (string, error) {
	id := NormalizeID(raw)
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("%w [%s]", ErrInvalidID, raw)
	}
	return oid.Hex(), nil
}

// NewID returns a fresh storage identifier in hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
