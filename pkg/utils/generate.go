package utils

import (
	"github.com/google/uuid"
)

const provisionalPrefix = "draft-"

// GenerateProvisionalID tags a booking candidate before the store assigns the
// canonical id. It is only used for log correlation.
func GenerateProvisionalID() string {
	return provisionalPrefix + uuid.NewString()
}
