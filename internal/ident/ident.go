// Package ident mints opaque entry identifiers.
package ident

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New returns a unique identifier of the form prefix_<ts36>_<rand>. The
// millisecond timestamp keeps ids roughly creation-ordered; the uuid
// fragment disambiguates calls within the same millisecond.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	rand := uuid.NewString()[:8]
	return prefix + "_" + ts + "_" + rand
}
