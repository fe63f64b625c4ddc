package utils

import (
	"strings"

	"github.com/google/uuid"
)

// idSpace namespaces element ids so they do not collide with other
// SHA-1 uuids derived from the same names.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("reelviz:svg"))

// ElementID returns a stable SVG/HTML id for a mark. The same kind and key
// always give the same id, so re-rendering never reshuffles ids.
func ElementID(kind string, key ...string) string {
	name := kind + "\x00" + strings.Join(key, "\x00")
	return kind + "-" + uuid.NewSHA1(idSpace, []byte(name)).String()[:13]
}
