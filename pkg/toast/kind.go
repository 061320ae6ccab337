package toast

import (
	"fmt"
	"strings"
)

// Kind is the semantic category of a toast. It selects the icon and accent color.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// DefaultKind is used when the caller passes an empty kind.
const DefaultKind = KindInfo

// Style is the presentation attached to a kind.
type Style struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var styles = map[Kind]Style{
	KindSuccess: {Icon: "✓", Color: "#10B981"},
	KindError:   {Icon: "✕", Color: "#EF4444"},
	KindInfo:    {Icon: "ℹ", Color: "#3B82F6"},
	KindWarning: {Icon: "⚠", Color: "#F59E0B"},
}

// Kinds returns all supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindSuccess, KindError, KindInfo, KindWarning}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := styles[k]
	return ok
}

// Style returns the icon and color for k.
// Unknown kinds yield the zero Style; call ParseKind first.
func (k Kind) Style() Style {
	return styles[k]
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind validates s against the closed set of kinds, ignoring case.
// An empty string resolves to DefaultKind.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return DefaultKind, nil
	}
	k := Kind(strings.ToLower(s))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}
