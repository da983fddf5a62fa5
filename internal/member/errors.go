package member

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilMember is returned when a classifier function receives no member.
var ErrNilMember = errors.New("member: nil member")

// UnsupportedShapeError reports a declaration the name extraction has no
// rule for. Ordering such a member by a guessed name could silently
// produce a wrong order, so it is an error instead.
type UnsupportedShapeError struct {
	Kind     Kind
	NodeType string
	Text     string
}

func (e *UnsupportedShapeError) Error() string {
	node := e.NodeType
	if node == "" {
		node = e.Kind.String()
	}
	return fmt.Sprintf("unable to get member name: %q (%s)", firstLine(e.Text), node)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
