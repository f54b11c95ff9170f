package strategy

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// names maps the variants of one kind to their stable identifiers. The index
// of a name is the numeric variant value.
type names[S ~uint8] struct {
	kind   Kind
	values []string
}

func (n names[S]) valid(s S) bool { return int(s) < len(n.values) }

func (n names[S]) name(s S) string {
	if n.valid(s) {
		return n.values[s]
	}
	return fmt.Sprintf("%s(%d)", n.kind, uint8(s))
}

// parse matches text case-insensitively, accepting '-' and ' ' for '_'.
func (n names[S]) parse(text string) (S, error) {
	key := strings.ToUpper(strings.TrimSpace(text))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for i, name := range n.values {
		if name == key {
			return S(i), nil
		}
	}
	err := errors.Wrapf(ErrUnknownVariant, "parsing %s variant %q", n.kind, text)
	return 0, errors.WithHintf(err, "valid %s variants: %s", n.kind, strings.Join(n.values, ", "))
}

func (n names[S]) marshalText(s S) ([]byte, error) {
	if !n.valid(s) {
		return nil, errors.Wrapf(ErrUnknownVariant, "marshaling %s", n.name(s))
	}
	return []byte(n.values[s]), nil
}

func (n names[S]) unmarshalYAML(node *yaml.Node) (S, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, errors.Newf("strategy: %s variant at line %d must be a scalar", n.kind, node.Line)
	}
	return n.parse(node.Value)
}
