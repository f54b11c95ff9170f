package strategy

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Profile names one variant per kind. It is the unit of stored
// configuration: a YAML document such as
//
//	list: LINKED_LIST
//	sorted_set: concurrent-skip-list-set
//	map: TREE_MAP
//
// Kinds that are not mentioned keep DEFAULT.
type Profile struct {
	List      List      `yaml:"list,omitempty" json:"list"`
	Set       Set       `yaml:"set,omitempty" json:"set"`
	SortedSet SortedSet `yaml:"sorted_set,omitempty" json:"sorted_set"`
	Queue     Queue     `yaml:"queue,omitempty" json:"queue"`
	Deque     Deque     `yaml:"deque,omitempty" json:"deque"`
	Map       Map       `yaml:"map,omitempty" json:"map"`
}

// DefaultProfile returns a profile selecting DEFAULT for every kind.
func DefaultProfile() Profile { return Profile{} }

// LoadProfile decodes a YAML profile from r. An empty document yields
// DefaultProfile. Unknown keys and unknown variant names are rejected; the
// returned error matches ErrInvalidProfile and, for bad names, also
// ErrUnknownVariant.
func LoadProfile(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultProfile(), nil
		}
		return Profile{}, errors.Mark(errors.Wrap(err, "strategy: decoding profile"), ErrInvalidProfile)
	}
	Logger().Debug("strategy: profile loaded", slog.Any("profile", p))
	return p, nil
}

// ParseProfile is LoadProfile over an in-memory document.
func ParseProfile(data []byte) (Profile, error) {
	return LoadProfile(bytes.NewReader(data))
}

// Marshal encodes p as YAML, omitting kinds left at DEFAULT.
func (p Profile) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "strategy: encoding profile")
	}
	return out, nil
}

// Resolve returns a copy of p with every field resolved to its concrete
// variant.
func (p Profile) Resolve() Profile {
	return Profile{
		List:      p.List.Resolve(),
		Set:       p.Set.Resolve(),
		SortedSet: p.SortedSet.Resolve(),
		Queue:     p.Queue.Resolve(),
		Deque:     p.Deque.Resolve(),
		Map:       p.Map.Resolve(),
	}
}

// Strategies returns the six selected variants in kind order.
func (p Profile) Strategies() []Strategy {
	return []Strategy{p.List, p.Set, p.SortedSet, p.Queue, p.Deque, p.Map}
}

// LogValue renders the profile as a group of variant names.
func (p Profile) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("list", p.List.String()),
		slog.String("set", p.Set.String()),
		slog.String("sorted_set", p.SortedSet.String()),
		slog.String("queue", p.Queue.String()),
		slog.String("deque", p.Deque.String()),
		slog.String("map", p.Map.String()),
	)
}
