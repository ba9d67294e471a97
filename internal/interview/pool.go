package interview

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Type is an interview category. Closed set.
type Type string

const (
	TypeTechnical  Type = "technical"
	TypeBehavioral Type = "behavioral"
	TypeLeadership Type = "leadership"
)

// Level is a seniority band. Closed set.
type Level string

const (
	LevelEntry  Level = "entry"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

// DefaultRole is the role-agnostic bucket a pool may define for a type.
const DefaultRole = "default"

// typeOrder and levelOrder fix the traversal order used when broadening a
// search across the whole corpus.
var typeOrder = []Type{TypeTechnical, TypeBehavioral, TypeLeadership}
var levelOrder = []Level{LevelEntry, LevelMid, LevelSenior}

//go:embed questions.yaml
var corpusYAML []byte

// Pool holds the question corpus keyed by type, role, and level. It is
// loaded once at startup and read-only afterwards. Question strings are not
// globally unique across buckets; selection deduplicates them.
type Pool struct {
	types map[Type]map[string]map[Level][]string
}

// LoadPool parses the embedded question corpus.
func LoadPool() (*Pool, error) {
	return parsePool(corpusYAML)
}

func parsePool(data []byte) (*Pool, error) {
	var raw map[string]map[string]map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse question corpus: %w", err)
	}

	p := &Pool{types: make(map[Type]map[string]map[Level][]string, len(raw))}
	for t, roles := range raw {
		typ := Type(t)
		switch typ {
		case TypeTechnical, TypeBehavioral, TypeLeadership:
		default:
			return nil, fmt.Errorf("unknown interview type %q in corpus", t)
		}

		rm := make(map[string]map[Level][]string, len(roles))
		for role, levels := range roles {
			lm := make(map[Level][]string, len(levels))
			for l, qs := range levels {
				lvl := Level(l)
				switch lvl {
				case LevelEntry, LevelMid, LevelSenior:
				default:
					return nil, fmt.Errorf("unknown level %q for %s/%s in corpus", l, t, role)
				}
				lm[lvl] = qs
			}
			rm[role] = lm
		}
		p.types[typ] = rm
	}

	return p, nil
}

// NormalizeType maps a free-form type string onto the closed set. Anything
// that is not "technical" or "behavioral" selects the leadership pool; this
// is the documented fallback for unknown types.
func NormalizeType(s string) Type {
	switch Type(s) {
	case TypeTechnical:
		return TypeTechnical
	case TypeBehavioral:
		return TypeBehavioral
	default:
		return TypeLeadership
	}
}

// NormalizeLevel maps a free-form level string onto the closed set. Anything
// that is not "entry" or "mid" maps to "senior", typos included.
func NormalizeLevel(s string) Level {
	switch Level(s) {
	case LevelEntry:
		return LevelEntry
	case LevelMid:
		return LevelMid
	default:
		return LevelSenior
	}
}

// roles returns the role keys of a type's pool in sorted order.
func (p *Pool) roles(typ Type) []string {
	rm := p.types[typ]
	keys := make([]string, 0, len(rm))
	for r := range rm {
		keys = append(keys, r)
	}
	sort.Strings(keys)
	return keys
}

// bucket returns the questions for an exact (type, role, level) coordinate,
// or nil when the bucket does not exist.
func (p *Pool) bucket(typ Type, role string, level Level) []string {
	if rm, ok := p.types[typ]; ok {
		if lm, ok := rm[role]; ok {
			return lm[level]
		}
	}
	return nil
}

// gatherByPriority builds the candidate list for a selection request by
// concatenation, most relevant bucket first. The result is intentionally not
// deduplicated; the selector handles that together with seen filtering.
func (p *Pool) gatherByPriority(typ Type, role string, level Level) []string {
	var pool []string

	// 1) exact role + level
	pool = append(pool, p.bucket(typ, role, level)...)

	// 2) same role, other levels
	for _, l := range levelOrder {
		if l == level {
			continue
		}
		pool = append(pool, p.bucket(typ, role, l)...)
	}

	// 3) other roles at the same level
	for _, r := range p.roles(typ) {
		if r == role {
			continue
		}
		pool = append(pool, p.bucket(typ, r, level)...)
	}

	// 4) role-agnostic default bucket, if the pool defines one
	if role != DefaultRole {
		pool = append(pool, p.bucket(typ, DefaultRole, level)...)
	}

	return pool
}

// all walks every question across every type/role/level bucket in the fixed
// traversal order and yields them to fn until fn returns false.
func (p *Pool) all(fn func(q string) bool) {
	for _, typ := range typeOrder {
		for _, role := range p.roles(typ) {
			for _, level := range levelOrder {
				for _, q := range p.bucket(typ, role, level) {
					if !fn(q) {
						return
					}
				}
			}
		}
	}
}
