package semchunk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Retention controls which side of a split keeps the separator text.
type Retention string

const (
	// RetainPreceding attaches the separator to the piece before it.
	RetainPreceding Retention = "preceding"
	// RetainFollowing attaches the separator to the piece after it.
	RetainFollowing Retention = "following"
	// Drop discards the separator. Dropped separators are restored when
	// adjacent chunks are merged back together.
	Drop Retention = "drop"
)

// Level is one entry in the separator hierarchy. Exactly one of Pattern and
// Separators is set for a separator level: Pattern is matched against the
// span and its longest match is used as the separator, while Separators is an
// ordered list of literal candidates of which the first one present in the
// span wins. A level with neither set splits at grapheme-cluster boundaries.
type Level struct {
	Name       string
	Pattern    *regexp.Regexp
	Separators []string
	Retention  Retention
}

// Hierarchy is an ordered separator table, coarsest level first. The splitter
// walks it top to bottom and uses the first level that produces at least two
// non-empty pieces for the span at hand.
type Hierarchy []Level

var (
	newlineRun    = regexp.MustCompile(`[\n\r]+`)
	tabRun        = regexp.MustCompile(`\t+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// DefaultHierarchy returns the built-in separator table: paragraph breaks,
// tabs, sentence terminators, clause separators, whitespace, word joiners and
// finally grapheme clusters. Sentence and clause punctuation stays attached
// to the preceding piece; whitespace separators are dropped.
func DefaultHierarchy() Hierarchy {
	return Hierarchy{
		{Name: "paragraph", Pattern: newlineRun, Retention: Drop},
		{Name: "tab", Pattern: tabRun, Retention: Drop},
		{Name: "sentence", Separators: []string{".", "!", "?", "*"}, Retention: RetainPreceding},
		{Name: "clause", Separators: []string{";", ",", "(", ")", "[", "]", "“", "”", "‘", "’", "'", "\"", "`", ":", "—", "…"}, Retention: RetainPreceding},
		{Name: "whitespace", Pattern: whitespaceRun, Retention: Drop},
		{Name: "joiner", Separators: []string{"/", "\\", "–", "&", "-"}, Retention: RetainPreceding},
		{Name: "grapheme"},
	}
}

// splitPoint is a candidate split position within a span, expressed relative
// to the span text. leftEnd and rightStart already account for the level's
// retention policy, so splitting at the point loses no bytes other than a
// deliberately dropped separator.
type splitPoint struct {
	pos        int
	leftEnd    int
	rightStart int
}

// points returns the usable split candidates the level offers for text, in
// ascending position order. It returns nil when the level cannot produce two
// non-empty pieces.
func (l Level) points(text string) []splitPoint {
	if l.Pattern == nil && len(l.Separators) == 0 {
		return graphemePoints(text)
	}
	sep := l.separator(text)
	if sep == "" {
		return nil
	}
	var pts []splitPoint
	for off := 0; ; {
		i := strings.Index(text[off:], sep)
		if i < 0 {
			break
		}
		pos := off + i
		pt := splitPoint{pos: pos}
		switch l.Retention {
		case RetainPreceding:
			pt.leftEnd = pos + len(sep)
			pt.rightStart = pos + len(sep)
		case RetainFollowing:
			pt.leftEnd = pos
			pt.rightStart = pos
		default:
			pt.leftEnd = pos
			pt.rightStart = pos + len(sep)
		}
		if pt.leftEnd > 0 && pt.rightStart < len(text) {
			pts = append(pts, pt)
		}
		off = pos + len(sep)
	}
	return pts
}

// separator picks the concrete separator string the level uses for text: the
// longest Pattern match, or the first literal candidate present.
func (l Level) separator(text string) string {
	if l.Pattern != nil {
		var longest string
		for _, m := range l.Pattern.FindAllString(text, -1) {
			if len(m) > len(longest) {
				longest = m
			}
		}
		return longest
	}
	for _, s := range l.Separators {
		if strings.Contains(text, s) {
			return s
		}
	}
	return ""
}

// graphemePoints returns a split candidate at every grapheme-cluster boundary
// strictly inside text.
func graphemePoints(text string) []splitPoint {
	segs := graphemes.SegmentAll([]byte(text))
	if len(segs) < 2 {
		return nil
	}
	pts := make([]splitPoint, 0, len(segs)-1)
	off := 0
	for _, seg := range segs[:len(segs)-1] {
		off += len(seg)
		pts = append(pts, splitPoint{pos: off, leftEnd: off, rightStart: off})
	}
	return pts
}

// LevelConfig is the YAML representation of a single hierarchy level.
type LevelConfig struct {
	Name       string   `yaml:"name" validate:"required"`
	Pattern    string   `yaml:"pattern,omitempty" validate:"excluded_with=Separators"`
	Separators []string `yaml:"separators,omitempty"`
	Retention  string   `yaml:"retention,omitempty" validate:"omitempty,oneof=preceding following drop"`
}

// HierarchyConfig is the YAML representation of a separator table.
type HierarchyConfig struct {
	Levels []LevelConfig `yaml:"levels" validate:"required,min=1,dive"`
}

var validate = validator.New()

// ParseHierarchy builds a Hierarchy from its YAML representation:
//
//	levels:
//	  - name: paragraph
//	    pattern: "[\n\r]+"
//	    retention: drop
//	  - name: sentence
//	    separators: [".", "!", "?"]
//	    retention: preceding
//	  - name: grapheme
//
// A level without pattern and separators splits at grapheme boundaries.
// Retention defaults to drop.
func ParseHierarchy(data []byte) (Hierarchy, error) {
	var cfg HierarchyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("semchunk: parse hierarchy: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("semchunk: invalid hierarchy: %w", err)
	}
	h := make(Hierarchy, 0, len(cfg.Levels))
	for _, lc := range cfg.Levels {
		level := Level{
			Name:       lc.Name,
			Separators: lc.Separators,
			Retention:  Retention(lc.Retention),
		}
		if lc.Pattern != "" {
			re, err := regexp.Compile(lc.Pattern)
			if err != nil {
				return nil, fmt.Errorf("semchunk: level %q: %w", lc.Name, err)
			}
			level.Pattern = re
		}
		if level.Retention == "" {
			level.Retention = Drop
		}
		h = append(h, level)
	}
	return h, nil
}
