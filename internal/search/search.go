// Package search matches corpus items against text queries and filter sets.
package search

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/model"
)

// Scope restricts which item types a search visits.
type Scope string

const (
	ScopeAll       Scope = "all"
	ScopeHexagrams Scope = "hexagrams"
	ScopeMaterials Scope = "materials"
	ScopeTrigrams  Scope = "trigrams"
)

// ParseScope validates a scope name. Empty means ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "":
		return ScopeAll, nil
	case ScopeAll, ScopeHexagrams, ScopeMaterials, ScopeTrigrams:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown scope %q (use all, hexagrams, materials or trigrams)", s)
}

// Filters narrows results per category. Values within a category are ORed,
// categories are ANDed, and an empty category imposes no constraint.
type Filters struct {
	Fortune    []string `json:"fortune"`
	Difficulty []string `json:"difficulty"`
	Trigram    []string `json:"trigram"`
}

// Empty reports whether no category has a value.
func (f Filters) Empty() bool {
	return len(f.Fortune) == 0 && len(f.Difficulty) == 0 && len(f.Trigram) == 0
}

// Item is a corpus entry that can be searched.
type Item interface {
	model.Hexagram | model.Material | model.Trigram
}

// MatchesQuery reports whether query occurs, case-sensitively and without
// normalization, in any of the item's text fields. A blank query matches.
func MatchesQuery[T Item](item T, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	for _, field := range textFields(item) {
		if strings.Contains(field, query) {
			return true
		}
	}
	return false
}

func textFields(item any) []string {
	switch v := item.(type) {
	case model.Hexagram:
		return []string{v.Name, v.Description, v.Judgment, v.Image, v.Meaning, v.Advice}
	case model.Material:
		return append([]string{v.Title, v.Description}, v.Content...)
	case model.Trigram:
		return []string{v.Name, v.Symbol, v.Element, v.Direction, v.Meaning}
	}
	return nil
}

// MatchesFilters reports whether item satisfies every filter category that
// applies to its type. Fortune and trigram apply to hexagrams, difficulty to
// materials.
func MatchesFilters[T Item](item T, f Filters) bool {
	switch v := any(item).(type) {
	case model.Hexagram:
		if len(f.Fortune) > 0 && !slices.Contains(f.Fortune, v.Fortune) {
			return false
		}
		if len(f.Trigram) > 0 &&
			!slices.Contains(f.Trigram, v.UpperTrigram) && !slices.Contains(f.Trigram, v.LowerTrigram) {
			return false
		}
	case model.Material:
		if len(f.Difficulty) > 0 && !slices.Contains(f.Difficulty, v.Difficulty) {
			return false
		}
	}
	return true
}

// Query is one search request.
type Query struct {
	Text    string
	Scope   Scope
	Filters Filters
}

// Result is one matched item, tagged with its type.
type Result struct {
	Type     string          `json:"type"`
	Hexagram *model.Hexagram `json:"hexagram,omitempty"`
	Material *model.Material `json:"material,omitempty"`
	Trigram  *model.Trigram  `json:"trigram,omitempty"`
}

// Title returns a display name for the result.
func (r Result) Title() string {
	switch {
	case r.Hexagram != nil:
		return r.Hexagram.Name + "卦"
	case r.Material != nil:
		return r.Material.Title
	case r.Trigram != nil:
		return r.Trigram.Name
	}
	return ""
}

// Search runs q over c. Hexagrams come first, then materials, then
// trigrams, each in corpus order. A blank query over every scope with no
// filters returns nothing.
func Search(c *corpus.Corpus, q Query) []Result {
	scope := q.Scope
	if scope == "" {
		scope = ScopeAll
	}
	if strings.TrimSpace(q.Text) == "" && scope == ScopeAll && q.Filters.Empty() {
		return []Result{}
	}

	results := []Result{}
	if scope == ScopeAll || scope == ScopeHexagrams {
		for i := range c.Hexagrams {
			h := c.Hexagrams[i]
			if MatchesQuery(h, q.Text) && MatchesFilters(h, q.Filters) {
				results = append(results, Result{Type: "hexagram", Hexagram: &h})
			}
		}
	}
	if scope == ScopeAll || scope == ScopeMaterials {
		for i := range c.Materials {
			m := c.Materials[i]
			if MatchesQuery(m, q.Text) && MatchesFilters(m, q.Filters) {
				results = append(results, Result{Type: "material", Material: &m})
			}
		}
	}
	if scope == ScopeAll || scope == ScopeTrigrams {
		for i := range c.Trigrams {
			t := c.Trigrams[i]
			if MatchesQuery(t, q.Text) && MatchesFilters(t, q.Filters) {
				results = append(results, Result{Type: "trigram", Trigram: &t})
			}
		}
	}
	return results
}
