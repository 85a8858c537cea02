// Package talent holds the talent directory model and its filter rules.
package talent

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Level is a gamification tier.
type Level string

const (
	LevelBronze Level = "bronze"
	LevelSilver Level = "prata"
	LevelGold   Level = "ouro"
)

// All is the filter value that disables a filter.
const All = "all"

type Talent struct {
	ID       int
	Name     string
	Role     string
	Trails   []string
	Badges   []string
	Level    Level
	Progress int
	ReadyFor string
	Location string
}

// Option is one selectable value of a filter, e.g. a badge.
type Option struct {
	ID   string
	Name string
}

type Filter struct {
	Query     string
	Expertise string
	Level     string
}

// Directory filters a fixed talent list against the expertise badges it knows.
type Directory struct {
	talents []Talent
	badges  []Option
}

func NewDirectory(talents []Talent, badges []Option) *Directory {
	return &Directory{talents: talents, badges: badges}
}

// Apply returns the talents matching every active part of f, in input order.
func (d *Directory) Apply(f Filter) []Talent {
	badge := d.badgeName(f.Expertise)
	out := make([]Talent, 0, len(d.talents))
	for _, t := range d.talents {
		if !MatchesQuery(t, f.Query) {
			continue
		}
		if !isAll(f.Expertise) && !contains(t.Badges, badge) {
			continue
		}
		if !isAll(f.Level) && string(t.Level) != f.Level {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (d *Directory) badgeName(id string) string {
	for _, b := range d.badges {
		if b.ID == id {
			return b.Name
		}
	}
	return ""
}

// MatchesQuery reports whether query hits the talent's name or role, either
// as a case-insensitive substring or word by word allowing small typos.
func MatchesQuery(t Talent, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	name, role := strings.ToLower(t.Name), strings.ToLower(t.Role)
	if strings.Contains(name, q) || strings.Contains(role, q) {
		return true
	}
	words := append(splitWords(name), splitWords(role)...)
	for _, qw := range splitWords(q) {
		if !matchesAnyWord(qw, words) {
			return false
		}
	}
	return true
}

func matchesAnyWord(q string, words []string) bool {
	budget := len([]rune(q)) / 4
	for _, w := range words {
		if strings.HasPrefix(w, q) {
			return true
		}
		if budget > 0 && levenshtein.ComputeDistance(q, w) <= budget {
			return true
		}
	}
	return false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isAll(v string) bool {
	return v == "" || v == All
}

func contains(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Cycle returns the option after current, wrapping; unknown current yields the first.
func Cycle(options []Option, current string) string {
	if len(options) == 0 {
		return All
	}
	for i, o := range options {
		if o.ID == current {
			return options[(i+1)%len(options)].ID
		}
	}
	return options[0].ID
}

// OptionName returns the display name of id, or id itself.
func OptionName(options []Option, id string) string {
	for _, o := range options {
		if o.ID == id {
			return o.Name
		}
	}
	return id
}
