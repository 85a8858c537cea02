package core

import (
	"sort"
	"strings"
	"unicode/utf8"
)

type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type PickerAction int

const (
	PickerNone PickerAction = iota
	PickerMoved
	PickerSelected
	PickerCancelled
)

// Picker filters a fixed item list by a fuzzy query typed key by key.
type Picker struct {
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{items: append([]PickerItem(nil), items...)}
	p.refilter()
	return p
}

func (p *Picker) Query() string { return p.query }

func (p *Picker) Cursor() int { return p.cursor }

func (p *Picker) Items() []PickerItem {
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) Current() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[min(p.cursor, len(p.filtered)-1)], true
}

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.refilter()
}

// HandleKey applies one key. Printable keys extend the query.
func (p *Picker) HandleKey(keyName string) (PickerAction, PickerItem) {
	switch keyName {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
			return PickerMoved, PickerItem{}
		}
	case "down", "ctrl+n":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return PickerMoved, PickerItem{}
		}
	case "enter":
		if item, ok := p.Current(); ok {
			return PickerSelected, item
		}
	case "esc":
		return PickerCancelled, PickerItem{}
	case "backspace":
		if p.query != "" {
			_, size := utf8.DecodeLastRuneInString(p.query)
			p.SetQuery(p.query[:len(p.query)-size])
		}
	default:
		if utf8.RuneCountInString(keyName) == 1 {
			p.SetQuery(p.query + keyName)
		}
	}
	return PickerNone, PickerItem{}
}

func (p *Picker) refilter() {
	type scored struct {
		item  PickerItem
		score int
		index int
	}
	q := strings.TrimSpace(p.query)
	rows := make([]scored, 0, len(p.items))
	for i, item := range p.items {
		search := item.Search
		if strings.TrimSpace(search) == "" {
			search = item.Label
		}
		if ok, score := fuzzyScore(search, q); ok {
			rows = append(rows, scored{item: item, score: score, index: i})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].index < rows[j].index
	})
	p.filtered = p.filtered[:0]
	for _, r := range rows {
		p.filtered = append(p.filtered, r.item)
	}
	p.cursor = max(0, min(p.cursor, len(p.filtered)-1))
}

// fuzzyScore matches query as an in-order subsequence of label. Matches at
// the start and runs of adjacent characters score higher.
func fuzzyScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	l := []rune(strings.ToLower(label))
	q := []rune(strings.ToLower(query))
	score, from, prev := len(q), 0, -2
	for _, ch := range q {
		at := -1
		for j := from; j < len(l); j++ {
			if l[j] == ch {
				at = j
				break
			}
		}
		if at < 0 {
			return false, 0
		}
		if at == 0 {
			score += 10
		}
		if at == prev+1 {
			score += 3
		}
		prev, from = at, at+1
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}
