package catalog

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	minFields      = 4
	weightOffset   = 3
	maxTags        = 8
	describedTags  = 3
	generalSpecial = "General"
	maxLineBytes   = 1 << 20
)

// Program is one academic offering. Weights only holds traits with a
// strictly positive value.
type Program struct {
	ID          string             `json:"id" bson:"id"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description"`
	Tags        []string           `json:"tags" bson:"tags"`
	Weights     map[string]float64 `json:"weights,omitempty" bson:"weights,omitempty"`
}

// ParseString parses a weights CSV held in memory.
func ParseString(data string) []Program {
	programs, _ := Parse(strings.NewReader(data))
	return programs
}

// Parse reads a weights CSV one line at a time. A malformed line is
// dropped on its own; the only error returned is a failure of the
// underlying reader.
func Parse(r io.Reader) ([]Program, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var programs []Program
	for index := 0; scanner.Scan(); index++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if p, ok := parseRecord(splitFields(line), index); ok {
			programs = append(programs, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return programs, fmt.Errorf("read catalog: %w", err)
	}
	return programs, nil
}

// splitFields splits one CSV line on commas outside quotes. A doubled
// quote inside a quoted section is a literal quote; any other quote only
// toggles quoting and never reaches the field. An unterminated quote runs
// to the end of the line.
func splitFields(line string) []string {
	var (
		fields []string
		field  strings.Builder
		quoted bool
	)
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"' && quoted && i+1 < len(line) && line[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	return append(fields, field.String())
}

func parseRecord(record []string, index int) (Program, bool) {
	if len(record) < minFields {
		return Program{}, false
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	code, degree, special := record[0], record[1], record[2]
	if isHeader(code, degree) {
		return Program{}, false
	}

	weights := make(map[string]float64)
	for i, raw := range record[weightOffset:] {
		if i >= len(Vocabulary) {
			break
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			continue
		}
		weights[Vocabulary[i]] = v
	}

	tags := TopTraits(weights, maxTags)
	return Program{
		ID:          fmt.Sprintf("%s-%d", code, index),
		Name:        displayName(degree, special),
		Category:    NormalizeCode(code),
		Description: describe(degree, special, tags),
		Tags:        tags,
		Weights:     weights,
	}, true
}

func isHeader(code, degree string) bool {
	lc := strings.ToLower(code)
	return strings.Contains(lc, "sheet") ||
		strings.Contains(lc, "degree") ||
		strings.ToLower(degree) == "degree"
}

func displayName(degree, special string) string {
	if special == "" || special == generalSpecial {
		return degree
	}
	return degree + " - " + special
}

func describe(degree, special string, tags []string) string {
	focus := tags
	if len(focus) > describedTags {
		focus = focus[:describedTags]
	}
	if special == "" {
		special = generalSpecial
	}
	return fmt.Sprintf("%s with a specialization in %s. Key focus areas include %s.",
		degree, special, strings.Join(focus, ", "))
}

// TopTraits returns up to n trait names ordered by weight descending, ties
// broken by vocabulary position.
func TopTraits(weights map[string]float64, n int) []string {
	names := make([]string, 0, len(weights))
	for name, w := range weights {
		if w > 0 {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		wi, wj := weights[names[i]], weights[names[j]]
		if wi != wj {
			return wi > wj
		}
		return rank(names[i]) < rank(names[j])
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// rank orders unknown names after every vocabulary entry.
func rank(name string) int {
	if i := TraitIndex(name); i >= 0 {
		return i
	}
	return len(Vocabulary)
}
