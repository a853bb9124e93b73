package gamedata

import (
	"fmt"
	"sort"
	"strconv"
)

// ValueGroup collects the rows sharing one distinct value of a field.
type ValueGroup struct {
	Value    string
	Total    int
	Examples []string
}

// FindValues reports every distinct value of a field across a param
// table, with up to limit example row names per value. A negative limit
// keeps all examples. Groups sort numerically when every value parses
// as a number, lexically otherwise.
func (s *Source) FindValues(stem, field string, limit int) ([]ValueGroup, error) {
	t, err := s.Table(stem)
	if err != nil {
		return nil, err
	}
	if !t.HasField(field) {
		return nil, fmt.Errorf("param table %s has no field %q", stem, field)
	}

	groups := make(map[string]*ValueGroup)
	var order []string
	for _, row := range t.Rows() {
		value := row.Str(field)
		g, ok := groups[value]
		if !ok {
			g = &ValueGroup{Value: value}
			groups[value] = g
			order = append(order, value)
		}
		g.Total++
		if row.Name == "" {
			continue
		}
		if limit < 0 || len(g.Examples) < limit {
			g.Examples = append(g.Examples, row.Name)
		}
	}

	numeric := true
	for _, value := range order {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			numeric = false
			break
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if numeric {
			a, _ := strconv.ParseFloat(order[i], 64)
			b, _ := strconv.ParseFloat(order[j], 64)
			return a < b
		}
		return order[i] < order[j]
	})

	out := make([]ValueGroup, 0, len(order))
	for _, value := range order {
		out = append(out, *groups[value])
	}
	return out, nil
}
