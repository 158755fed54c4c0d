package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/polkiloo/mmtc/internal/domain/criteria"
)

type columnKind int

const (
	textColumn columnKind = iota
	numericColumn
	arrayColumn
)

// columns allow-lists filterable fields; field names double as column names.
type columns map[string]columnKind

var employerColumns = columns{
	criteria.FieldName:            textColumn,
	criteria.FieldIC:              textColumn,
	criteria.FieldContactNumber:   textColumn,
	criteria.FieldEmailAddress:    textColumn,
	criteria.FieldPhysicalAddress: textColumn,
}

var helperColumns = columns{
	criteria.FieldName:        textColumn,
	criteria.FieldDOB:         textColumn,
	criteria.FieldAge:         numericColumn,
	criteria.FieldEthnicGroup: textColumn,
	criteria.FieldNationality: textColumn,
	criteria.FieldSkills:      arrayColumn,
}

// whereClause renders c as " WHERE ..." with positional arguments. Substring
// values go to the case-insensitive regex operator unescaped.
func whereClause(c criteria.Criteria, cols columns) (string, []any, error) {
	if c.Empty() {
		return "", nil, nil
	}

	conds := make([]string, 0, len(c.Predicates))
	args := make([]any, 0, len(c.Predicates))
	for _, p := range c.Predicates {
		kind, ok := cols[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter field %q", p.Field)
		}
		args = append(args, p.Value)
		placeholder := "$" + strconv.Itoa(len(args))

		switch {
		case kind == arrayColumn && p.Match == criteria.MatchExact:
			conds = append(conds, placeholder+" = ANY("+p.Field+")")
		case kind == arrayColumn:
			conds = append(conds, "array_to_string("+p.Field+", ',') ~* "+placeholder)
		case kind == numericColumn && p.Match == criteria.MatchExact:
			conds = append(conds, p.Field+"::text = "+placeholder)
		case kind == numericColumn:
			conds = append(conds, p.Field+"::text ~* "+placeholder)
		case p.Match == criteria.MatchExact:
			conds = append(conds, p.Field+" = "+placeholder)
		default:
			conds = append(conds, p.Field+" ~* "+placeholder)
		}
	}

	return " WHERE " + strings.Join(conds, " AND "), args, nil
}
