package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
)

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite only accepts OFFSET after a LIMIT, so an offset alone is paired with LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeExtra serializes unrecognized labels for the extra column.
func encodeExtra(extra map[string]string) (string, error) {
	if len(extra) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("failed to encode extra fields: %w", err)
	}
	return string(data), nil
}

// decodeExtra parses the extra column. An empty object yields a nil map.
func decodeExtra(value string) (map[string]string, error) {
	var extra map[string]string
	if err := json.Unmarshal([]byte(value), &extra); err != nil {
		return nil, fmt.Errorf("failed to parse extra: %w", err)
	}
	if len(extra) == 0 {
		return nil, nil
	}
	return extra, nil
}
