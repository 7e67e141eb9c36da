package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

const (
	pqForeignKeyViolation = "23503"
	pqInvalidText         = "22P02"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// isMissingReference reports a write that points at a row that does not exist.
func isMissingReference(err error) bool {
	code := pqCode(err)
	return code == pqForeignKeyViolation || code == pqInvalidText
}

// conditions collects AND-ed equality filters with positional placeholders.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) add(column string, value any) {
	c.args = append(c.args, value)
	c.clauses = append(c.clauses, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func (c *conditions) raw(clause string) {
	c.clauses = append(c.clauses, clause)
}

// where renders the clause, or an empty string when nothing was added.
func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// ParseTags splits a comma separated list, trimming blanks and dropping duplicates.
func ParseTags(csv string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)

	for _, raw := range strings.Split(csv, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}
