package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName reports the database dialect, defaulting to sqlite.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// likeOperatorByDialect picks the case-insensitive match operator. sqlite
// LIKE is already case-insensitive for ASCII, postgres needs ILIKE.
func likeOperatorByDialect(dialect string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return "ILIKE"
	default:
		return "LIKE"
	}
}

// buildSearchCondition builds an OR chain of LIKE conditions over the given
// columns and returns the number of placeholders it used.
func buildSearchCondition(db *gorm.DB, columns []string) (string, int) {
	return buildSearchConditionByDialect(dbDialectName(db), columns)
}

func buildSearchConditionByDialect(dialect string, columns []string) (string, int) {
	operator := likeOperatorByDialect(dialect)
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s ?", trimmed, operator))
	}
	return strings.Join(parts, " OR "), len(parts)
}

// repeatLikeArgs repeats the LIKE argument for each placeholder.
func repeatLikeArgs(like string, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, like)
	}
	return args
}
