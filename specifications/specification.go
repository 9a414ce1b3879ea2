package specifications

import (
	"strings"

	"gorm.io/gorm"
)

// Clause is a single SQL condition with its bind arguments.
type Clause struct {
	Expr string
	Args []any
}

// Specification is an ordered list of clauses combined with AND.
// An empty specification matches every row.
type Specification []Clause

// Apply folds the clauses into the query.
func (s Specification) Apply(db *gorm.DB) *gorm.DB {
	for _, c := range s {
		db = db.Where(c.Expr, c.Args...)
	}
	return db
}

// contains adds a case-insensitive, unanchored substring match.
func contains(s Specification, column, value string) Specification {
	return append(s, Clause{
		Expr: "LOWER(" + column + ") LIKE ?",
		Args: []any{"%" + strings.ToLower(value) + "%"},
	})
}

func equals(s Specification, column string, value any) Specification {
	return append(s, Clause{Expr: column + " = ?", Args: []any{value}})
}
