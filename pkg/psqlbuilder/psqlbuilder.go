// Package psqlbuilder exposes squirrel builders preconfigured for PostgreSQL
// ($1 placeholders).
package psqlbuilder

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}

// IsUniqueViolation returns true if err is a PostgreSQL unique_violation (23505)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
