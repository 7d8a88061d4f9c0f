package psqlbuilder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("garages").
		Where(squirrel.Eq{"owner_id": 1}).
		Where(squirrel.Eq{"name": "a"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM garages WHERE owner_id = $1 AND name = $2", query)
	assert.Equal(t, []interface{}{1, "a"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})

	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
