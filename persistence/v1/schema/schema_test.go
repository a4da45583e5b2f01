package schema

import (
	"context"
	"strings"
	"testing"

	"github.com/ribgsilva/notes/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaColumns(t *testing.T) {
	// the value column stores the whole collection and must not stop at 64KB
	assert.Contains(t, schema, "item_value LONGTEXT")
	assert.NotContains(t, strings.ToUpper(schema), "ITEM_VALUE TEXT")
	assert.Contains(t, schema, "item_key VARCHAR(255) NOT NULL PRIMARY KEY")
}

func TestCreateWithoutDatabase(t *testing.T) {
	sys.R.Database = nil

	err := Create(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not configured")
}
