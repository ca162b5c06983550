package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilderEmpty(t *testing.T) {
	b := &updateBuilder{}
	assert.True(t, b.empty())
	assert.Equal(t, 1, b.nextArg())
}

func TestUpdateBuilderNumbersArgsInOrder(t *testing.T) {
	b := &updateBuilder{}
	b.set("title", "Demo")
	b.set("featured", true)
	b.setExpr("updated_at = NOW()")

	assert.False(t, b.empty())
	assert.Equal(t, "title = $1, featured = $2, updated_at = NOW()", b.clause())
	assert.Equal(t, []interface{}{"Demo", true}, b.args)
	assert.Equal(t, 3, b.nextArg())
}

func TestUpdateBuilderExprOnly(t *testing.T) {
	b := &updateBuilder{}
	b.setExpr("updated_at = NOW()")

	assert.False(t, b.empty())
	assert.Equal(t, "updated_at = NOW()", b.clause())
	assert.Equal(t, 1, b.nextArg())
}
