package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "found", KindFound.String())
	assert.Equal(t, "created", KindCreated.String())
	assert.Equal(t, "updated", KindUpdated.String())
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestResult_OK(t *testing.T) {
	assert.True(t, found(1).OK())
	assert.True(t, created(1).OK())
	assert.True(t, updated(1).OK())
	assert.False(t, conflict[int]().OK())
	assert.False(t, notFound[int]().OK())
	assert.False(t, invalid[int]("nope").OK())
	assert.False(t, Result[int]{}.OK())
}

func TestInvalidCarriesValidationError(t *testing.T) {
	res := invalid[string](MsgTitleRequired)

	assert.Equal(t, KindInvalid, res.Kind)
	assert.EqualError(t, res.Err, "Título é obrigatório")
}
