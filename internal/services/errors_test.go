package services

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "peilbuis/internal/errors"
)

func TestClassify(t *testing.T) {
	assert.Nil(t, classify("parse", nil))

	notFound := apperrors.NewNotFoundError("file x")
	assert.Same(t, notFound, classify("parse", notFound))

	missing := classify("parse", apperrors.NewMissingColumnError("X", 7))
	assert.True(t, apperrors.IsType(missing, apperrors.ErrTypeValidation))
	assert.True(t, apperrors.IsMissingColumn(missing))

	_, convErr := strconv.ParseFloat("x", 64)
	parse := classify("parse", &apperrors.ParseError{Column: "Y", Line: 3, Value: "x", Cause: convErr})
	assert.True(t, apperrors.IsType(parse, apperrors.ErrTypeParsing))
	assert.ErrorIs(t, parse, strconv.ErrSyntax)

	other := classify("export", errors.New("disk full"))
	assert.True(t, apperrors.IsType(other, apperrors.ErrTypeStorage))
	assert.Contains(t, other.Error(), "export failed")
}
