package validator

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct1 struct {
	Field1      string        `json:"field1" validate:"required"`
	Field2      string        `json:"-" validate:"required"`
	Field3      string        `validate:"required"`
	Nested      []testStruct2 `json:"nested" validate:"dive"`
	testStruct2               // anonymous
}

type testStruct2 struct {
	Field4 string `json:"field4" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()
	err := Validate(testStruct1{Nested: []testStruct2{{}, {}}})
	expected := `
- field1 is a required field
- Field2 is a required field
- Field3 is a required field
- nested[0].field4 is a required field
- nested[1].field4 is a required field
- field4 is a required field
`
	require.Error(t, err)
	assert.Equal(t, strings.TrimSpace(expected), err.Error())
}

func TestValidateStructOk(t *testing.T) {
	t.Parallel()
	value := testStruct1{
		Field1:      "a",
		Field2:      "b",
		Field3:      "c",
		Nested:      []testStruct2{{Field4: "d"}},
		testStruct2: testStruct2{Field4: "e"},
	}
	assert.NoError(t, Validate(value))
}

func TestValidateValue(t *testing.T) {
	t.Parallel()
	err := ValidateCtx("", context.Background(), "required", "format")
	require.Error(t, err)
	assert.Equal(t, "format is a required field", err.Error())
	assert.NoError(t, ValidateCtx("xlsx", context.Background(), "required", "format"))
}

func TestValidateMapValues(t *testing.T) {
	t.Parallel()
	err := ValidateCtx(map[string]string{"term": ""}, context.Background(), "dive,required", "mapping")
	require.Error(t, err)
	assert.Equal(t, "mapping[term] is a required field", err.Error())
	assert.NoError(t, ValidateCtx(map[string]string{"term": "Headword"}, context.Background(), "dive,required", "mapping"))
}

func TestValidateCustomRule(t *testing.T) {
	t.Parallel()
	rule := Validation{
		Tag: "not_blank",
		Func: func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
	}
	assert.NoError(t, ValidateCtx("value", context.Background(), "not_blank", "name", rule))
	err := ValidateCtx("   ", context.Background(), "not_blank", "name", rule)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_blank")
}
