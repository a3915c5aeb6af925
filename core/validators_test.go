package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedForm struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"omitempty,email"`
	DueDate string  `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Hidden  string  `json:"-" validate:"omitempty,min=1"`
}

func TestTranslateErrors(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	blank := ""
	tests := []struct {
		name string
		form validatedForm
		want map[string]string
	}{
		{
			name: "valid",
			form: validatedForm{Name: "Ann", Email: "a@x.com", DueDate: "2024-01-15"},
		},
		{
			name: "required",
			form: validatedForm{},
			want: map[string]string{"name": "this field is required"},
		},
		{
			name: "bad email and date",
			form: validatedForm{Name: "Ann", Email: "nope", DueDate: "2024-13-40"},
			want: map[string]string{
				"email":   "email must be a valid email address",
				"dueDate": "dueDate must be a valid date",
			},
		},
		{
			name: "blank pointer",
			form: validatedForm{Name: "Ann", Title: &blank},
			want: map[string]string{"title": "this field may not be blank"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.form)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			errs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			assert.Equal(t, tt.want, TranslateErrors(errs, translator))
		})
	}
}
