package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// reLooseEmail only checks the local@domain.tld shape. It accepts inputs a
// stricter validator would reject (consecutive dots, odd characters).
var reLooseEmail = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError maps a field name (or the tag, for single values) to a
// translated message.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		return v.translate(err, func(fe validator.FieldError) string {
			return strings.ToLower(fe.Field())
		})
	}

	return nil
}

// Var validates a single value against tag, e.g. "max=80" or "looseemail".
// String lengths are counted in runes.
func (v *V10Validator) Var(field any, tag string) error {
	if err := v.validate.Var(field, tag); err != nil {
		return v.translate(err, func(fe validator.FieldError) string {
			return fe.Tag()
		})
	}

	return nil
}

func (v *V10Validator) translate(err error, key func(validator.FieldError) string) error {
	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	errV10 := make(V10ValidationError, len(validateErrs))
	for _, fe := range validateErrs {
		errV10[key(fe)] = fe.Translate(v.translator)
	}

	return errV10
}

func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	if err := validate.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return reLooseEmail.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation("looseemail", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("looseemail", "{0} must be shaped like name@domain.tld", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.Error()
			}

			return t
		},
	)
}
