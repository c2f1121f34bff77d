// Package form turns user-entered fields into employee records.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/UnknownOlympus/hestia/internal/models"
)

var ErrInvalidEntry = errors.New("invalid employee entry")

// Departments lists the values offered by the department picker.
var Departments = []string{
	"تطوير البرمجيات",
	"التصميم",
	"المبيعات",
	"الدعم الفني",
	"التسويق",
	"الموارد البشرية",
	"المالية",
	"الجودة",
	"الإدارة",
}

// DefaultDepartment is preselected in the picker.
var DefaultDepartment = Departments[0]

// Entry holds the raw fields of the add-employee form.
type Entry struct {
	Name       string `json:"name"        validate:"required,notblank"`
	Email      string `json:"email"       validate:"required,notblank"`
	Phone      string `json:"phoneNumber" validate:"required,notblank"`
	Department string `json:"department"  validate:"required,notblank"`
}

var validate = newValidator()

// newValidator reports fields under their JSON names so API clients see the
// keys they sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidationError lists the fields left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: missing %s", ErrInvalidEntry, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidEntry
}

// Normalize fills the department with DefaultDepartment when the picker was left untouched.
func (e Entry) Normalize() Entry {
	if strings.TrimSpace(e.Department) == "" {
		e.Department = DefaultDepartment
	}
	return e
}

// Validate checks that every field is present. Field contents are not otherwise inspected.
func (e Entry) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		missing = append(missing, fieldErr.Field())
	}

	return &ValidationError{Missing: missing}
}

// Employee normalizes and validates the entry and builds a record with a new identifier.
// Values are stored verbatim.
func (e Entry) Employee() (models.Employee, error) {
	entry := e.Normalize()
	if err := entry.Validate(); err != nil {
		return models.Employee{}, err
	}

	return models.NewEmployee(entry.Name, entry.Email, entry.Phone, entry.Department), nil
}

// IsKnownDepartment reports whether dept is one of the picker values.
func IsKnownDepartment(dept string) bool {
	return slices.Contains(Departments, dept)
}
