package models

import "github.com/google/uuid"

// Employee represents an employee entity. Values are treated as immutable once stored.
type Employee struct {
	ID         uuid.UUID `json:"id"          mapstructure:"-"`
	Name       string    `json:"name"        mapstructure:"name"`
	Email      string    `json:"email"       mapstructure:"email"`
	Phone      string    `json:"phoneNumber" mapstructure:"phone"`
	Department string    `json:"department"  mapstructure:"department"`
}

// NewEmployee builds an employee with a freshly generated identifier.
func NewEmployee(name, email, phone, department string) Employee {
	return Employee{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Department: department,
	}
}

// HasID reports whether an identifier has been assigned.
func (e Employee) HasID() bool {
	return e.ID != uuid.Nil
}
