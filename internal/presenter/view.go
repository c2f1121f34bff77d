package presenter

import (
	"github.com/google/uuid"

	"github.com/UnknownOlympus/hestia/internal/form"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// Row is one line of the employee list.
type Row struct {
	Position    int       `json:"position"`
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	PhoneSuffix string    `json:"phoneSuffix"`
	Initials    string    `json:"initials"`
	Color       Color     `json:"color"`
}

// Detail is the single-employee screen including contact actions.
type Detail struct {
	models.Employee

	Initials string `json:"initials"`
	Color    Color  `json:"color"`
	DialURL  string `json:"dialUrl"`
	MailURL  string `json:"mailUrl"`
	// KnownDepartment is false when the department is not a picker value,
	// e.g. a seeded record or an API client that sent free text.
	KnownDepartment bool `json:"knownDepartment"`
}

// Rows formats a list view. Position is the index within employees, which is
// the index space the list's remove and move gestures refer to.
func Rows(employees []models.Employee) []Row {
	rows := make([]Row, 0, len(employees))
	for idx, employee := range employees {
		rows = append(rows, Row{
			Position:    idx,
			ID:          employee.ID,
			Name:        employee.Name,
			Email:       employee.Email,
			Department:  employee.Department,
			PhoneSuffix: PhoneSuffix(employee.Phone),
			Initials:    InitialsFor(employee.Name),
			Color:       ColorFor(employee.Name),
		})
	}
	return rows
}

func NewDetail(employee models.Employee) Detail {
	return Detail{
		Employee: employee,
		Initials: InitialsFor(employee.Name),
		Color:    ColorFor(employee.Name),
		DialURL:  DialURL(employee.Phone),
		MailURL:  MailURL(employee.Email),

		KnownDepartment: form.IsKnownDepartment(employee.Department),
	}
}
