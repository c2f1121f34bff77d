package directory

import (
	"github.com/google/uuid"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// StoreIface represents the interface for interacting with the employee list.
type StoreIface interface {
	Len() int
	Records() []models.Employee
	Find(id uuid.UUID) (models.Employee, bool)
	Search(query string) []models.Employee
	View(query string) ([]models.Employee, []int)
	Append(employee models.Employee) models.Employee
	RemoveAt(positions []int) error
	Move(from []int, to int) error
}

var _ StoreIface = (*Directory)(nil)
