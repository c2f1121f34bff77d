// Package directory holds the ordered in-memory collection of employees.
//
// A Directory is a plain owned value: it does no locking of its own and is
// expected to be guarded by whoever holds it (see services/employees).
package directory

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/UnknownOlympus/hestia/internal/models"
)

const (
	opRemove = "remove"
	opMove   = "move"
)

type Directory struct {
	records []models.Employee
	ids     map[uuid.UUID]struct{}
}

// New creates a directory from seed, keeping its order. Records without an
// identifier, or with one already taken by an earlier record, get a fresh one.
func New(seed []models.Employee) *Directory {
	dir := &Directory{
		records: make([]models.Employee, 0, len(seed)),
		ids:     make(map[uuid.UUID]struct{}, len(seed)),
	}

	for _, employee := range seed {
		dir.Append(employee)
	}

	return dir
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}

// Records returns a copy of the full list in its current order.
func (d *Directory) Records() []models.Employee {
	return slices.Clone(d.records)
}

// Find returns the employee with the given identifier.
func (d *Directory) Find(id uuid.UUID) (models.Employee, bool) {
	idx := d.IndexOf(id)
	if idx < 0 {
		return models.Employee{}, false
	}

	return d.records[idx], true
}

// IndexOf returns the full-list position of id, or -1.
func (d *Directory) IndexOf(id uuid.UUID) int {
	if _, ok := d.ids[id]; !ok {
		return -1
	}

	return slices.IndexFunc(d.records, func(e models.Employee) bool { return e.ID == id })
}

// Search returns the records whose name, email or department contains query,
// ignoring case. An empty query returns every record. Order is preserved and
// the directory is not modified.
func (d *Directory) Search(query string) []models.Employee {
	view, _ := d.View(query)
	return view
}

// View is Search that also reports, for every returned record, its position in the full list.
func (d *Directory) View(query string) ([]models.Employee, []int) {
	positions := make([]int, 0, len(d.records))

	if query == "" {
		for idx := range d.records {
			positions = append(positions, idx)
		}
		return d.Records(), positions
	}

	caser := cases.Fold()
	needle := caser.String(query)
	matches := make([]models.Employee, 0)

	for idx, employee := range d.records {
		if strings.Contains(caser.String(employee.Name), needle) ||
			strings.Contains(caser.String(employee.Email), needle) ||
			strings.Contains(caser.String(employee.Department), needle) {
			matches = append(matches, employee)
			positions = append(positions, idx)
		}
	}

	return matches, positions
}

// Append adds employee at the end of the list and returns the stored value.
// Duplicate field values are allowed; only the identifier must be unique.
func (d *Directory) Append(employee models.Employee) models.Employee {
	if _, taken := d.ids[employee.ID]; !employee.HasID() || taken {
		employee.ID = d.freshID()
	}

	d.ids[employee.ID] = struct{}{}
	d.records = append(d.records, employee)

	return employee
}

// RemoveAt removes the records at the given full-list positions. Repeated
// positions count once. On error the list is left untouched.
func (d *Directory) RemoveAt(positions []int) error {
	set, err := normalize(opRemove, positions, len(d.records))
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return nil
	}

	kept := make([]models.Employee, 0, len(d.records)-len(set))
	next := 0
	for idx, employee := range d.records {
		if next < len(set) && set[next] == idx {
			delete(d.ids, employee.ID)
			next++
			continue
		}
		kept = append(kept, employee)
	}
	d.records = kept

	return nil
}

// Move lifts the records at from out of the list and puts them back as one
// block, in their original relative order, in front of the record that was
// at position to before the call. to may equal Len() to move the block to the end.
func (d *Directory) Move(from []int, to int) error {
	size := len(d.records)
	set, err := normalize(opMove, from, size)
	if err != nil {
		return err
	}
	if to < 0 || to > size {
		return &OutOfRangeError{Op: opMove, Index: to, Len: size + 1}
	}
	if len(set) == 0 {
		return nil
	}

	moved := make([]models.Employee, 0, len(set))
	rest := make([]models.Employee, 0, size-len(set))
	insertAt := to
	next := 0
	for idx, employee := range d.records {
		if next < len(set) && set[next] == idx {
			moved = append(moved, employee)
			if idx < to {
				insertAt--
			}
			next++
			continue
		}
		rest = append(rest, employee)
	}

	d.records = slices.Concat(rest[:insertAt], moved, rest[insertAt:])

	return nil
}

func (d *Directory) freshID() uuid.UUID {
	for {
		id := uuid.New()
		if _, taken := d.ids[id]; !taken {
			return id
		}
	}
}

// normalize checks every position against size and returns them sorted without repeats.
func normalize(opn string, positions []int, size int) ([]int, error) {
	for _, pos := range positions {
		if pos < 0 || pos >= size {
			return nil, &OutOfRangeError{Op: opn, Index: pos, Len: size}
		}
	}

	set := slices.Clone(positions)
	slices.Sort(set)

	return slices.Compact(set), nil
}
