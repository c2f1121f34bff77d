package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/UnknownOlympus/hestia/internal/directory"
	"github.com/UnknownOlympus/hestia/internal/form"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

var ErrNotFound = errors.New("employee not found")

const (
	opSearch = "search"
	opAppend = "append"
	opRemove = "remove"
	opMove   = "move"

	statusSuccess = "success"
	statusFailure = "failure"
)

// Staff owns the directory for the lifetime of the process. Reads may run
// concurrently; every mutation holds the write lock for its whole duration.
type Staff struct {
	log     *slog.Logger
	mu      sync.RWMutex
	dir     directory.StoreIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, dir directory.StoreIface, metrics *metrics.Metrics) *Staff {
	staff := &Staff{log: log, dir: dir, metrics: metrics}
	staff.metrics.Records.Set(float64(dir.Len()))

	return staff
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// Len returns the number of records in the full list.
func (s *Staff) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dir.Len()
}

// List returns the full, unfiltered list.
func (s *Staff) List(_ context.Context) []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dir.Records()
}

// Search returns the filtered view for query together with the size of the
// full list it was taken from. An empty query yields the full list.
func (s *Staff) Search(ctx context.Context, query string) ([]models.Employee, int) {
	const opn = "Employee.Search"
	log := s.initLogger(opn)
	startTime := time.Now()

	s.mu.RLock()
	result := s.dir.Search(query)
	total := s.dir.Len()
	s.mu.RUnlock()

	s.metrics.SearchDuration.Observe(time.Since(startTime).Seconds())
	s.metrics.SearchResults.Observe(float64(len(result)))
	s.metrics.Operations.WithLabelValues(opSearch, statusSuccess).Inc()
	log.DebugContext(ctx, "search completed", "query", query, "count", len(result), "total", total)

	return result, total
}

// Get returns the employee with the given identifier.
func (s *Staff) Get(_ context.Context, id uuid.UUID) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employee, ok := s.dir.Find(id)
	if !ok {
		return models.Employee{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return employee, nil
}

// Add validates a form entry and appends the resulting employee to the end of the list.
func (s *Staff) Add(ctx context.Context, entry form.Entry) (models.Employee, error) {
	const opn = "Employee.Add"
	log := s.initLogger(opn)

	employee, err := entry.Employee()
	if err != nil {
		s.metrics.ValidationFails.Inc()
		log.InfoContext(ctx, "Rejected employee entry", sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to build employee: %w", err)
	}

	s.mu.Lock()
	stored := s.dir.Append(employee)
	size := s.dir.Len()
	s.mu.Unlock()

	s.metrics.Records.Set(float64(size))
	s.metrics.Operations.WithLabelValues(opAppend, statusSuccess).Inc()
	log.InfoContext(ctx, "Employee added", "id", stored.ID.String(), "name", stored.Name, "records", size)

	return stored, nil
}

// RemoveAt removes employees by full-list position.
func (s *Staff) RemoveAt(ctx context.Context, positions []int) error {
	_, err := s.RemoveVisible(ctx, "", positions)
	return err
}

// Move repositions employees by full-list position.
func (s *Staff) Move(ctx context.Context, from []int, to int) error {
	return s.MoveVisible(ctx, "", from, to)
}

// RemoveVisible removes employees addressed by their positions in the view
// produced by query. The positions are mapped back to the full list under the
// same lock that performs the removal, so the view cannot change in between.
// It returns the size of the full list once the removal is done.
func (s *Staff) RemoveVisible(ctx context.Context, query string, positions []int) (int, error) {
	const opn = "Employee.RemoveVisible"
	log := s.initLogger(opn)

	s.mu.Lock()
	err := s.removeLocked(query, positions)
	size := s.dir.Len()
	s.mu.Unlock()

	if err != nil {
		s.metrics.Operations.WithLabelValues(opRemove, statusFailure).Inc()
		log.WarnContext(ctx, "Failed to remove employees", "query", query, "positions", positions, sl.Err(err))
		return size, fmt.Errorf("failed to remove employees: %w", err)
	}

	s.metrics.Records.Set(float64(size))
	s.metrics.Operations.WithLabelValues(opRemove, statusSuccess).Inc()
	log.InfoContext(ctx, "Employees removed", "query", query, "positions", positions, "records", size)

	return size, nil
}

// MoveVisible moves employees addressed by their positions in the view
// produced by query to offset to within that view.
func (s *Staff) MoveVisible(ctx context.Context, query string, from []int, to int) error {
	const opn = "Employee.MoveVisible"
	log := s.initLogger(opn)

	s.mu.Lock()
	err := s.moveLocked(query, from, to)
	s.mu.Unlock()

	if err != nil {
		s.metrics.Operations.WithLabelValues(opMove, statusFailure).Inc()
		log.WarnContext(ctx, "Failed to move employees", "query", query, "from", from, "to", to, sl.Err(err))
		return fmt.Errorf("failed to move employees: %w", err)
	}

	s.metrics.Operations.WithLabelValues(opMove, statusSuccess).Inc()
	log.DebugContext(ctx, "Employees moved", "query", query, "from", from, "to", to)

	return nil
}

func (s *Staff) removeLocked(query string, positions []int) error {
	if query == "" {
		return s.dir.RemoveAt(positions)
	}

	_, index := s.dir.View(query)
	full, err := directory.ResolvePositions(opRemove, positions, index)
	if err != nil {
		return err
	}

	return s.dir.RemoveAt(full)
}

func (s *Staff) moveLocked(query string, from []int, to int) error {
	if query == "" {
		return s.dir.Move(from, to)
	}

	_, index := s.dir.View(query)
	fullFrom, err := directory.ResolvePositions(opMove, from, index)
	if err != nil {
		return err
	}
	fullTo, err := directory.ResolveOffset(opMove, to, index, s.dir.Len())
	if err != nil {
		return err
	}

	return s.dir.Move(fullFrom, fullTo)
}
