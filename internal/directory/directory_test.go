package directory_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamathecxder/randomail"

	"github.com/UnknownOlympus/hestia/internal/directory"
	"github.com/UnknownOlympus/hestia/internal/models"
)

func lettersDirectory() *directory.Directory {
	return directory.New([]models.Employee{
		models.NewEmployee("a", "a@x.com", "01", "IT"),
		models.NewEmployee("b", "b@x.com", "02", "IT"),
		models.NewEmployee("c", "c@x.com", "03", "Sales"),
		models.NewEmployee("d", "d@x.com", "04", "Sales"),
		models.NewEmployee("e", "e@x.com", "05", "HR"),
	})
}

func names(employees []models.Employee) []string {
	result := make([]string, 0, len(employees))
	for _, employee := range employees {
		result = append(result, employee.Name)
	}
	return result
}

func TestNew_PreservesSeedOrder(t *testing.T) {
	t.Parallel()

	dir := directory.New(directory.DefaultSeed())

	require.Equal(t, 10, dir.Len())
	assert.Equal(t, "أحمد محمد", dir.Records()[0].Name)
	assert.Equal(t, "هدى سليمان", dir.Records()[9].Name)
}

func TestNew_FillsMissingAndDuplicateIDs(t *testing.T) {
	t.Parallel()

	shared := uuid.New()
	dir := directory.New([]models.Employee{
		{ID: shared, Name: "first"},
		{ID: shared, Name: "second"},
		{Name: "third"},
	})

	records := dir.Records()
	require.Len(t, records, 3)
	assert.Equal(t, shared, records[0].ID)
	assert.NotEqual(t, shared, records[1].ID)
	assert.True(t, records[2].HasID())
	assert.NotEqual(t, records[1].ID, records[2].ID)
}

func TestRecords_ReturnsCopy(t *testing.T) {
	t.Parallel()

	dir := lettersDirectory()
	records := dir.Records()
	records[0].Name = "changed"

	assert.Equal(t, "a", dir.Records()[0].Name)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "empty query returns everything", query: "", want: 10},
		{name: "department", query: "المبيعات", want: 1},
		{name: "department substring", query: "تطوير", want: 2},
		{name: "name", query: "محمد", want: 3},
		{name: "email ignores case", query: "AHMED", want: 1},
		{name: "shared email domain", query: "Company.COM", want: 10},
		{name: "phone is not searched", query: "0501111111", want: 0},
		{name: "no match", query: "nobody", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := directory.New(directory.DefaultSeed())
			before := dir.Records()

			got := dir.Search(tc.query)

			assert.Len(t, got, tc.want)
			assert.Equal(t, before, dir.Records(), "search must not mutate the directory")
		})
	}
}

func TestSearch_EmptyQueryKeepsOrder(t *testing.T) {
	t.Parallel()

	dir := lettersDirectory()

	assert.Equal(t, dir.Records(), dir.Search(""))
}

func TestSearch_KeepsRelativeOrder(t *testing.T) {
	t.Parallel()

	dir := lettersDirectory()

	assert.Equal(t, []string{"c", "d"}, names(dir.Search("sAlEs")))
}

func TestSearch_UnicodeCaseFolding(t *testing.T) {
	t.Parallel()

	dir := directory.New([]models.Employee{
		models.NewEmployee("Élodie", "elodie@x.com", "01", "École"),
		models.NewEmployee("Bob", "bob@x.com", "02", "Sales"),
	})

	assert.Equal(t, []string{"Élodie"}, names(dir.Search("éCOLE")))
	assert.Equal(t, []string{"Élodie"}, names(dir.Search("ÉLO")))
}

func TestSearch_EveryResultMatches(t *testing.T) {
	t.Parallel()

	seed := make([]models.Employee, 0, 50)
	for range 50 {
		seed = append(seed, models.NewEmployee("user", randomail.GenerateRandomEmail(), "0500", "Ops"))
	}
	dir := directory.New(seed)
	query := "a"

	matched := make(map[uuid.UUID]bool)
	for _, employee := range dir.Search(query) {
		matched[employee.ID] = true
		assert.Contains(t, strings.ToLower(employee.Email), query)
	}
	for _, employee := range dir.Records() {
		if !matched[employee.ID] {
			assert.NotContains(t, strings.ToLower(employee.Email), query)
		}
	}
}

func TestView_ReportsFullPositions(t *testing.T) {
	t.Parallel()

	dir := lettersDirectory()

	view, positions := dir.View("sales")

	assert.Equal(t, []string{"c", "d"}, names(view))
	assert.Equal(t, []int{2, 3}, positions)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	dir := directory.New(directory.DefaultSeed())
	before := dir.Records()

	stored := dir.Append(models.Employee{Name: "Test", Email: "t@x.com", Phone: "0500000001", Department: "IT"})

	records := dir.Records()
	require.Len(t, records, 11)
	assert.Equal(t, "Test", records[10].Name)
	assert.Equal(t, stored, records[10])
	assert.Equal(t, before, records[:10])
	for _, employee := range before {
		assert.NotEqual(t, employee.ID, stored.ID)
	}
}

func TestAppend_KeepsAssignedID(t *testing.T) {
	t.Parallel()

	dir := lettersDirectory()
	employee := models.NewEmployee("f", "f@x.com", "06", "IT")

	stored := dir.Append(employee)

	assert.Equal(t, employee.ID, stored.ID)
}

func TestAppend_DuplicateFieldsAllowed(t *testing.T) {
	t.Parallel()

	dir := lettersDirectory()
	first := dir.Records()[0]

	stored := dir.Append(first)

	assert.Equal(t, 6, dir.Len())
	assert.Equal(t, first.Email, stored.Email)
	assert.NotEqual(t, first.ID, stored.ID)
}

func TestRemoveAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		positions []int
		want      []string
	}{
		{name: "first", positions: []int{0}, want: []string{"b", "c", "d", "e"}},
		{name: "last", positions: []int{4}, want: []string{"a", "b", "c", "d"}},
		{name: "several unordered", positions: []int{3, 0, 2}, want: []string{"b", "e"}},
		{name: "repeated position counts once", positions: []int{1, 1}, want: []string{"a", "c", "d", "e"}},
		{name: "nothing", positions: nil, want: []string{"a", "b", "c", "d", "e"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := lettersDirectory()

			require.NoError(t, dir.RemoveAt(tc.positions))
			assert.Equal(t, tc.want, names(dir.Records()))
		})
	}
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, positions := range [][]int{{5}, {-1}, {0, 7}} {
		dir := lettersDirectory()
		before := dir.Records()

		err := dir.RemoveAt(positions)

		require.ErrorIs(t, err, directory.ErrOutOfRange)
		var rangeErr *directory.OutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 5, rangeErr.Len)
		assert.Equal(t, before, dir.Records())
	}
}

func TestRemoveAt_RemovedIDIsGone(t *testing.T) {
	t.Parallel()

	dir := directory.New(directory.DefaultSeed())
	dir.Append(models.Employee{Name: "Test", Email: "t@x.com", Phone: "0500000001", Department: "IT"})
	first := dir.Records()[0]

	require.NoError(t, dir.RemoveAt([]int{0}))

	assert.Equal(t, 10, dir.Len())
	assert.Equal(t, -1, dir.IndexOf(first.ID))
	_, found := dir.Find(first.ID)
	assert.False(t, found)
	for _, employee := range dir.Records() {
		assert.NotEqual(t, first.ID, employee.ID)
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from []int
		to   int
		want []string
	}{
		{name: "first to end", from: []int{0}, to: 5, want: []string{"b", "c", "d", "e", "a"}},
		{name: "last to front", from: []int{4}, to: 0, want: []string{"e", "a", "b", "c", "d"}},
		{name: "block to front", from: []int{3, 1}, to: 0, want: []string{"b", "d", "a", "c", "e"}},
		{name: "block downwards", from: []int{0, 2}, to: 4, want: []string{"b", "d", "a", "c", "e"}},
		{name: "onto itself", from: []int{2}, to: 2, want: []string{"a", "b", "c", "d", "e"}},
		{name: "repeated source", from: []int{1, 1, 3}, to: 3, want: []string{"a", "c", "b", "d", "e"}},
		{name: "no sources", from: nil, to: 2, want: []string{"a", "b", "c", "d", "e"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := lettersDirectory()

			require.NoError(t, dir.Move(tc.from, tc.to))
			assert.Equal(t, tc.want, names(dir.Records()))
			assert.Equal(t, 5, dir.Len())
		})
	}
}

func TestMove_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from []int
		to   int
	}{
		{name: "source past end", from: []int{5}, to: 0},
		{name: "negative source", from: []int{-1}, to: 0},
		{name: "destination past end", from: []int{0}, to: 6},
		{name: "negative destination", from: []int{0}, to: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := lettersDirectory()
			before := dir.Records()

			err := dir.Move(tc.from, tc.to)

			require.ErrorIs(t, err, directory.ErrOutOfRange)
			assert.Equal(t, before, dir.Records())
		})
	}
}

func TestOutOfRangeError_Message(t *testing.T) {
	t.Parallel()

	err := &directory.OutOfRangeError{Op: "remove", Index: 7, Len: 3}

	assert.Equal(t, "remove: index out of range: 7 not in [0, 3)", err.Error())
}
