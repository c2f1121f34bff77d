package presenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/presenter"
)

func TestInitialsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{name: "أحمد محمد", want: "أم"},
		{name: "أَحمد مُحمد", want: "أَمُ"},
		{name: "👍🏽ok", want: "👍🏽o"},
		{name: "John Ronald Tolkien", want: "JR"},
		{name: "Madonna", want: "Ma"},
		{name: "X", want: "X"},
		{name: "", want: ""},
		{name: "  Jane   Doe ", want: "JD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, presenter.InitialsFor(tc.name))
		})
	}
}

func TestColorFor_Deterministic(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "أحمد محمد", "Test", "سارة علي"} {
		first := presenter.ColorFor(name)

		assert.Equal(t, first, presenter.ColorFor(name))
		assert.Contains(t, presenter.Palette, first)
	}
}

func TestPhoneSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1111", presenter.PhoneSuffix("0501111111"))
	assert.Equal(t, "123", presenter.PhoneSuffix("123"))
}

func TestDialURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tel://0501234567", presenter.DialURL("+050 123-45 67"))
	assert.Equal(t, "tel://", presenter.DialURL("none"))
}

func TestMailURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mailto:ahmed@company.com", presenter.MailURL("ahmed@company.com"))
}

func TestRowsAndDetail(t *testing.T) {
	t.Parallel()

	employees := []models.Employee{
		models.NewEmployee("خالد حسن", "khaled@company.com", "0503333333", "المبيعات"),
		models.NewEmployee("Test", "t@x.com", "0500000001", "IT"),
	}

	rows := presenter.Rows(employees)

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[1].Position)
	assert.Equal(t, employees[1].ID, rows[1].ID)
	assert.Equal(t, "0001", rows[1].PhoneSuffix)
	assert.Equal(t, "خح", rows[0].Initials)

	detail := presenter.NewDetail(employees[0])
	assert.Equal(t, "tel://0503333333", detail.DialURL)
	assert.Equal(t, "mailto:khaled@company.com", detail.MailURL)
	assert.Equal(t, presenter.ColorFor("خالد حسن"), detail.Color)
	assert.True(t, detail.KnownDepartment)
	assert.False(t, presenter.NewDetail(employees[1]).KnownDepartment)
}
