package customers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kundendash-dev/kundendash/internal/model"
)

func sample() []model.Customer {
	return []model.Customer{
		{ID: 1, Name: "Müller GmbH", Ort: "Hamburg", CaseTypeName: "Europaletten", Customer2CaseAndTypeID: "c2ct-1"},
		{ID: 2, Name: "Schmidt AG", Ort: "Bremen", CaseTypeName: "Gitterboxen", Customer2CaseAndTypeID: "c2ct-2"},
		{ID: 1, Name: "Müller GmbH", Ort: "Hamburg", CaseTypeName: "Gitterboxen", Customer2CaseAndTypeID: "c2ct-3"},
	}
}

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	s := NewService(sample())
	assert.Len(t, s.Filter(""), 3)
}

func TestFilter_MatchesAddressAndCaseFields(t *testing.T) {
	s := NewService(sample())

	got := s.Filter("bremen")
	require.Len(t, got, 1)
	assert.Equal(t, "Schmidt AG", got[0].Name)

	assert.Len(t, s.Filter("gitterbox"), 2)
	assert.Empty(t, s.Filter("berlin"))
}

func TestGroups_FirstAppearanceOrder(t *testing.T) {
	groups := Groups(sample())
	require.Len(t, groups, 2)

	assert.Equal(t, int64(1), groups[0].ID)
	assert.Len(t, groups[0].Rows, 2, "both case rows of customer 1")
	assert.Equal(t, int64(2), groups[1].ID)
	assert.Len(t, groups[1].Rows, 1)
}

func TestGroups_Empty(t *testing.T) {
	assert.Empty(t, Groups(nil))
}
