package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testProjection() DebouncedQuery {
	criteria := SearchCriteria{
		Destination: "Bali",
		CheckIn:     time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		AdultCount:  2,
		ChildCount:  0,
	}
	return criteria.Project()
}

// TestNewSearchQuery tests query assembly and page clamping.
func TestNewSearchQuery(t *testing.T) {
	filters := NewFilterState()
	filters.ToggleStar("4", true)
	filters.ToggleStar("5", true)
	price := 300
	filters.SetMaxPrice(&price)
	filters.SetSort(SortStarRating)

	query := NewSearchQuery(testProjection(), filters, 3)

	assert.Equal(t, "Bali", query.Destination)
	assert.Equal(t, []string{"4", "5"}, query.Stars)
	assert.Equal(t, "300", query.MaxPrice)
	assert.Equal(t, SortStarRating, query.Sort)
	assert.Equal(t, 3, query.Page)

	t.Run("page below 1 clamps to 1", func(t *testing.T) {
		query := NewSearchQuery(testProjection(), NewFilterState(), 0)
		assert.Equal(t, 1, query.Page)
	})
}

// TestSearchQuery_Key tests the structural identity invariants the cache and
// stale-response discard rely on.
func TestSearchQuery_Key(t *testing.T) {
	filters := NewFilterState()
	filters.ToggleStar("4", true)

	t.Run("equal queries share a key", func(t *testing.T) {
		a := NewSearchQuery(testProjection(), filters, 1)
		b := NewSearchQuery(testProjection(), filters.Clone(), 1)
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("selection order does not matter", func(t *testing.T) {
		oneWay := NewFilterState()
		oneWay.ToggleFacility("Spa", true)
		oneWay.ToggleFacility("Parking", true)
		otherWay := NewFilterState()
		otherWay.ToggleFacility("Parking", true)
		otherWay.ToggleFacility("Spa", true)

		a := NewSearchQuery(testProjection(), oneWay, 1)
		b := NewSearchQuery(testProjection(), otherWay, 1)
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("page changes the key", func(t *testing.T) {
		a := NewSearchQuery(testProjection(), filters, 1)
		b := NewSearchQuery(testProjection(), filters, 2)
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("filter changes the key", func(t *testing.T) {
		a := NewSearchQuery(testProjection(), filters, 1)
		more := filters.Clone()
		more.ToggleStar("5", true)
		b := NewSearchQuery(testProjection(), more, 1)
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("destination changes the key", func(t *testing.T) {
		projection := testProjection()
		projection.Destination = "Lombok"
		a := NewSearchQuery(testProjection(), filters, 1)
		b := NewSearchQuery(projection, filters, 1)
		assert.NotEqual(t, a.Key(), b.Key())
	})
}
