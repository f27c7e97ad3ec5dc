package search

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripnest/travel-client/internal/core/domain"
)

func TestStatic_DefaultFares(t *testing.T) {
	opts, err := NewStatic().Search(context.Background(), " Delhi ", "Mumbai", domain.MustDate("2024-05-01"))

	require.NoError(t, err)
	require.Len(t, opts, 3)

	plane := opts[0]
	assert.Equal(t, domain.TransportPlane, plane.Transport)
	assert.True(t, decimal.NewFromInt(8500).Equal(plane.Price))
	assert.Equal(t, "Air India", plane.Company)
	assert.Equal(t, "Delhi to Mumbai", plane.Route())

	assert.Equal(t, domain.TransportTrain, opts[1].Transport)
	assert.Equal(t, "16h 45m", opts[1].Duration)
	assert.Equal(t, domain.TransportBus, opts[2].Transport)
	assert.InDelta(t, 3.8, opts[2].Rating, 0.001)
}

func TestStatic_CustomFaresAndCancelledContext(t *testing.T) {
	s := NewStatic(Fare{Transport: domain.TransportBus, Price: decimal.NewFromInt(99)})

	opts, err := s.Search(context.Background(), "A", "B", domain.Date{})
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, domain.ID("1"), opts[0].ID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Search(ctx, "A", "B", domain.Date{})
	assert.ErrorIs(t, err, context.Canceled)
}
