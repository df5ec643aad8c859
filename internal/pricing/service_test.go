package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/clock"
)

type mockPricingRepo struct {
	histories map[string]*PriceHistory
}

func newMockPricingRepo() *mockPricingRepo {
	return &mockPricingRepo{histories: make(map[string]*PriceHistory)}
}

func historyKey(itemID, itemType string) string {
	return itemType + ":" + itemID
}

func (m *mockPricingRepo) GetHistory(ctx context.Context, itemID, itemType string) (*PriceHistory, error) {
	history, ok := m.histories[historyKey(itemID, itemType)]
	if !ok {
		return nil, assert.AnError
	}
	return history, nil
}

func (m *mockPricingRepo) AppendPoint(ctx context.Context, itemID, itemType string, point PricePoint) (*PriceHistory, error) {
	key := historyKey(itemID, itemType)
	history, ok := m.histories[key]
	if !ok {
		history = &PriceHistory{ItemID: itemID, ItemType: itemType}
		m.histories[key] = history
	}
	history.Points = append(history.Points, point)
	if len(history.Points) > maxPricePoints {
		history.Points = history.Points[len(history.Points)-maxPricePoints:]
	}
	return history, nil
}

func seedPrices(t *testing.T, svc Service, itemID, itemType string, prices []float64) {
	t.Helper()
	for _, price := range prices {
		_, err := svc.RecordPricePoint(context.Background(), RecordPricePointRequest{
			ItemID:   itemID,
			ItemType: itemType,
			Price:    price,
		})
		require.NoError(t, err)
	}
}

func TestRecordPricePointStampsClock(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newMockPricingRepo()
	svc := NewService(repo, nil, nil, clock.NewMock(now))

	history, err := svc.RecordPricePoint(context.Background(), RecordPricePointRequest{
		ItemID:   "FL-BOM-DXB-104",
		ItemType: "flight",
		Price:    450.00,
	})
	require.NoError(t, err)
	require.Len(t, history.Points, 1)
	assert.Equal(t, now, history.Points[0].RecordedAt)
	assert.Equal(t, 450.00, history.Points[0].Price)
}

func TestGetPriceInsightsDecreasing(t *testing.T) {
	repo := newMockPricingRepo()
	svc := NewService(repo, nil, nil, clock.NewMock(time.Now()))
	seedPrices(t, svc, "FL-1", "flight", []float64{500, 480, 460, 400})

	insights, err := svc.GetPriceInsights(context.Background(), "FL-1", "flight")
	require.NoError(t, err)
	assert.Equal(t, 400.00, insights.CurrentPrice)
	assert.Equal(t, 460.00, insights.AveragePrice)
	assert.Equal(t, 400.00, insights.LowestPrice)
	assert.Equal(t, 500.00, insights.HighestPrice)
	assert.Equal(t, "decreasing", insights.Trend)
	assert.Contains(t, insights.Recommendation, "Great time to book")
}

func TestGetPriceInsightsIncreasing(t *testing.T) {
	repo := newMockPricingRepo()
	svc := NewService(repo, nil, nil, clock.NewMock(time.Now()))
	seedPrices(t, svc, "HT-1", "hotel", []float64{100, 105, 110, 140})

	insights, err := svc.GetPriceInsights(context.Background(), "HT-1", "hotel")
	require.NoError(t, err)
	assert.Equal(t, "increasing", insights.Trend)
	assert.Contains(t, insights.Recommendation, "Consider waiting")
}

func TestGetPriceInsightsStable(t *testing.T) {
	repo := newMockPricingRepo()
	svc := NewService(repo, nil, nil, clock.NewMock(time.Now()))
	seedPrices(t, svc, "FL-2", "flight", []float64{200, 205, 195, 202})

	insights, err := svc.GetPriceInsights(context.Background(), "FL-2", "flight")
	require.NoError(t, err)
	assert.Equal(t, "stable", insights.Trend)
	assert.Contains(t, insights.Recommendation, "steady")
	assert.Equal(t, 200.50, insights.AveragePrice)
}

func TestGetPriceInsightsNoHistory(t *testing.T) {
	repo := newMockPricingRepo()
	svc := NewService(repo, nil, nil, clock.NewMock(time.Now()))

	_, err := svc.GetPriceInsights(context.Background(), "FL-404", "flight")
	assert.Error(t, err)
}
