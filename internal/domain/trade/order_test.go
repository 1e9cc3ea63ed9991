package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

func TestNewOrderCommissionSnapshot(t *testing.T) {
	campaignID := uuid.New()

	tests := []struct {
		name       string
		total      string
		rate       int
		commission string
		revenue    string
	}{
		{"whole split", "100.00", 10, "10", "90"},
		{"rounds half up", "10.05", 15, "1.51", "8.54"},
		{"zero rate", "49.99", 0, "0", "49.99"},
		{"full rate", "25.50", 100, "25.5", "0"},
		{"sub-cent remainder to revenue", "0.01", 33, "0", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			o, err := NewOrder(uuid.New(), uuid.New(), uuidPtr(campaignID), intPtr(tt.rate), nil, 1, total, "12 Cuba St")
			require.NoError(t, err)

			assert.True(t, o.CommissionAmount.Equal(decimal.RequireFromString(tt.commission)),
				"commission = %s", o.CommissionAmount)
			assert.True(t, o.RevenueAmount().Equal(decimal.RequireFromString(tt.revenue)),
				"revenue = %s", o.RevenueAmount())
			assert.True(t, o.CommissionAmount.Add(o.RevenueAmount()).Equal(total))
		})
	}
}

func TestNewOrderWithoutCampaign(t *testing.T) {
	o, err := NewOrder(uuid.New(), uuid.New(), nil, nil, nil, 2, decimal.RequireFromString("59.80"), "")
	require.NoError(t, err)
	assert.False(t, o.IsAttributed())
	assert.True(t, o.CommissionAmount.IsZero())
	assert.True(t, o.RevenueAmount().Equal(o.TotalAmount))
}

func TestNewOrderValidation(t *testing.T) {
	total := decimal.RequireFromString("10.00")

	_, err := NewOrder(uuid.Nil, uuid.New(), nil, nil, nil, 1, total, "")
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), uuid.New(), nil, nil, nil, 0, total, "")
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), uuid.New(), nil, nil, nil, 1, decimal.RequireFromString("-1"), "")
	assert.Error(t, err)

	// campaign without a rate snapshot is rejected
	cid := uuid.New()
	_, err = NewOrder(uuid.New(), uuid.New(), &cid, nil, nil, 1, total, "")
	assert.Error(t, err)

	_, err = NewOrder(uuid.New(), uuid.New(), &cid, intPtr(101), nil, 1, total, "")
	assert.Error(t, err)
}
