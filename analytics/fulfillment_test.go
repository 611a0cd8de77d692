package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
)

func TestClassifyOrder(t *testing.T) {
	base := models.Order{OrderDate: day(2024, time.March, 5)}

	cases := []struct {
		name     string
		required *time.Time
		shipped  *time.Time
		want     analytics.FulfillmentStatus
	}{
		{"not shipped, no deadline", nil, nil, analytics.FulfillmentPending},
		{"not shipped, with deadline", dayPtr(2024, time.March, 8), nil, analytics.FulfillmentPending},
		{"shipped without deadline", nil, dayPtr(2024, time.March, 9), analytics.FulfillmentShippedNoSLA},
		{"shipped before deadline", dayPtr(2024, time.March, 8), dayPtr(2024, time.March, 7), analytics.FulfillmentOnTime},
		{"shipped on the deadline", dayPtr(2024, time.March, 8), dayPtr(2024, time.March, 8), analytics.FulfillmentOnTime},
		{"shipped after deadline", dayPtr(2024, time.March, 8), dayPtr(2024, time.March, 9), analytics.FulfillmentLate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := base
			o.RequiredDate = tc.required
			o.ShippedDate = tc.shipped
			assert.Equal(t, tc.want, analytics.ClassifyOrder(o))
		})
	}
}

func TestFulfillmentDays(t *testing.T) {
	o := models.Order{OrderDate: day(2024, time.March, 5)}
	assert.Nil(t, analytics.FulfillmentDays(o))

	o.ShippedDate = dayPtr(2024, time.March, 7)
	d := analytics.FulfillmentDays(o)
	require.NotNil(t, d)
	assert.Equal(t, 2, *d)

	// Same-day shipment is zero days, still not nil.
	o.ShippedDate = dayPtr(2024, time.March, 5)
	d = analytics.FulfillmentDays(o)
	require.NotNil(t, d)
	assert.Equal(t, 0, *d)
}

func TestLateOrderCountsDaysFromOrderDate(t *testing.T) {
	o := models.Order{
		OrderDate:    day(2024, time.January, 1),
		RequiredDate: dayPtr(2024, time.January, 10),
		ShippedDate:  dayPtr(2024, time.January, 15),
	}

	assert.Equal(t, analytics.FulfillmentLate, analytics.ClassifyOrder(o))

	// Five days past the deadline, but fourteen from the order date.
	d := analytics.FulfillmentDays(o)
	require.NotNil(t, d)
	assert.Equal(t, 14, *d)
}

func TestOrderFulfillment(t *testing.T) {
	e := newEngine()
	rows, err := e.OrderFulfillment(fixtureSnapshot(t))
	require.NoError(t, err)

	// Every order gets exactly one row, line-less orders included.
	require.Len(t, rows, 5)

	byOrder := map[uint]analytics.OrderFulfillmentRow{}
	for _, r := range rows {
		byOrder[r.OrderID] = r
	}

	assert.Equal(t, analytics.FulfillmentOnTime, byOrder[1].FulfillmentStatus)
	require.NotNil(t, byOrder[1].FulfillmentDays)
	assert.Equal(t, 2, *byOrder[1].FulfillmentDays)

	assert.Equal(t, analytics.FulfillmentLate, byOrder[2].FulfillmentStatus)
	require.NotNil(t, byOrder[2].FulfillmentDays)
	assert.Equal(t, 9, *byOrder[2].FulfillmentDays)

	assert.Equal(t, analytics.FulfillmentPending, byOrder[3].FulfillmentStatus)
	assert.Nil(t, byOrder[3].FulfillmentDays)

	assert.Equal(t, analytics.FulfillmentShippedNoSLA, byOrder[4].FulfillmentStatus)
	require.NotNil(t, byOrder[4].FulfillmentDays)
	assert.Equal(t, 4, *byOrder[4].FulfillmentDays)

	assert.Equal(t, analytics.FulfillmentPending, byOrder[5].FulfillmentStatus)
}

func TestFulfillmentSummary(t *testing.T) {
	e := newEngine()
	rows, err := e.FulfillmentSummary(fixtureSnapshot(t))
	require.NoError(t, err)

	require.Len(t, rows, 4)

	// Statuses come back in precedence order.
	assert.Equal(t, analytics.FulfillmentPending, rows[0].FulfillmentStatus)
	assert.Equal(t, 2, rows[0].OrdersCount)
	assert.Nil(t, rows[0].AvgFulfillmentDays)

	assert.Equal(t, analytics.FulfillmentShippedNoSLA, rows[1].FulfillmentStatus)
	assert.Equal(t, 1, rows[1].OrdersCount)
	assert.Equal(t, "4.0", fixed1(t, rows[1].AvgFulfillmentDays))

	assert.Equal(t, analytics.FulfillmentOnTime, rows[2].FulfillmentStatus)
	assert.Equal(t, 1, rows[2].OrdersCount)
	assert.Equal(t, "2.0", fixed1(t, rows[2].AvgFulfillmentDays))

	assert.Equal(t, analytics.FulfillmentLate, rows[3].FulfillmentStatus)
	assert.Equal(t, 1, rows[3].OrdersCount)
	assert.Equal(t, "9.0", fixed1(t, rows[3].AvgFulfillmentDays))

	// The counts cover every order exactly once.
	total := 0
	for _, r := range rows {
		total += r.OrdersCount
	}
	assert.Equal(t, 5, total)
}
