package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	d := dec(t, s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(t, want).Equal(got), "decimal mismatch: want %s got %s", want, got.String())
}

func TestComputeSettlement_ElapsedTime(t *testing.T) {
	rate := dec(t, "0.01")

	res := ComputeSettlement(rate, startTime, startTime.Add(60*time.Second), nil)

	assertDecimal(t, "0.60", res.Cost)
	assertDecimal(t, "6.0", res.Reward)
	assert.Equal(t, int64(60), res.SecondsPaid)
	assert.Equal(t, int64(60), res.Elapsed)
	assert.False(t, res.Capped)
}

func TestComputeSettlement_NoElapsedTime(t *testing.T) {
	res := ComputeSettlement(dec(t, "0.01"), startTime, startTime, nil)

	assert.True(t, res.Cost.IsZero())
	assert.True(t, res.Reward.IsZero())
	assert.Zero(t, res.SecondsPaid)
}

func TestComputeSettlement_CapsToBalance(t *testing.T) {
	res := ComputeSettlement(dec(t, "0.01"), startTime, startTime.Add(100*time.Second), decPtr(t, "0.50"))

	assertDecimal(t, "0.50", res.Cost)
	assertDecimal(t, "5.0", res.Reward)
	assert.Equal(t, int64(50), res.SecondsPaid)
	assert.Equal(t, int64(100), res.Elapsed)
	assert.True(t, res.Capped)
}

func TestComputeSettlement_ClockSkew(t *testing.T) {
	res := ComputeSettlement(dec(t, "0.01"), startTime, startTime.Add(-time.Second), nil)

	assert.True(t, res.Cost.IsZero())
	assert.Zero(t, res.SecondsPaid)
	assert.Zero(t, res.Elapsed)
}

func TestComputeSettlement_NegativeBalanceChargesNothing(t *testing.T) {
	res := ComputeSettlement(dec(t, "0.01"), startTime, startTime.Add(10*time.Second), decPtr(t, "-1"))

	assert.True(t, res.Cost.IsZero())
	assert.Zero(t, res.SecondsPaid)
}

func TestComputeSettlement_ZeroRate(t *testing.T) {
	res := ComputeSettlement(decimal.Zero, startTime, startTime.Add(time.Hour), nil)

	assert.True(t, res.Cost.IsZero())
	assert.Zero(t, res.SecondsPaid)
}

func TestComputeSettlement_FloorsPartialSeconds(t *testing.T) {
	res := ComputeSettlement(dec(t, "1"), startTime, startTime.Add(2999*time.Millisecond), nil)

	assertDecimal(t, "2", res.Cost)
	assert.Equal(t, int64(2), res.SecondsPaid)
}

func TestComputeSettlement_UncappedCostEqualsRateTimesElapsed(t *testing.T) {
	rates := []string{"0", "0.000001", "0.01", "0.5", "3"}
	elapsed := []int64{0, 1, 59, 3600}

	for _, r := range rates {
		for _, e := range elapsed {
			rate := dec(t, r)
			want := rate.Mul(decimal.NewFromInt(e))
			balance := want.Add(decimal.NewFromInt(1))

			res := ComputeSettlement(rate, startTime, startTime.Add(time.Duration(e)*time.Second), &balance)
			assert.Truef(t, want.Equal(res.Cost), "rate=%s elapsed=%d: want %s got %s", r, e, want, res.Cost)
			assert.False(t, res.Cost.GreaterThan(balance))
		}
	}
}

func TestComputeMinuteRateSettlement_NodeRateScenario(t *testing.T) {
	balance := dec(t, "100")

	res := ComputeMinuteRateSettlement(dec(t, "0.001"), startTime, startTime.Add(60*time.Second), &balance)

	assertDecimal(t, "0.001", res.Cost)
	assertDecimal(t, "0.01", res.Reward)
	assert.Equal(t, int64(60), res.SecondsPaid)
	assert.False(t, res.Capped)
}

func TestComputeMinuteRateSettlement_CappedCountsWholeSeconds(t *testing.T) {
	// 0.0005 covers exactly 30 seconds at 0.001 per minute
	res := ComputeMinuteRateSettlement(dec(t, "0.001"), startTime, startTime.Add(60*time.Second), decPtr(t, "0.0005"))

	assertDecimal(t, "0.0005", res.Cost)
	assertDecimal(t, "0.005", res.Reward)
	assert.Equal(t, int64(30), res.SecondsPaid)
	assert.True(t, res.Capped)

	res = ComputeMinuteRateSettlement(dec(t, "0.001"), startTime, startTime.Add(60*time.Second), decPtr(t, "0.000499999999999999"))
	assert.Equal(t, int64(29), res.SecondsPaid)
}

func TestComputeMinuteRateSettlement_TruncatesPartialMinutes(t *testing.T) {
	res := ComputeMinuteRateSettlement(dec(t, "0.001"), startTime, startTime.Add(time.Second), nil)

	assertDecimal(t, "0.000016666666666666", res.Cost)
	assert.Equal(t, int64(1), res.SecondsPaid)

	res = ComputeMinuteRateSettlement(dec(t, "0.001"), startTime, startTime.Add(time.Hour), nil)
	assertDecimal(t, "0.06", res.Cost)
	assert.Equal(t, int64(3600), res.SecondsPaid)
}

func TestComputeMinuteRateSettlement_MatchesPerSecondRate(t *testing.T) {
	// rates that divide evenly by 60 agree with the per-second computation
	for _, r := range []string{"0.06", "0.6", "6"} {
		perMinute := dec(t, r)
		for _, e := range []int64{0, 1, 59, 3600} {
			now := startTime.Add(time.Duration(e) * time.Second)
			want := ComputeSettlement(RatePerSecond(perMinute), startTime, now, nil)
			got := ComputeMinuteRateSettlement(perMinute, startTime, now, nil)
			assert.Truef(t, want.Cost.Equal(got.Cost), "rate=%s elapsed=%d: want %s got %s", r, e, want.Cost, got.Cost)
			assert.Equal(t, want.SecondsPaid, got.SecondsPaid)
		}
	}
}

func TestRatePerSecond(t *testing.T) {
	assertDecimal(t, "0.01", RatePerSecond(dec(t, "0.6")))
	assertDecimal(t, "0.000016666666666667", RatePerSecond(dec(t, "0.001")))
}
