package pricing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var professional = Plan{
	Name:  "Professional",
	Price: Price{Monthly: 1999, Annual: 1799},
}

func TestFormatMinor(t *testing.T) {
	tests := map[int64]string{
		0:      "$0.00",
		5:      "$0.05",
		999:    "$9.99",
		1799:   "$17.99",
		2400:   "$24.00",
		123456: "$1234.56",
		-250:   "-$2.50",
	}
	for cents, want := range tests {
		assert.Equal(t, want, FormatMinor(cents), "FormatMinor(%d)", cents)
	}
}

func TestPlanAmounts(t *testing.T) {
	assert.EqualValues(t, 1999, professional.Amount(Monthly))
	assert.EqualValues(t, 1799, professional.Amount(Annual))
	assert.EqualValues(t, 2400, professional.AnnualSavings())
	assert.EqualValues(t, 10, professional.SavingsPercent())

	starter := Plan{Price: Price{Monthly: 999, Annual: 899}}
	assert.EqualValues(t, 1200, starter.AnnualSavings())
	assert.EqualValues(t, 10, starter.SavingsPercent())

	assert.EqualValues(t, 0, Plan{}.SavingsPercent())
}

func TestQuotePlan(t *testing.T) {
	got := QuotePlan(professional, Annual)
	want := Quote{
		Plan:        "Professional",
		Period:      "annual",
		Amount:      1799,
		Display:     "$17.99",
		Savings:     2400,
		SavingsText: "$24.00",
		ShowSavings: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("annual quote mismatch (-want +got):\n%s", diff)
	}

	got = QuotePlan(professional, Monthly)
	want = Quote{Plan: "Professional", Period: "monthly", Amount: 1999, Display: "$19.99"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("monthly quote mismatch (-want +got):\n%s", diff)
	}
}

func TestQuotePlansKeepsOrder(t *testing.T) {
	plans := []Plan{{Name: "A", Price: Price{Monthly: 100, Annual: 90}}, professional}
	quotes := QuotePlans(plans, Monthly)
	require.Len(t, quotes, 2)
	assert.Equal(t, "A", quotes[0].Plan)
	assert.Equal(t, "Professional", quotes[1].Plan)
}

func TestBillingPeriod(t *testing.T) {
	assert.Equal(t, Annual, DefaultPeriod)
	assert.Equal(t, Monthly, Annual.Toggle())
	assert.Equal(t, Annual, Monthly.Toggle())
	assert.Equal(t, Annual, Annual.Toggle().Toggle())

	for _, s := range []string{"monthly", "annual"} {
		b, err := ParsePeriod(s)
		require.NoError(t, err)
		assert.Equal(t, s, b.String())
	}

	b, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPeriod, b)

	_, err = ParsePeriod("weekly")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}
