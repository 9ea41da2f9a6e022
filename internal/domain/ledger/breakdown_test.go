package ledger

import (
	"testing"

	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/kthaib/aqari-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		name                          string
		amount, companyRate, vatRate  string
		wantCommission, wantVAT, wantNet string
	}{
		{"standard rates", "4500", "0.05", "0.15", "225", "33.75", "4241.25"},
		{"rounding to two decimals", "1000.33", "0.05", "0.15", "50.02", "7.5", "942.81"},
		{"zero company rate", "5000", "0", "0.15", "0", "0", "5000"},
		{"zero vat rate", "5000", "0.05", "0", "250", "0", "4750"},
		{"small amount", "0.01", "0.05", "0.15", "0", "0", "0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(dec(tt.amount), dec(tt.companyRate), dec(tt.vatRate))
			require.NoError(t, err)
			assert.True(t, dec(tt.wantCommission).Equal(b.CompanyCommission),
				"commission: want %s got %s", tt.wantCommission, b.CompanyCommission)
			assert.True(t, dec(tt.wantVAT).Equal(b.VATOnCommission),
				"vat: want %s got %s", tt.wantVAT, b.VATOnCommission)
			assert.True(t, dec(tt.wantNet).Equal(b.NetToOwner),
				"net: want %s got %s", tt.wantNet, b.NetToOwner)
		})
	}
}

// The split always reconciles: commission + vat + net == amount.
func TestComputeReconciles(t *testing.T) {
	amounts := []string{"4500", "1000.33", "0.01", "99999.99", "123.45"}
	for _, a := range amounts {
		b, err := Compute(dec(a), dec("0.05"), dec("0.15"))
		require.NoError(t, err)
		sum := b.CompanyCommission.Add(b.VATOnCommission).Add(b.NetToOwner)
		assert.True(t, dec(a).Equal(sum), "amount %s: parts sum to %s", a, sum)
	}
}

// Recomputing from the same inputs must yield identical results.
func TestComputeIdempotent(t *testing.T) {
	first, err := Compute(dec("7321.57"), dec("0.05"), dec("0.15"))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compute(dec("7321.57"), dec("0.05"), dec("0.15"))
		require.NoError(t, err)
		assert.True(t, first.CompanyCommission.Equal(again.CompanyCommission))
		assert.True(t, first.VATOnCommission.Equal(again.VATOnCommission))
		assert.True(t, first.NetToOwner.Equal(again.NetToOwner))
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name                         string
		amount, companyRate, vatRate string
	}{
		{"zero amount", "0", "0.05", "0.15"},
		{"negative amount", "-100", "0.05", "0.15"},
		{"negative company rate", "100", "-0.05", "0.15"},
		{"company rate at one", "100", "1", "0.15"},
		{"negative vat rate", "100", "0.05", "-0.15"},
		{"vat rate above one", "100", "0.05", "1.5"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(dec(tt.amount), dec(tt.companyRate), dec(tt.vatRate))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestApplySetsDerivedFields(t *testing.T) {
	p := &entity.Payment{
		Amount:      dec("4500"),
		CompanyRate: dec("0.05"),
		VATRate:     dec("0.15"),
	}
	require.NoError(t, Apply(p))
	assert.True(t, dec("225").Equal(p.CompanyCommission))
	assert.True(t, dec("33.75").Equal(p.VATOnCommission))
	assert.True(t, dec("4241.25").Equal(p.NetToOwner))

	// Applying again changes nothing.
	require.NoError(t, Apply(p))
	assert.True(t, dec("225").Equal(p.CompanyCommission))
}
