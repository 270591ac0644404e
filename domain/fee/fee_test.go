package fee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

func TestCheckFee(t *testing.T) {
	assert.NoError(t, CheckFee(1000, 1000))
	assert.ErrorIs(t, CheckFee(1001, 1000), marketplace.ErrFeeTooHigh)
}

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		desc    string
		value   domain.Balance
		fee     uint16
		royalty uint16
		want    Split
		wantErr error
	}{
		{
			desc:    "fee and royalty",
			value:   domain.NewBalance(1000),
			fee:     250,
			royalty: 500,
			want:    Split{domain.NewBalance(25), domain.NewBalance(50), domain.NewBalance(925)},
		},
		{
			desc:    "rounding goes to the seller",
			value:   domain.NewBalance(999),
			fee:     1,
			royalty: 1,
			want:    Split{domain.Balance{}, domain.Balance{}, domain.NewBalance(999)},
		},
		{
			desc:    "everything to fees",
			value:   domain.NewBalance(100),
			fee:     5000,
			royalty: 5000,
			want:    Split{domain.NewBalance(50), domain.NewBalance(50), domain.Balance{}},
		},
		{
			desc:    "fees above value",
			value:   domain.NewBalance(100),
			fee:     6000,
			royalty: 5000,
			wantErr: domain.ErrArithmeticOverflow,
		},
		{
			desc:    "product out of range",
			value:   domain.MaxBalance(),
			fee:     2,
			wantErr: domain.ErrArithmeticOverflow,
		},
	}

	for _, tt := range tests {
		got, err := ComputeSplit(tt.value, tt.fee, tt.royalty)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.desc)
			continue
		}
		require.NoError(t, err, tt.desc)
		assert.Equal(t, tt.want, got, tt.desc)

		total, err := got.MarketplaceFee.Add(got.AuthorRoyalty)
		require.NoError(t, err)
		total, err = total.Add(got.SellerAmount)
		require.NoError(t, err)
		assert.True(t, total.Equal(tt.value), tt.desc)
	}
}
