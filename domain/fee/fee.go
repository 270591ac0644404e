package fee

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// Config is the marketplace wide fee setting. MaxFee never changes after
// the config is initialized.
type Config struct {
	Fee          uint16          `json:"fee" bson:"fee"`
	MaxFee       uint16          `json:"maxFee" bson:"maxFee"`
	FeeRecipient *domain.Address `json:"feeRecipient" bson:"feeRecipient"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type ConfigPatch struct {
	Fee          *uint16         `bson:"fee,omitempty"`
	FeeRecipient *domain.Address `bson:"feeRecipient,omitempty"`
	UpdatedAt    time.Time       `bson:"updatedAt"`
}

// Split is how a sale value is divided. The three parts always add up to the value.
type Split struct {
	MarketplaceFee domain.Balance `json:"marketplaceFee"`
	AuthorRoyalty  domain.Balance `json:"authorRoyalty"`
	SellerAmount   domain.Balance `json:"sellerAmount"`
}

// CheckFee fails with ErrFeeTooHigh when fee is above maxFee
func CheckFee(fee, maxFee uint16) error {
	if fee > maxFee {
		return marketplace.ErrFeeTooHigh
	}
	return nil
}

// ComputeSplit rounds the fee and the royalty down, the seller gets the remainder.
// Fee and royalty together may not exceed the whole value.
func ComputeSplit(value domain.Balance, feeBps, royaltyBps uint16) (Split, error) {
	if uint32(feeBps)+uint32(royaltyBps) > domain.BpsDenominator {
		return Split{}, xerrors.Errorf("%w: fee %d + royalty %d bps", domain.ErrArithmeticOverflow, feeBps, royaltyBps)
	}
	marketplaceFee, err := value.MulBps(feeBps)
	if err != nil {
		return Split{}, err
	}
	authorRoyalty, err := value.MulBps(royaltyBps)
	if err != nil {
		return Split{}, err
	}
	sellerAmount, err := value.Sub(marketplaceFee)
	if err != nil {
		return Split{}, err
	}
	if sellerAmount, err = sellerAmount.Sub(authorRoyalty); err != nil {
		return Split{}, err
	}
	return Split{
		MarketplaceFee: marketplaceFee,
		AuthorRoyalty:  authorRoyalty,
		SellerAmount:   sellerAmount,
	}, nil
}

type Repo interface {
	Get(c ctx.Ctx) (*Config, error)
	// Insert fails with domain.ErrConflict when the config exists
	Insert(c ctx.Ctx, value Config) error
	Patch(c ctx.Ctx, patch ConfigPatch) error
}

type UseCase interface {
	// Initialize creates the config once, an existing config is left untouched
	Initialize(c ctx.Ctx, maxFee, fee uint16, recipient *domain.Address) error
	SetMarketplaceFee(c ctx.Ctx, call marketplace.Call, fee uint16) error
	SetFeeRecipient(c ctx.Ctx, call marketplace.Call, recipient domain.Address) error
	GetConfig(c ctx.Ctx) (*Config, error)
	GetMarketplaceFee(c ctx.Ctx) (uint16, error)
	GetMaxFee(c ctx.Ctx) (uint16, error)
	// GetFeeRecipient fails with ErrFeeRecipientNotSet when no recipient is configured
	GetFeeRecipient(c ctx.Ctx) (domain.Address, error)
	// ValidateFee checks a candidate fee or royalty against the max fee
	ValidateFee(c ctx.Ctx, fee uint16) error
	// Quote splits value with the current marketplace fee
	Quote(c ctx.Ctx, value domain.Balance, royaltyBps uint16) (Split, error)
}
