package marketplace

import "errors"

var (
	ErrNotRegisteredContract       = errors.New("collection is not registered")
	ErrNotOwner                    = errors.New("caller is not the owner")
	ErrTokenDoesNotExist           = errors.New("token does not exist")
	ErrTokenNotApproved            = errors.New("marketplace is not approved for the token")
	ErrItemNotListedForSale        = errors.New("item is not listed for sale")
	ErrAlreadyOwner                = errors.New("caller already owns the token")
	ErrBadBuyValue                 = errors.New("attached value is below the price")
	ErrFeeTooHigh                  = errors.New("fee exceeds the maximum fee")
	ErrContractAlreadyRegistered   = errors.New("collection is already registered")
	ErrBalanceInsufficient         = errors.New("deposit balance is insufficient")
	ErrTransferToOwnerFailed       = errors.New("transfer to owner failed")
	ErrTransferToMarketplaceFailed = errors.New("transfer to marketplace failed")
	ErrTransferToAuthorFailed      = errors.New("transfer to royalty receiver failed")
	ErrUnableToTransferToken       = errors.New("unable to transfer token")
	ErrNftContractHashNotSet       = errors.New("nft contract hash is not set")

	ErrOfferNotFound      = errors.New("offer not found")
	ErrFeeRecipientNotSet = errors.New("fee recipient is not set")
	ErrReentrantCall      = errors.New("reentrant call")
	ErrOfferTokenMismatch = errors.New("offer is for another token")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)
