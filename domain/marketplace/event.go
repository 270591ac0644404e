package marketplace

import (
	"time"

	"github.com/x-xyz/marketcore/domain"
)

type EventType string

const (
	// EventTokenListed carries no price when the token was unlisted
	EventTokenListed          EventType = "TokenListed"
	EventTokenBought          EventType = "TokenBought"
	EventCollectionRegistered EventType = "CollectionRegistered"
	EventOfferMade            EventType = "OfferMade"
	EventOfferCancelled       EventType = "OfferCancelled"
	EventOfferAccepted        EventType = "OfferAccepted"
	EventDeposited            EventType = "Deposited"
	EventWithdrawn            EventType = "Withdrawn"
)

type Event struct {
	Type         EventType       `json:"type"`
	Collection   domain.Address  `json:"collection,omitempty"`
	TokenId      *domain.TokenId `json:"tokenId,omitempty"`
	Account      domain.Address  `json:"account,omitempty"`
	Counterparty domain.Address  `json:"counterparty,omitempty"`
	Price        *domain.Balance `json:"price,omitempty"`
	OfferId      uint64          `json:"offerId,omitempty"`
	Quantity     uint64          `json:"quantity,omitempty"`
	Extra        string          `json:"extra,omitempty"`
	At           time.Time       `json:"at"`
}

func TokenListed(collection domain.Address, tokenId domain.TokenId, seller domain.Address, price *domain.Balance) Event {
	return Event{
		Type:       EventTokenListed,
		Collection: collection,
		TokenId:    &tokenId,
		Account:    seller,
		Price:      price,
		At:         time.Now(),
	}
}

func TokenBought(collection domain.Address, tokenId domain.TokenId, buyer, seller domain.Address, price domain.Balance) Event {
	return Event{
		Type:         EventTokenBought,
		Collection:   collection,
		TokenId:      &tokenId,
		Account:      buyer,
		Counterparty: seller,
		Price:        &price,
		At:           time.Now(),
	}
}

func CollectionRegistered(collection, registrant domain.Address) Event {
	return Event{
		Type:       EventCollectionRegistered,
		Collection: collection,
		Account:    registrant,
		At:         time.Now(),
	}
}

func BalanceMoved(typ EventType, account domain.Address, amount domain.Balance) Event {
	return Event{
		Type:    typ,
		Account: account,
		Price:   &amount,
		At:      time.Now(),
	}
}

func OfferMade(offerId uint64, bidder, collection domain.Address, tokenId *domain.TokenId, quantity uint64, pricePerItem domain.Balance, extra string) Event {
	return Event{
		Type:       EventOfferMade,
		Collection: collection,
		TokenId:    tokenId,
		Account:    bidder,
		Price:      &pricePerItem,
		OfferId:    offerId,
		Quantity:   quantity,
		Extra:      extra,
		At:         time.Now(),
	}
}

func OfferCancelled(offerId uint64, bidder domain.Address) Event {
	return Event{
		Type:    EventOfferCancelled,
		Account: bidder,
		OfferId: offerId,
		At:      time.Now(),
	}
}

// OfferAccepted reports one unit of an offer settled at price
func OfferAccepted(offerId uint64, collection domain.Address, tokenId domain.TokenId, bidder, seller domain.Address, price domain.Balance) Event {
	return Event{
		Type:         EventOfferAccepted,
		Collection:   collection,
		TokenId:      &tokenId,
		Account:      bidder,
		Counterparty: seller,
		Price:        &price,
		OfferId:      offerId,
		Quantity:     1,
		At:           time.Now(),
	}
}
