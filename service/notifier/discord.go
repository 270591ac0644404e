package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/marketplace"
)

// discordSession is the part of *discordgo.Session the sink uses
type discordSession interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordSink struct {
	session   discordSession
	channelId string
	decimals  int32
}

// NewDiscord posts sales and listings to a channel as the given bot
func NewDiscord(botKey, channelId string, decimals int32) (Sink, error) {
	session, err := discordgo.New(fmt.Sprintf("Bot %s", botKey))
	if err != nil {
		return nil, err
	}
	return &discordSink{session, channelId, decimals}, nil
}

func (s *discordSink) Name() string {
	return "discord"
}

func (s *discordSink) Send(c ctx.Ctx, evt marketplace.Event) error {
	msg := s.embed(evt)
	if msg == nil {
		return nil
	}
	_, err := s.session.ChannelMessageSendEmbed(s.channelId, msg)
	return err
}

// embed is nil for events the channel does not care about
func (s *discordSink) embed(evt marketplace.Event) *discordgo.MessageEmbed {
	switch evt.Type {
	case marketplace.EventTokenBought:
		return &discordgo.MessageEmbed{
			Title:       "Item sold!",
			Description: s.asset(evt),
			Timestamp:   evt.At.Format("2006-01-02T15:04:05Z07:00"),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Seller", Value: string(evt.Counterparty)},
				{Name: "Buyer", Value: string(evt.Account)},
				{Name: "Price", Value: s.price(evt)},
			},
		}
	case marketplace.EventTokenListed:
		if evt.Price == nil {
			return nil
		}
		return &discordgo.MessageEmbed{
			Title:       "Item listed",
			Description: s.asset(evt),
			Timestamp:   evt.At.Format("2006-01-02T15:04:05Z07:00"),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Seller", Value: string(evt.Account)},
				{Name: "Price", Value: s.price(evt)},
			},
		}
	case marketplace.EventOfferMade:
		return &discordgo.MessageEmbed{
			Title:       "New offer",
			Description: string(evt.Collection),
			Timestamp:   evt.At.Format("2006-01-02T15:04:05Z07:00"),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Bidder", Value: string(evt.Account)},
				{Name: "Quantity", Value: fmt.Sprintf("%d", evt.Quantity)},
				{Name: "Price per item", Value: s.price(evt)},
			},
		}
	}
	return nil
}

func (s *discordSink) asset(evt marketplace.Event) string {
	if evt.TokenId == nil {
		return string(evt.Collection)
	}
	return fmt.Sprintf("%s #%s", evt.Collection, *evt.TokenId)
}

func (s *discordSink) price(evt marketplace.Event) string {
	if evt.Price == nil {
		return "-"
	}
	return evt.Price.Decimal(s.decimals).String()
}
