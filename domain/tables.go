package domain

// Table is a mongo collection name
type Table string

const (
	TableListings              Table = "listings"
	TableRegisteredCollections Table = "registered_collections"
	TableMarketplaceConfig     Table = "marketplace_config"
	TableDeposits              Table = "deposits"
	TableOffers                Table = "offers"
	TableCounters              Table = "counters"
	TableContractHashes        Table = "contract_hashes"

	// registry and wallet state of the hosting ledger
	TableTokens            Table = "tokens"
	TableTokenContracts    Table = "token_contracts"
	TableOperatorApprovals Table = "operator_approvals"
	TableWallets           Table = "wallets"
)

// TableIndex describes an index a table needs before serving traffic
type TableIndex struct {
	Table  Table
	Keys   []string
	Unique bool
}

var TableIndexes = []TableIndex{
	{Table: TableListings, Keys: []string{"collection", "tokenId"}, Unique: true},
	{Table: TableListings, Keys: []string{"seller"}},
	{Table: TableRegisteredCollections, Keys: []string{"address"}, Unique: true},
	{Table: TableDeposits, Keys: []string{"account"}, Unique: true},
	{Table: TableOffers, Keys: []string{"offerId"}, Unique: true},
	{Table: TableOffers, Keys: []string{"bidder"}},
	{Table: TableOffers, Keys: []string{"collection", "tokenId"}},
	{Table: TableContractHashes, Keys: []string{"contractType"}, Unique: true},
	{Table: TableTokens, Keys: []string{"collection", "tokenId"}, Unique: true},
	{Table: TableTokenContracts, Keys: []string{"address"}, Unique: true},
	{Table: TableOperatorApprovals, Keys: []string{"collection", "owner", "operator"}, Unique: true},
	{Table: TableWallets, Keys: []string{"account"}, Unique: true},
}
