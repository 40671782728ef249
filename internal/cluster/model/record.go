package model

// JoinedRecord is one funding record of a transaction: an input matched to
// the previous output it spends, carrying that output's owning address.
type JoinedRecord struct {
	Coin      Coin
	Network   Network
	TxID      TxID
	AddressID AddressID
}

// MultiInputGroup holds the funding addresses of one transaction that has
// two or more joined funding records. A single address appearing in two
// records still forms a group; the filter counts rows, not distinct
// addresses.
type MultiInputGroup struct {
	TxID      TxID
	Addresses []AddressID
}
