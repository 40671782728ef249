// Package model defines domain models for entity clustering.
package model

type Coin string
type Network string

var (
	BTC Coin = "BTC"
	LTC Coin = "LTC"
	RVN Coin = "RVN"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// AddressID is an integer surrogate for a blockchain address hash,
// assigned by the address-mapping dataset.
type AddressID uint64

// TxID is an integer surrogate for a transaction hash.
type TxID uint64
