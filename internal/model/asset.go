package model

// AssetID is the opaque, globally unique identifier of a fungible asset,
// e.g. "0x2::iota::IOTA" for the chain-native coin or a full issued coin
// type. Equality is exact string identity; no normalization is performed.
type AssetID string

func (a AssetID) String() string {
	return string(a)
}
