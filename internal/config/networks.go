package config

// NetworkParams holds the fixed genesis parameters for a single network.
// These feed directly into the header and coinbase serialization, so any
// change here changes the resulting genesis hash.
type NetworkParams struct {
	// CoinbaseMessage is embedded in the coinbase scriptSig
	CoinbaseMessage string
	// Time is the header nTime value (seconds since epoch)
	Time uint32
	// Bits is the compact difficulty encoding for the header nBits field
	Bits uint32
	// Version is the header nVersion value
	Version uint32
}

// GenesisOutput is a single P2PKH output in the genesis coinbase
type GenesisOutput struct {
	// Value in the smallest currency unit
	Value uint64
	// PubKeyHash is the hex-encoded 20-byte recipient hash
	PubKeyHash string
}

var Networks = map[string]NetworkParams{
	"mainnet": {
		CoinbaseMessage: "PIVHU Genesis Nov 2025 - Knowledge Hedge Unit - MN Consensus - Zero Block Reward",
		Time:            1732924800, // Nov 30, 2025 00:00:00 UTC
		Bits:            0x1e0ffff0,
		Version:         1,
	},
	"testnet": {
		CoinbaseMessage: "PIVHU Testnet Dec 2025 - Knowledge Hedge Unit - 3 MN DMM Genesis",
		Time:            1733270400, // Dec 4, 2025 00:00:00 UTC
		Bits:            0x1e0ffff0,
		Version:         1,
	},
	"regtest": {
		CoinbaseMessage: "PIVHU Regtest Dec 2025 - Knowledge Hedge Unit - Test Genesis v2",
		Time:            1732924800,
		Bits:            0x207fffff, // very easy difficulty for regtest
		Version:         1,
	},
}

// GenesisOutputs is the fixed coinbase output list. The same outputs are
// used on every network.
var GenesisOutputs = []GenesisOutput{
	// MN1 collateral (10,000 PIV2)
	{Value: 10000 * 100000000, PubKeyHash: "87060609b12d797fd2396629957fde4a3d3adbff"},
	// MN2 collateral (10,000 PIV2)
	{Value: 10000 * 100000000, PubKeyHash: "2563dfb22c186e7d2741ed6d785856f7f17e187a"},
	// MN3 collateral (10,000 PIV2)
	{Value: 10000 * 100000000, PubKeyHash: "dd2ba22aec7280230ff03da61b7141d7acf12edd"},
	// Dev wallet (50,000,000 PIV2)
	{Value: 50000000 * 100000000, PubKeyHash: "197cf6a11f4214b4028389c77b90f27bc90dc839"},
	// Faucet (50,000,000 PIV2)
	{Value: 50000000 * 100000000, PubKeyHash: "ec1ab14139850ef2520199c49ba1e46656c9e84f"},
}
