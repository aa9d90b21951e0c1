package client

// Settlement networks accepted by the gateway
type ChainType string

const (
	CHAIN_TRC20    ChainType = "TRC20"
	CHAIN_BSC      ChainType = "BSC"
	CHAIN_POLYGON  ChainType = "POLYGON"
	CHAIN_ETH      ChainType = "ETH"
	CHAIN_ARBITRUM ChainType = "ARBITRUM"
)

// DefaultChain is used when a payment request leaves the chain unset.
const DefaultChain = CHAIN_TRC20

func (c ChainType) String() string {
	return string(c)
}

func (c ChainType) IsValid() bool {
	switch c {
	case CHAIN_TRC20, CHAIN_BSC, CHAIN_POLYGON, CHAIN_ETH, CHAIN_ARBITRUM:
		return true
	}
	return false
}

// ChainTypes returns the closed set of supported networks.
func ChainTypes() []ChainType {
	return []ChainType{CHAIN_TRC20, CHAIN_BSC, CHAIN_POLYGON, CHAIN_ETH, CHAIN_ARBITRUM}
}

// Payment lifecycle statuses, as the gateway reports them
type PaymentStatus int

const (
	STATUS_PENDING PaymentStatus = 1
	STATUS_PAID    PaymentStatus = 2
	STATUS_EXPIRED PaymentStatus = 3
)

func (s PaymentStatus) String() string {
	switch s {
	case STATUS_PENDING:
		return "Pending"
	case STATUS_PAID:
		return "Paid"
	case STATUS_EXPIRED:
		return "Expired"
	}
	return "Unknown"
}
