package restModel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KotFed0t/invest_contracts/model/wire"
)

// ContractKey selects a response contract by endpoint and schema generation.
type ContractKey struct {
	Endpoint string
	Version  int
}

func (k ContractKey) String() string {
	return fmt.Sprintf("%s@v%d", k.Endpoint, k.Version)
}

// ParseContractKey parses "endpoint@vN". Without a version the latest generation is selected.
func ParseContractKey(s string) (ContractKey, error) {
	endpoint, version, found := strings.Cut(s, "@")
	if endpoint == "" {
		return ContractKey{}, fmt.Errorf("%w: empty endpoint in %q", ErrUnknownContract, s)
	}
	if !found {
		v, ok := latest[endpoint]
		if !ok {
			return ContractKey{}, fmt.Errorf("%w: %s", ErrUnknownContract, endpoint)
		}
		return ContractKey{Endpoint: endpoint, Version: v}, nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(version, "v"))
	if err != nil || !strings.HasPrefix(version, "v") {
		return ContractKey{}, fmt.Errorf("%w: bad version in %q", ErrUnknownContract, s)
	}
	return ContractKey{Endpoint: endpoint, Version: n}, nil
}

// DecodeFunc decodes a whole response envelope. A response with status Error decodes
// to ResponseData[ErrorPayload], anything else to ResponseData of the endpoint payload.
type DecodeFunc func(data []byte) (any, error)

func contract[P any, PT wire.PtrUnmarshaler[P]]() DecodeFunc {
	return func(data []byte) (any, error) {
		env, err := DecodeEnvelope(data)
		if err != nil {
			return nil, err
		}
		if env.Failed() {
			return DecodeErrorPayload(env)
		}
		return DecodePayload[P, PT](env)
	}
}

var contracts = map[ContractKey]DecodeFunc{
	{"user/accounts", 1}:              contract[UserAccountsPayloadV1](),
	{"user/accounts", 2}:              contract[UserAccountsPayloadV2](),
	{"user/accounts", 3}:              contract[UserAccountsPayload](),
	{"market/stocks", 1}:              contract[MarketInstrumentsPayload](),
	{"market/bonds", 1}:               contract[MarketInstrumentsPayload](),
	{"market/etfs", 1}:                contract[MarketInstrumentsPayload](),
	{"market/currencies", 1}:          contract[MarketInstrumentsPayload](),
	{"market/search/by-ticker", 1}:    contract[MarketInstrumentsPayload](),
	{"market/search/by-figi", 1}:      contract[MarketInstrument](),
	{"market/candles", 1}:             contract[CandlesticksPayload](),
	{"market/orderbook", 1}:           contract[Orderbook](),
	{"orders", 1}:                     contract[Orders](),
	{"orders/limit-order", 1}:         contract[PlacedOrder](),
	{"orders/market-order", 1}:        contract[PlacedOrder](),
	{"orders/cancel", 1}:              contract[EmptyPayload](),
	{"portfolio", 1}:                  contract[PortfolioPayloadV1](),
	{"portfolio", 2}:                  contract[PortfolioPayload](),
	{"portfolio/currencies", 1}:       contract[CurrencyPortfolioPayload](),
	{"operations", 1}:                 contract[OperationsPayload](),
	{"sandbox/register", 1}:           contract[SandboxAccount](),
	{"sandbox/currencies/balance", 1}: contract[EmptyPayload](),
	{"sandbox/positions/balance", 1}:  contract[EmptyPayload](),
	{"sandbox/clear", 1}:              contract[EmptyPayload](),
	{"sandbox/remove", 1}:             contract[EmptyPayload](),
}

var latest = func() map[string]int {
	res := make(map[string]int)
	for k := range contracts {
		if k.Version > res[k.Endpoint] {
			res[k.Endpoint] = k.Version
		}
	}
	return res
}()

// Contract returns the decoder registered for key. Selection is always explicit,
// the payload is never probed to guess a version.
func Contract(key ContractKey) (DecodeFunc, error) {
	fn, ok := contracts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, key)
	}
	return fn, nil
}

// Contracts lists the registered keys sorted by endpoint and version.
func Contracts() []ContractKey {
	res := make([]ContractKey, 0, len(contracts))
	for k := range contracts {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Endpoint != res[j].Endpoint {
			return res[i].Endpoint < res[j].Endpoint
		}
		return res[i].Version < res[j].Version
	})
	return res
}
