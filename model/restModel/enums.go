package restModel

import "github.com/KotFed0t/invest_contracts/model/wire"

// Currency is an ISO 4217 code of the currencies the broker settles in.
type Currency uint8

const (
	CurrencyRUB Currency = iota + 1
	CurrencyUSD
	CurrencyEUR
	CurrencyGBP
	CurrencyHKD
	CurrencyCHF
	CurrencyJPY
	CurrencyCNY
	CurrencyTRY
)

var currencyTable = wire.NewEnumTable("Currency",
	wire.Pair(CurrencyRUB, "RUB"),
	wire.Pair(CurrencyUSD, "USD"),
	wire.Pair(CurrencyEUR, "EUR"),
	wire.Pair(CurrencyGBP, "GBP"),
	wire.Pair(CurrencyHKD, "HKD"),
	wire.Pair(CurrencyCHF, "CHF"),
	wire.Pair(CurrencyJPY, "JPY"),
	wire.Pair(CurrencyCNY, "CNY"),
	wire.Pair(CurrencyTRY, "TRY"),
)

func (c Currency) String() string {
	return currencyTable.String(c)
}

func (c Currency) MarshalText() ([]byte, error) {
	return currencyTable.MarshalText(c)
}

func (c *Currency) UnmarshalText(text []byte) error {
	return currencyTable.UnmarshalText(c, text)
}

type InstrumentType uint8

const (
	InstrumentTypeStock InstrumentType = iota + 1
	InstrumentTypeCurrency
	InstrumentTypeBond
	InstrumentTypeEtf
)

var instrumentTypeTable = wire.NewEnumTable("InstrumentType",
	wire.Pair(InstrumentTypeStock, "Stock"),
	wire.Pair(InstrumentTypeCurrency, "Currency"),
	wire.Pair(InstrumentTypeBond, "Bond"),
	wire.Pair(InstrumentTypeEtf, "Etf"),
)

func (i InstrumentType) String() string {
	return instrumentTypeTable.String(i)
}

func (i InstrumentType) MarshalText() ([]byte, error) {
	return instrumentTypeTable.MarshalText(i)
}

func (i *InstrumentType) UnmarshalText(text []byte) error {
	return instrumentTypeTable.UnmarshalText(i, text)
}

// OperationType is the direction of an order.
type OperationType uint8

const (
	OperationTypeBuy OperationType = iota + 1
	OperationTypeSell
)

var operationTypeTable = wire.NewEnumTable("OperationType",
	wire.Pair(OperationTypeBuy, "Buy"),
	wire.Pair(OperationTypeSell, "Sell"),
)

func (o OperationType) String() string {
	return operationTypeTable.String(o)
}

func (o OperationType) MarshalText() ([]byte, error) {
	return operationTypeTable.MarshalText(o)
}

func (o *OperationType) UnmarshalText(text []byte) error {
	return operationTypeTable.UnmarshalText(o, text)
}

// OperationTypeWithCommission classifies ledger operations: trades plus commissions, taxes,
// coupons, dividends and transfers.
type OperationTypeWithCommission uint8

const (
	OperationTypeWithCommissionBuy OperationTypeWithCommission = iota + 1
	OperationTypeWithCommissionBuyCard
	OperationTypeWithCommissionSell
	OperationTypeWithCommissionBrokerCommission
	OperationTypeWithCommissionExchangeCommission
	OperationTypeWithCommissionServiceCommission
	OperationTypeWithCommissionMarginCommission
	OperationTypeWithCommissionOtherCommission
	OperationTypeWithCommissionPayIn
	OperationTypeWithCommissionPayOut
	OperationTypeWithCommissionTax
	OperationTypeWithCommissionTaxLucre
	OperationTypeWithCommissionTaxDividend
	OperationTypeWithCommissionTaxCoupon
	OperationTypeWithCommissionTaxBack
	OperationTypeWithCommissionRepayment
	OperationTypeWithCommissionPartRepayment
	OperationTypeWithCommissionCoupon
	OperationTypeWithCommissionDividend
	OperationTypeWithCommissionSecurityIn
	OperationTypeWithCommissionSecurityOut
)

var operationTypeWithCommissionTable = wire.NewEnumTable("OperationTypeWithCommission",
	wire.Pair(OperationTypeWithCommissionBuy, "Buy"),
	wire.Pair(OperationTypeWithCommissionBuyCard, "BuyCard"),
	wire.Pair(OperationTypeWithCommissionSell, "Sell"),
	wire.Pair(OperationTypeWithCommissionBrokerCommission, "BrokerCommission"),
	wire.Pair(OperationTypeWithCommissionExchangeCommission, "ExchangeCommission"),
	wire.Pair(OperationTypeWithCommissionServiceCommission, "ServiceCommission"),
	wire.Pair(OperationTypeWithCommissionMarginCommission, "MarginCommission"),
	wire.Pair(OperationTypeWithCommissionOtherCommission, "OtherCommission"),
	wire.Pair(OperationTypeWithCommissionPayIn, "PayIn"),
	wire.Pair(OperationTypeWithCommissionPayOut, "PayOut"),
	wire.Pair(OperationTypeWithCommissionTax, "Tax"),
	wire.Pair(OperationTypeWithCommissionTaxLucre, "TaxLucre"),
	wire.Pair(OperationTypeWithCommissionTaxDividend, "TaxDividend"),
	wire.Pair(OperationTypeWithCommissionTaxCoupon, "TaxCoupon"),
	wire.Pair(OperationTypeWithCommissionTaxBack, "TaxBack"),
	wire.Pair(OperationTypeWithCommissionRepayment, "Repayment"),
	wire.Pair(OperationTypeWithCommissionPartRepayment, "PartRepayment"),
	wire.Pair(OperationTypeWithCommissionCoupon, "Coupon"),
	wire.Pair(OperationTypeWithCommissionDividend, "Dividend"),
	wire.Pair(OperationTypeWithCommissionSecurityIn, "SecurityIn"),
	wire.Pair(OperationTypeWithCommissionSecurityOut, "SecurityOut"),
)

func (o OperationTypeWithCommission) String() string {
	return operationTypeWithCommissionTable.String(o)
}

func (o OperationTypeWithCommission) MarshalText() ([]byte, error) {
	return operationTypeWithCommissionTable.MarshalText(o)
}

func (o *OperationTypeWithCommission) UnmarshalText(text []byte) error {
	return operationTypeWithCommissionTable.UnmarshalText(o, text)
}

type OrderStatus uint8

const (
	OrderStatusNew OrderStatus = iota + 1
	OrderStatusPartiallyFill
	OrderStatusFill
	OrderStatusCancelled
	OrderStatusReplaced
	OrderStatusPendingCancel
	OrderStatusRejected
	OrderStatusPendingReplace
	OrderStatusPendingNew
)

var orderStatusTable = wire.NewEnumTable("OrderStatus",
	wire.Pair(OrderStatusNew, "New"),
	wire.Pair(OrderStatusPartiallyFill, "PartiallyFill"),
	wire.Pair(OrderStatusFill, "Fill"),
	wire.Pair(OrderStatusCancelled, "Cancelled"),
	wire.Pair(OrderStatusReplaced, "Replaced"),
	wire.Pair(OrderStatusPendingCancel, "PendingCancel"),
	wire.Pair(OrderStatusRejected, "Rejected"),
	wire.Pair(OrderStatusPendingReplace, "PendingReplace"),
	wire.Pair(OrderStatusPendingNew, "PendingNew"),
)

func (o OrderStatus) String() string {
	return orderStatusTable.String(o)
}

func (o OrderStatus) MarshalText() ([]byte, error) {
	return orderStatusTable.MarshalText(o)
}

func (o *OrderStatus) UnmarshalText(text []byte) error {
	return orderStatusTable.UnmarshalText(o, text)
}

type OrderType uint8

const (
	OrderTypeLimit OrderType = iota + 1
	OrderTypeMarket
)

var orderTypeTable = wire.NewEnumTable("OrderType",
	wire.Pair(OrderTypeLimit, "Limit"),
	wire.Pair(OrderTypeMarket, "Market"),
)

func (o OrderType) String() string {
	return orderTypeTable.String(o)
}

func (o OrderType) MarshalText() ([]byte, error) {
	return orderTypeTable.MarshalText(o)
}

func (o *OrderType) UnmarshalText(text []byte) error {
	return orderTypeTable.UnmarshalText(o, text)
}

type BrokerAccountType uint8

const (
	BrokerAccountTypeTinkoff BrokerAccountType = iota + 1
	BrokerAccountTypeTinkoffIis
)

var brokerAccountTypeTable = wire.NewEnumTable("BrokerAccountType",
	wire.Pair(BrokerAccountTypeTinkoff, "Tinkoff"),
	wire.Pair(BrokerAccountTypeTinkoffIis, "TinkoffIis"),
)

func (b BrokerAccountType) String() string {
	return brokerAccountTypeTable.String(b)
}

func (b BrokerAccountType) MarshalText() ([]byte, error) {
	return brokerAccountTypeTable.MarshalText(b)
}

func (b *BrokerAccountType) UnmarshalText(text []byte) error {
	return brokerAccountTypeTable.UnmarshalText(b, text)
}

// OperationStatus tells whether price, quantity and trades of an Operation are final.
type OperationStatus uint8

const (
	OperationStatusDone OperationStatus = iota + 1
	OperationStatusDecline
	OperationStatusProgress
)

var operationStatusTable = wire.NewEnumTable("OperationStatus",
	wire.Pair(OperationStatusDone, "Done"),
	wire.Pair(OperationStatusDecline, "Decline"),
	wire.Pair(OperationStatusProgress, "Progress"),
)

func (o OperationStatus) String() string {
	return operationStatusTable.String(o)
}

func (o OperationStatus) MarshalText() ([]byte, error) {
	return operationStatusTable.MarshalText(o)
}

func (o *OperationStatus) UnmarshalText(text []byte) error {
	return operationStatusTable.UnmarshalText(o, text)
}

type TradeStatus uint8

const (
	TradeStatusNormalTrading TradeStatus = iota + 1
	TradeStatusNotAvailableForTrading
)

var tradeStatusTable = wire.NewEnumTable("TradeStatus",
	wire.Pair(TradeStatusNormalTrading, "NormalTrading"),
	wire.Pair(TradeStatusNotAvailableForTrading, "NotAvailableForTrading"),
)

func (t TradeStatus) String() string {
	return tradeStatusTable.String(t)
}

func (t TradeStatus) MarshalText() ([]byte, error) {
	return tradeStatusTable.MarshalText(t)
}

func (t *TradeStatus) UnmarshalText(text []byte) error {
	return tradeStatusTable.UnmarshalText(t, text)
}

// CandleResolution is the interval of a candlestick. Wire tokens differ from identifiers,
// e.g. CandleResolutionMin1 is "1min" and CandleResolutionHour is "hour".
type CandleResolution uint8

const (
	CandleResolutionMin1 CandleResolution = iota + 1
	CandleResolutionMin2
	CandleResolutionMin3
	CandleResolutionMin5
	CandleResolutionMin10
	CandleResolutionMin15
	CandleResolutionMin30
	CandleResolutionHour
	CandleResolutionDay
	CandleResolutionWeek
	CandleResolutionMonth
)

var candleResolutionTable = wire.NewEnumTable("CandleResolution",
	wire.Pair(CandleResolutionMin1, "1min"),
	wire.Pair(CandleResolutionMin2, "2min"),
	wire.Pair(CandleResolutionMin3, "3min"),
	wire.Pair(CandleResolutionMin5, "5min"),
	wire.Pair(CandleResolutionMin10, "10min"),
	wire.Pair(CandleResolutionMin15, "15min"),
	wire.Pair(CandleResolutionMin30, "30min"),
	wire.Pair(CandleResolutionHour, "hour"),
	wire.Pair(CandleResolutionDay, "day"),
	wire.Pair(CandleResolutionWeek, "week"),
	wire.Pair(CandleResolutionMonth, "month"),
)

func (c CandleResolution) String() string {
	return candleResolutionTable.String(c)
}

func (c CandleResolution) MarshalText() ([]byte, error) {
	return candleResolutionTable.MarshalText(c)
}

func (c *CandleResolution) UnmarshalText(text []byte) error {
	return candleResolutionTable.UnmarshalText(c, text)
}

// ResponseStatus is the application level outcome of a REST call, independent of the HTTP code.
type ResponseStatus uint8

const (
	ResponseStatusOk ResponseStatus = iota + 1
	ResponseStatusError
)

var responseStatusTable = wire.NewEnumTable("ResponseStatus",
	wire.Pair(ResponseStatusOk, "Ok"),
	wire.Pair(ResponseStatusError, "Error"),
)

func (r ResponseStatus) String() string {
	return responseStatusTable.String(r)
}

func (r ResponseStatus) MarshalText() ([]byte, error) {
	return responseStatusTable.MarshalText(r)
}

func (r *ResponseStatus) UnmarshalText(text []byte) error {
	return responseStatusTable.UnmarshalText(r, text)
}
