package restModel

import (
	"time"

	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/shopspring/decimal"
)

// OperationTrade is one fill of an operation.
type OperationTrade struct {
	TradeID  string
	Date     time.Time
	Price    decimal.Decimal
	Quantity int64
}

var operationTradeSchema = wire.NewSchema("OperationTrade",
	wire.F("trade_id").Key("tradeId"),
	wire.F("date"),
	wire.F("price"),
	wire.F("quantity"),
)

func (t *OperationTrade) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(operationTradeSchema, data)
	if err != nil {
		return err
	}

	v := OperationTrade{
		TradeID:  r.String("trade_id"),
		Date:     r.Time("date"),
		Price:    r.Decimal("price"),
		Quantity: r.Int64("quantity"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*t = v
	return nil
}

func (t OperationTrade) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(operationTradeSchema)
	w.String("trade_id", t.TradeID)
	w.Time("date", t.Date)
	w.Decimal("price", t.Price)
	w.Int64("quantity", t.Quantity)
	return w.Bytes()
}

// Operation is a ledger event. Price, Quantity and Trades are meaningful only when Status is
// OperationStatusDone, they may be present for other statuses and are decoded as is.
type Operation struct {
	ID               string
	Status           OperationStatus
	Trades           []OperationTrade
	Commission       *MoneyAmount
	Currency         Currency
	Payment          decimal.Decimal
	Price            *decimal.Decimal
	Quantity         *int64
	QuantityExecuted *int64
	FIGI             *string
	InstrumentType   *InstrumentType
	IsMarginCall     bool
	Date             time.Time
	OperationType    *OperationTypeWithCommission
}

var operationSchema = wire.NewSchema("Operation",
	wire.F("id"),
	wire.F("status"),
	wire.F("trades").Opt(),
	wire.F("commission").Opt(),
	wire.F("currency"),
	wire.F("payment"),
	wire.F("price").Opt(),
	wire.F("quantity").Opt(),
	wire.F("quantity_executed").Key("quantityExecuted").Opt(),
	wire.F("figi").Opt(),
	wire.F("instrument_type").Key("instrumentType").Opt(),
	wire.F("is_margin_call").Key("isMarginCall"),
	wire.F("date"),
	wire.F("operation_type").Key("operationType").Opt(),
)

func (o *Operation) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(operationSchema, data)
	if err != nil {
		return err
	}

	v := Operation{
		ID:               r.String("id"),
		Status:           wire.ReadEnum(r, "status", operationStatusTable),
		Trades:           wire.ReadOptSlice[OperationTrade](r, "trades"),
		Commission:       wire.ReadOptObject[MoneyAmount](r, "commission"),
		Currency:         wire.ReadEnum(r, "currency", currencyTable),
		Payment:          r.Decimal("payment"),
		Price:            r.OptDecimal("price"),
		Quantity:         r.OptInt64("quantity"),
		QuantityExecuted: r.OptInt64("quantity_executed"),
		FIGI:             r.OptString("figi"),
		InstrumentType:   wire.ReadOptEnum(r, "instrument_type", instrumentTypeTable),
		IsMarginCall:     r.Bool("is_margin_call"),
		Date:             r.Time("date"),
		OperationType:    wire.ReadOptEnum(r, "operation_type", operationTypeWithCommissionTable),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*o = v
	return nil
}

func (o Operation) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(operationSchema)
	w.String("id", o.ID)
	wire.WriteEnum(w, "status", operationStatusTable, o.Status)
	wire.WriteOptSlice(w, "trades", o.Trades)
	wire.WriteOptObject(w, "commission", o.Commission)
	wire.WriteEnum(w, "currency", currencyTable, o.Currency)
	w.Decimal("payment", o.Payment)
	w.OptDecimal("price", o.Price)
	w.OptInt64("quantity", o.Quantity)
	w.OptInt64("quantity_executed", o.QuantityExecuted)
	w.OptString("figi", o.FIGI)
	wire.WriteOptEnum(w, "instrument_type", instrumentTypeTable, o.InstrumentType)
	w.Bool("is_margin_call", o.IsMarginCall)
	w.Time("date", o.Date)
	wire.WriteOptEnum(w, "operation_type", operationTypeWithCommissionTable, o.OperationType)
	return w.Bytes()
}

type OperationsPayload struct {
	Operations []Operation
}

var operationsPayloadSchema = wire.NewSchema("OperationsPayload",
	wire.F("operations"),
)

func (p *OperationsPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(operationsPayloadSchema, data)
	if err != nil {
		return err
	}

	v := OperationsPayload{
		Operations: wire.ReadSlice[Operation](r, "operations"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p OperationsPayload) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(operationsPayloadSchema)
	wire.WriteSlice(w, "operations", p.Operations)
	return w.Bytes()
}
