package restModel

import (
	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/shopspring/decimal"
)

// Order is an active order as listed by GET /orders.
// ExecutedLots <= RequestedLots is the broker's invariant and is not checked here.
type Order struct {
	OrderID       string
	FIGI          string
	Operation     OperationType
	Status        OrderStatus
	RequestedLots int64
	ExecutedLots  int64
	Type          OrderType
	Price         decimal.Decimal
}

var orderSchema = wire.NewSchema("Order",
	wire.F("order_id").Key("orderId"),
	wire.F("figi"),
	wire.F("operation"),
	wire.F("status"),
	wire.F("requested_lots").Key("requestedLots"),
	wire.F("executed_lots").Key("executedLots"),
	wire.F("type"),
	wire.F("price"),
)

func (o *Order) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(orderSchema, data)
	if err != nil {
		return err
	}

	v := Order{
		OrderID:       r.String("order_id"),
		FIGI:          r.String("figi"),
		Operation:     wire.ReadEnum(r, "operation", operationTypeTable),
		Status:        wire.ReadEnum(r, "status", orderStatusTable),
		RequestedLots: r.Int64("requested_lots"),
		ExecutedLots:  r.Int64("executed_lots"),
		Type:          wire.ReadEnum(r, "type", orderTypeTable),
		Price:         r.Decimal("price"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*o = v
	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(orderSchema)
	w.String("order_id", o.OrderID)
	w.String("figi", o.FIGI)
	wire.WriteEnum(w, "operation", operationTypeTable, o.Operation)
	wire.WriteEnum(w, "status", orderStatusTable, o.Status)
	w.Int64("requested_lots", o.RequestedLots)
	w.Int64("executed_lots", o.ExecutedLots)
	wire.WriteEnum(w, "type", orderTypeTable, o.Type)
	w.Decimal("price", o.Price)
	return w.Bytes()
}

// Orders is the payload of GET /orders, a bare array.
type Orders []Order

func (o *Orders) UnmarshalJSON(data []byte) error {
	v, err := wire.DecodeList[Order]("Orders", data)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o Orders) MarshalJSON() ([]byte, error) {
	return wire.EncodeList(o)
}

// PlacedOrder is the broker's answer to a limit or market order submission.
// RejectReason, Message and Commission are present only when the broker reports them.
type PlacedOrder struct {
	OrderID       string
	Operation     OperationType
	Status        OrderStatus
	RejectReason  *string
	Message       *string
	RequestedLots int64
	ExecutedLots  int64
	Commission    *MoneyAmount
}

var placedOrderSchema = wire.NewSchema("PlacedOrder",
	wire.F("order_id").Key("orderId"),
	wire.F("operation"),
	wire.F("status"),
	wire.F("reject_reason").Key("rejectReason").Opt(),
	wire.F("message").Opt(),
	wire.F("requested_lots").Key("requestedLots"),
	wire.F("executed_lots").Key("executedLots"),
	wire.F("commission").Opt(),
)

func (o *PlacedOrder) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(placedOrderSchema, data)
	if err != nil {
		return err
	}

	v := PlacedOrder{
		OrderID:       r.String("order_id"),
		Operation:     wire.ReadEnum(r, "operation", operationTypeTable),
		Status:        wire.ReadEnum(r, "status", orderStatusTable),
		RejectReason:  r.OptString("reject_reason"),
		Message:       r.OptString("message"),
		RequestedLots: r.Int64("requested_lots"),
		ExecutedLots:  r.Int64("executed_lots"),
		Commission:    wire.ReadOptObject[MoneyAmount](r, "commission"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*o = v
	return nil
}

func (o PlacedOrder) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(placedOrderSchema)
	w.String("order_id", o.OrderID)
	wire.WriteEnum(w, "operation", operationTypeTable, o.Operation)
	wire.WriteEnum(w, "status", orderStatusTable, o.Status)
	w.OptString("reject_reason", o.RejectReason)
	w.OptString("message", o.Message)
	w.Int64("requested_lots", o.RequestedLots)
	w.Int64("executed_lots", o.ExecutedLots)
	wire.WriteOptObject(w, "commission", o.Commission)
	return w.Bytes()
}

// LimitOrderRequest is the body of POST /orders/limit-order.
type LimitOrderRequest struct {
	Lots      int64
	Operation OperationType
	Price     decimal.Decimal
}

var limitOrderRequestSchema = wire.NewSchema("LimitOrderRequest",
	wire.F("lots"),
	wire.F("operation"),
	wire.F("price"),
)

func (o *LimitOrderRequest) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(limitOrderRequestSchema, data)
	if err != nil {
		return err
	}

	v := LimitOrderRequest{
		Lots:      r.Int64("lots"),
		Operation: wire.ReadEnum(r, "operation", operationTypeTable),
		Price:     r.Decimal("price"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*o = v
	return nil
}

func (o LimitOrderRequest) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(limitOrderRequestSchema)
	w.Int64("lots", o.Lots)
	wire.WriteEnum(w, "operation", operationTypeTable, o.Operation)
	w.Decimal("price", o.Price)
	return w.Bytes()
}

// MarketOrderRequest is the body of POST /orders/market-order.
type MarketOrderRequest struct {
	Lots      int64
	Operation OperationType
}

var marketOrderRequestSchema = wire.NewSchema("MarketOrderRequest",
	wire.F("lots"),
	wire.F("operation"),
)

func (o *MarketOrderRequest) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(marketOrderRequestSchema, data)
	if err != nil {
		return err
	}

	v := MarketOrderRequest{
		Lots:      r.Int64("lots"),
		Operation: wire.ReadEnum(r, "operation", operationTypeTable),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*o = v
	return nil
}

func (o MarketOrderRequest) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(marketOrderRequestSchema)
	w.Int64("lots", o.Lots)
	wire.WriteEnum(w, "operation", operationTypeTable, o.Operation)
	return w.Bytes()
}
