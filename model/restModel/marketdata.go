package restModel

import (
	"time"

	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/shopspring/decimal"
)

// Candlestick is an OHLCV bar keyed by (FIGI, Interval, Time).
// OHLCV fields use single letter wire keys.
type Candlestick struct {
	FIGI     string
	Interval CandleResolution
	Time     time.Time
	Open     decimal.Decimal
	Close    decimal.Decimal
	High     decimal.Decimal
	Low      decimal.Decimal
	Volume   int64
}

var candlestickSchema = wire.NewSchema("Candlestick",
	wire.F("figi"),
	wire.F("interval"),
	wire.F("time"),
	wire.F("open").Key("o"),
	wire.F("close").Key("c"),
	wire.F("high").Key("h"),
	wire.F("low").Key("l"),
	wire.F("volume").Key("v"),
)

func (c *Candlestick) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(candlestickSchema, data)
	if err != nil {
		return err
	}

	v := Candlestick{
		FIGI:     r.String("figi"),
		Interval: wire.ReadEnum(r, "interval", candleResolutionTable),
		Time:     r.Time("time"),
		Open:     r.Decimal("open"),
		Close:    r.Decimal("close"),
		High:     r.Decimal("high"),
		Low:      r.Decimal("low"),
		Volume:   r.Int64("volume"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*c = v
	return nil
}

func (c Candlestick) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(candlestickSchema)
	w.String("figi", c.FIGI)
	wire.WriteEnum(w, "interval", candleResolutionTable, c.Interval)
	w.Time("time", c.Time)
	w.Decimal("open", c.Open)
	w.Decimal("close", c.Close)
	w.Decimal("high", c.High)
	w.Decimal("low", c.Low)
	w.Int64("volume", c.Volume)
	return w.Bytes()
}

// CandlesticksPayload is the answer of GET /market/candles. Spacing of consecutive candles
// is not validated.
type CandlesticksPayload struct {
	FIGI     string
	Interval CandleResolution
	Candles  []Candlestick
}

var candlesticksPayloadSchema = wire.NewSchema("CandlesticksPayload",
	wire.F("figi"),
	wire.F("interval"),
	wire.F("candles"),
)

func (p *CandlesticksPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(candlesticksPayloadSchema, data)
	if err != nil {
		return err
	}

	v := CandlesticksPayload{
		FIGI:     r.String("figi"),
		Interval: wire.ReadEnum(r, "interval", candleResolutionTable),
		Candles:  wire.ReadSlice[Candlestick](r, "candles"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p CandlesticksPayload) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(candlesticksPayloadSchema)
	w.String("figi", p.FIGI)
	wire.WriteEnum(w, "interval", candleResolutionTable, p.Interval)
	wire.WriteSlice(w, "candles", p.Candles)
	return w.Bytes()
}

// OrderResponse is one price level of an order book.
type OrderResponse struct {
	Price    decimal.Decimal
	Quantity int64
}

var orderResponseSchema = wire.NewSchema("OrderResponse",
	wire.F("price"),
	wire.F("quantity"),
)

func (o *OrderResponse) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(orderResponseSchema, data)
	if err != nil {
		return err
	}

	v := OrderResponse{
		Price:    r.Decimal("price"),
		Quantity: r.Int64("quantity"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*o = v
	return nil
}

func (o OrderResponse) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(orderResponseSchema)
	w.Decimal("price", o.Price)
	w.Int64("quantity", o.Quantity)
	return w.Bytes()
}

// Orderbook is a depth-limited snapshot. Bids and Asks keep the producer's order (best price first).
// Reference prices are absent for instrument classes that lack them, e.g. FaceValue for non-bonds.
type Orderbook struct {
	FIGI              string
	Depth             int64
	Bids              []OrderResponse
	Asks              []OrderResponse
	TradeStatus       TradeStatus
	MinPriceIncrement decimal.Decimal
	FaceValue         *decimal.Decimal
	LastPrice         *decimal.Decimal
	ClosePrice        *decimal.Decimal
	LimitUp           *decimal.Decimal
	LimitDown         *decimal.Decimal
}

var orderbookSchema = wire.NewSchema("Orderbook",
	wire.F("figi"),
	wire.F("depth"),
	wire.F("bids"),
	wire.F("asks"),
	wire.F("trade_status").Key("tradeStatus"),
	wire.F("min_price_increment").Key("minPriceIncrement"),
	wire.F("face_value").Key("faceValue").Opt(),
	wire.F("last_price").Key("lastPrice").Opt(),
	wire.F("close_price").Key("closePrice").Opt(),
	wire.F("limit_up").Key("limitUp").Opt(),
	wire.F("limit_down").Key("limitDown").Opt(),
)

func (o *Orderbook) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(orderbookSchema, data)
	if err != nil {
		return err
	}

	v := Orderbook{
		FIGI:              r.String("figi"),
		Depth:             r.Int64("depth"),
		Bids:              wire.ReadSlice[OrderResponse](r, "bids"),
		Asks:              wire.ReadSlice[OrderResponse](r, "asks"),
		TradeStatus:       wire.ReadEnum(r, "trade_status", tradeStatusTable),
		MinPriceIncrement: r.Decimal("min_price_increment"),
		FaceValue:         r.OptDecimal("face_value"),
		LastPrice:         r.OptDecimal("last_price"),
		ClosePrice:        r.OptDecimal("close_price"),
		LimitUp:           r.OptDecimal("limit_up"),
		LimitDown:         r.OptDecimal("limit_down"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*o = v
	return nil
}

func (o Orderbook) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(orderbookSchema)
	w.String("figi", o.FIGI)
	w.Int64("depth", o.Depth)
	wire.WriteSlice(w, "bids", o.Bids)
	wire.WriteSlice(w, "asks", o.Asks)
	wire.WriteEnum(w, "trade_status", tradeStatusTable, o.TradeStatus)
	w.Decimal("min_price_increment", o.MinPriceIncrement)
	w.OptDecimal("face_value", o.FaceValue)
	w.OptDecimal("last_price", o.LastPrice)
	w.OptDecimal("close_price", o.ClosePrice)
	w.OptDecimal("limit_up", o.LimitUp)
	w.OptDecimal("limit_down", o.LimitDown)
	return w.Bytes()
}
