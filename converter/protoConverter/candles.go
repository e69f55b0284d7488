package protoConverter

import (
	"fmt"
	"time"

	"github.com/KotFed0t/invest_contracts/model/restModel"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CandleInterval mirrors the marketdata.proto CandleInterval enum.
type CandleInterval int32

const (
	CandleIntervalUnspecified CandleInterval = 0
	CandleInterval1Min        CandleInterval = 1
	CandleInterval5Min        CandleInterval = 2
	CandleInterval15Min       CandleInterval = 3
	CandleIntervalHour        CandleInterval = 4
	CandleIntervalDay         CandleInterval = 5
)

var candleIntervalNames = map[CandleInterval]string{
	CandleIntervalUnspecified: "CANDLE_INTERVAL_UNSPECIFIED",
	CandleInterval1Min:        "CANDLE_INTERVAL_1_MIN",
	CandleInterval5Min:        "CANDLE_INTERVAL_5_MIN",
	CandleInterval15Min:       "CANDLE_INTERVAL_15_MIN",
	CandleIntervalHour:        "CANDLE_INTERVAL_HOUR",
	CandleIntervalDay:         "CANDLE_INTERVAL_DAY",
}

func (c CandleInterval) String() string {
	if name, ok := candleIntervalNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CandleInterval(%d)", int32(c))
}

func CandleIntervalFromName(name string) (CandleInterval, error) {
	for v, n := range candleIntervalNames {
		if n == name && v != CandleIntervalUnspecified {
			return v, nil
		}
	}
	return CandleIntervalUnspecified, fmt.Errorf("unknown candle interval: %q", name)
}

func ResolutionToInterval(res restModel.CandleResolution) (CandleInterval, error) {
	switch res {
	case restModel.CandleResolutionMin1:
		return CandleInterval1Min, nil
	case restModel.CandleResolutionMin5:
		return CandleInterval5Min, nil
	case restModel.CandleResolutionMin15:
		return CandleInterval15Min, nil
	case restModel.CandleResolutionHour:
		return CandleIntervalHour, nil
	case restModel.CandleResolutionDay:
		return CandleIntervalDay, nil
	default:
		return CandleIntervalUnspecified, fmt.Errorf("%w: %s", ErrUnsupportedCandle, res)
	}
}

func IntervalToResolution(interval CandleInterval) (restModel.CandleResolution, error) {
	switch interval {
	case CandleInterval1Min:
		return restModel.CandleResolutionMin1, nil
	case CandleInterval5Min:
		return restModel.CandleResolutionMin5, nil
	case CandleInterval15Min:
		return restModel.CandleResolutionMin15, nil
	case CandleIntervalHour:
		return restModel.CandleResolutionHour, nil
	case CandleIntervalDay:
		return restModel.CandleResolutionDay, nil
	}
	return 0, fmt.Errorf("unknown candle interval: %s", interval)
}

func TimeToTimestamp(t time.Time) *timestamppb.Timestamp {
	return timestamppb.New(t)
}

func TimestampToTime(ts *timestamppb.Timestamp) (time.Time, error) {
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	return ts.AsTime(), nil
}

// HistoricCandle mirrors marketdata.proto HistoricCandle.
type HistoricCandle struct {
	Open       Quotation
	High       Quotation
	Low        Quotation
	Close      Quotation
	Volume     int64
	Time       *timestamppb.Timestamp
	IsComplete bool
}

// HistoricCandleToCandlestick converts a v2 candle into the REST candlestick of the same instrument.
// Incomplete candles are converted as is.
func HistoricCandleToCandlestick(figi string, interval CandleInterval, hc HistoricCandle) (restModel.Candlestick, error) {
	res, err := IntervalToResolution(interval)
	if err != nil {
		return restModel.Candlestick{}, err
	}

	t, err := TimestampToTime(hc.Time)
	if err != nil {
		return restModel.Candlestick{}, err
	}

	c := restModel.Candlestick{FIGI: figi, Interval: res, Time: t, Volume: hc.Volume}

	prices := []struct {
		name string
		q    Quotation
		dst  *decimal.Decimal
	}{
		{"open", hc.Open, &c.Open},
		{"close", hc.Close, &c.Close},
		{"high", hc.High, &c.High},
		{"low", hc.Low, &c.Low},
	}
	for _, p := range prices {
		d, err := QuotationToDecimal(p.q)
		if err != nil {
			return restModel.Candlestick{}, fmt.Errorf("%s: %w", p.name, err)
		}
		*p.dst = d
	}

	return c, nil
}

func CandlestickToHistoricCandle(c restModel.Candlestick) (CandleInterval, HistoricCandle, error) {
	interval, err := ResolutionToInterval(c.Interval)
	if err != nil {
		return CandleIntervalUnspecified, HistoricCandle{}, err
	}

	hc := HistoricCandle{Volume: c.Volume, Time: TimeToTimestamp(c.Time), IsComplete: true}

	prices := []struct {
		name string
		d    decimal.Decimal
		dst  *Quotation
	}{
		{"open", c.Open, &hc.Open},
		{"close", c.Close, &hc.Close},
		{"high", c.High, &hc.High},
		{"low", c.Low, &hc.Low},
	}
	for _, p := range prices {
		q, err := DecimalToQuotation(p.d)
		if err != nil {
			return CandleIntervalUnspecified, HistoricCandle{}, fmt.Errorf("%s: %w", p.name, err)
		}
		*p.dst = q
	}

	return interval, hc, nil
}
