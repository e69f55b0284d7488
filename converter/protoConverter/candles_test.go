package protoConverter

import (
	"testing"
	"time"

	"github.com/KotFed0t/invest_contracts/model/restModel"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestResolutionToInterval(t *testing.T) {
	tests := []struct {
		res  restModel.CandleResolution
		want CandleInterval
		name string
	}{
		{restModel.CandleResolutionMin1, CandleInterval1Min, "CANDLE_INTERVAL_1_MIN"},
		{restModel.CandleResolutionMin5, CandleInterval5Min, "CANDLE_INTERVAL_5_MIN"},
		{restModel.CandleResolutionMin15, CandleInterval15Min, "CANDLE_INTERVAL_15_MIN"},
		{restModel.CandleResolutionHour, CandleIntervalHour, "CANDLE_INTERVAL_HOUR"},
		{restModel.CandleResolutionDay, CandleIntervalDay, "CANDLE_INTERVAL_DAY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolutionToInterval(tt.res)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())

			byName, err := CandleIntervalFromName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, byName)

			back, err := IntervalToResolution(got)
			require.NoError(t, err)
			assert.Equal(t, tt.res, back)
		})
	}
}

func TestUnsupportedResolutions(t *testing.T) {
	for _, res := range []restModel.CandleResolution{
		restModel.CandleResolutionMin2,
		restModel.CandleResolutionMin3,
		restModel.CandleResolutionMin10,
		restModel.CandleResolutionMin30,
		restModel.CandleResolutionWeek,
		restModel.CandleResolutionMonth,
		0,
	} {
		_, err := ResolutionToInterval(res)
		assert.ErrorIs(t, err, ErrUnsupportedCandle, res.String())
	}

	_, err := IntervalToResolution(CandleIntervalUnspecified)
	assert.Error(t, err)
	_, err = CandleIntervalFromName("CANDLE_INTERVAL_UNSPECIFIED")
	assert.Error(t, err)
	assert.Equal(t, "CandleInterval(42)", CandleInterval(42).String())
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 123, time.UTC)
	got, err := TimestampToTime(TimeToTimestamp(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))

	_, err = TimestampToTime(nil)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
	_, err = TimestampToTime(&timestamppb.Timestamp{Seconds: 1, Nanos: -1})
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestHistoricCandleRoundTrip(t *testing.T) {
	c := restModel.Candlestick{
		FIGI:     "BBG1",
		Interval: restModel.CandleResolutionHour,
		Time:     time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC),
		Open:     decimal.RequireFromString("100.0"),
		Close:    decimal.RequireFromString("101.5"),
		High:     decimal.RequireFromString("102.0"),
		Low:      decimal.RequireFromString("99.5"),
		Volume:   1500,
	}

	interval, hc, err := CandlestickToHistoricCandle(c)
	require.NoError(t, err)
	assert.Equal(t, CandleIntervalHour, interval)
	assert.Equal(t, Quotation{Units: 101, Nano: 500000000}, hc.Close)

	back, err := HistoricCandleToCandlestick("BBG1", interval, hc)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(c, back))
}

func TestHistoricCandleErrors(t *testing.T) {
	_, _, err := CandlestickToHistoricCandle(restModel.Candlestick{Interval: restModel.CandleResolutionWeek})
	assert.ErrorIs(t, err, ErrUnsupportedCandle)

	_, _, err = CandlestickToHistoricCandle(restModel.Candlestick{
		Interval: restModel.CandleResolutionDay,
		Low:      decimal.RequireFromString("0.0000000001"),
	})
	assert.ErrorIs(t, err, ErrPrecision)
	assert.Contains(t, err.Error(), "low")

	_, err = HistoricCandleToCandlestick("F", CandleIntervalDay, HistoricCandle{
		Time: timestamppb.New(time.Unix(0, 0)),
		High: Quotation{Units: -1, Nano: 5},
	})
	assert.ErrorIs(t, err, ErrInvalidNano)
	assert.Contains(t, err.Error(), "high")
}
