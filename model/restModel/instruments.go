package restModel

import (
	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/shopspring/decimal"
)

// MarketInstrument identifies a tradable instrument.
// MinPriceIncrement is absent for instruments without a defined tick size.
type MarketInstrument struct {
	FIGI              string
	Ticker            string
	ISIN              *string
	MinPriceIncrement *decimal.Decimal
	Lot               int64
	MinQuantity       *int64
	Currency          *Currency
	Name              string
	Type              InstrumentType
}

var marketInstrumentSchema = wire.NewSchema("MarketInstrument",
	wire.F("figi"),
	wire.F("ticker"),
	wire.F("isin").Opt(),
	wire.F("min_price_increment").Key("minPriceIncrement").Opt(),
	wire.F("lot"),
	wire.F("min_quantity").Key("minQuantity").Opt(),
	wire.F("currency").Opt(),
	wire.F("name"),
	wire.F("type"),
)

func (i *MarketInstrument) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(marketInstrumentSchema, data)
	if err != nil {
		return err
	}

	v := MarketInstrument{
		FIGI:              r.String("figi"),
		Ticker:            r.String("ticker"),
		ISIN:              r.OptString("isin"),
		MinPriceIncrement: r.OptDecimal("min_price_increment"),
		Lot:               r.Int64("lot"),
		MinQuantity:       r.OptInt64("min_quantity"),
		Currency:          wire.ReadOptEnum(r, "currency", currencyTable),
		Name:              r.String("name"),
		Type:              wire.ReadEnum(r, "type", instrumentTypeTable),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*i = v
	return nil
}

func (i MarketInstrument) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(marketInstrumentSchema)
	w.String("figi", i.FIGI)
	w.String("ticker", i.Ticker)
	w.OptString("isin", i.ISIN)
	w.OptDecimal("min_price_increment", i.MinPriceIncrement)
	w.Int64("lot", i.Lot)
	w.OptInt64("min_quantity", i.MinQuantity)
	wire.WriteOptEnum(w, "currency", currencyTable, i.Currency)
	w.String("name", i.Name)
	wire.WriteEnum(w, "type", instrumentTypeTable, i.Type)
	return w.Bytes()
}

// MarketInstrumentsPayload is returned by the market/stocks, bonds, etfs, currencies and search endpoints.
type MarketInstrumentsPayload struct {
	Total       int64
	Instruments []MarketInstrument
}

var marketInstrumentsPayloadSchema = wire.NewSchema("MarketInstrumentsPayload",
	wire.F("total"),
	wire.F("instruments"),
)

func (p *MarketInstrumentsPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(marketInstrumentsPayloadSchema, data)
	if err != nil {
		return err
	}

	v := MarketInstrumentsPayload{
		Total:       r.Int64("total"),
		Instruments: wire.ReadSlice[MarketInstrument](r, "instruments"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p MarketInstrumentsPayload) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(marketInstrumentsPayloadSchema)
	w.Int64("total", p.Total)
	wire.WriteSlice(w, "instruments", p.Instruments)
	return w.Bytes()
}
