package restModel

import (
	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/shopspring/decimal"
)

// PortfolioPosition is a point-in-time holding. Balance may be fractional, Blocked is absent when
// nothing is locked as collateral. InstrumentType became optional after the broker started
// omitting it for some positions, see PortfolioPositionV1 for the earlier contract.
type PortfolioPosition struct {
	FIGI                      string
	Ticker                    *string
	ISIN                      *string
	InstrumentType            *InstrumentType
	Balance                   decimal.Decimal
	Blocked                   *decimal.Decimal
	ExpectedYield             *MoneyAmount
	Lots                      int64
	AveragePositionPrice      *MoneyAmount
	AveragePositionPriceNoNkd *MoneyAmount
	Name                      string
}

var portfolioPositionSchema = wire.NewSchema("PortfolioPosition",
	wire.F("figi"),
	wire.F("ticker").Opt(),
	wire.F("isin").Opt(),
	wire.F("instrument_type").Key("instrumentType").Opt(),
	wire.F("balance"),
	wire.F("blocked").Opt(),
	wire.F("expected_yield").Key("expectedYield").Opt(),
	wire.F("lots"),
	wire.F("average_position_price").Key("averagePositionPrice").Opt(),
	wire.F("average_position_price_no_nkd").Key("averagePositionPriceNoNkd").Opt(),
	wire.F("name"),
)

func (p *PortfolioPosition) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(portfolioPositionSchema, data)
	if err != nil {
		return err
	}

	v := PortfolioPosition{
		FIGI:                      r.String("figi"),
		Ticker:                    r.OptString("ticker"),
		ISIN:                      r.OptString("isin"),
		InstrumentType:            wire.ReadOptEnum(r, "instrument_type", instrumentTypeTable),
		Balance:                   r.Decimal("balance"),
		Blocked:                   r.OptDecimal("blocked"),
		ExpectedYield:             wire.ReadOptObject[MoneyAmount](r, "expected_yield"),
		Lots:                      r.Int64("lots"),
		AveragePositionPrice:      wire.ReadOptObject[MoneyAmount](r, "average_position_price"),
		AveragePositionPriceNoNkd: wire.ReadOptObject[MoneyAmount](r, "average_position_price_no_nkd"),
		Name:                      r.String("name"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p PortfolioPosition) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(portfolioPositionSchema)
	w.String("figi", p.FIGI)
	w.OptString("ticker", p.Ticker)
	w.OptString("isin", p.ISIN)
	wire.WriteOptEnum(w, "instrument_type", instrumentTypeTable, p.InstrumentType)
	w.Decimal("balance", p.Balance)
	w.OptDecimal("blocked", p.Blocked)
	wire.WriteOptObject(w, "expected_yield", p.ExpectedYield)
	w.Int64("lots", p.Lots)
	wire.WriteOptObject(w, "average_position_price", p.AveragePositionPrice)
	wire.WriteOptObject(w, "average_position_price_no_nkd", p.AveragePositionPriceNoNkd)
	w.String("name", p.Name)
	return w.Bytes()
}

// PortfolioPositionV1 is the first generation of the position contract, instrumentType mandatory.
type PortfolioPositionV1 struct {
	FIGI                      string
	Ticker                    *string
	ISIN                      *string
	InstrumentType            InstrumentType
	Balance                   decimal.Decimal
	Blocked                   *decimal.Decimal
	ExpectedYield             *MoneyAmount
	Lots                      int64
	AveragePositionPrice      *MoneyAmount
	AveragePositionPriceNoNkd *MoneyAmount
	Name                      string
}

var portfolioPositionV1Schema = portfolioPositionSchema.Derive("PortfolioPositionV1",
	wire.F("instrument_type").Key("instrumentType"),
)

func (p *PortfolioPositionV1) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(portfolioPositionV1Schema, data)
	if err != nil {
		return err
	}

	v := PortfolioPositionV1{
		FIGI:                      r.String("figi"),
		Ticker:                    r.OptString("ticker"),
		ISIN:                      r.OptString("isin"),
		InstrumentType:            wire.ReadEnum(r, "instrument_type", instrumentTypeTable),
		Balance:                   r.Decimal("balance"),
		Blocked:                   r.OptDecimal("blocked"),
		ExpectedYield:             wire.ReadOptObject[MoneyAmount](r, "expected_yield"),
		Lots:                      r.Int64("lots"),
		AveragePositionPrice:      wire.ReadOptObject[MoneyAmount](r, "average_position_price"),
		AveragePositionPriceNoNkd: wire.ReadOptObject[MoneyAmount](r, "average_position_price_no_nkd"),
		Name:                      r.String("name"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p PortfolioPositionV1) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(portfolioPositionV1Schema)
	w.String("figi", p.FIGI)
	w.OptString("ticker", p.Ticker)
	w.OptString("isin", p.ISIN)
	wire.WriteEnum(w, "instrument_type", instrumentTypeTable, p.InstrumentType)
	w.Decimal("balance", p.Balance)
	w.OptDecimal("blocked", p.Blocked)
	wire.WriteOptObject(w, "expected_yield", p.ExpectedYield)
	w.Int64("lots", p.Lots)
	wire.WriteOptObject(w, "average_position_price", p.AveragePositionPrice)
	wire.WriteOptObject(w, "average_position_price_no_nkd", p.AveragePositionPriceNoNkd)
	w.String("name", p.Name)
	return w.Bytes()
}

// PortfolioPayload is the current shape of GET /portfolio.
type PortfolioPayload struct {
	Positions []PortfolioPosition
}

var portfolioPayloadSchema = wire.NewSchema("PortfolioPayload",
	wire.F("positions"),
)

func (p *PortfolioPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(portfolioPayloadSchema, data)
	if err != nil {
		return err
	}

	v := PortfolioPayload{
		Positions: wire.ReadSlice[PortfolioPosition](r, "positions"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p PortfolioPayload) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(portfolioPayloadSchema)
	wire.WriteSlice(w, "positions", p.Positions)
	return w.Bytes()
}

type PortfolioPayloadV1 struct {
	Positions []PortfolioPositionV1
}

var portfolioPayloadV1Schema = portfolioPayloadSchema.Derive("PortfolioPayloadV1")

func (p *PortfolioPayloadV1) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(portfolioPayloadV1Schema, data)
	if err != nil {
		return err
	}

	v := PortfolioPayloadV1{
		Positions: wire.ReadSlice[PortfolioPositionV1](r, "positions"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p PortfolioPayloadV1) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(portfolioPayloadV1Schema)
	wire.WriteSlice(w, "positions", p.Positions)
	return w.Bytes()
}

// CurrencyPortfolioPosition is a cash balance in one currency.
type CurrencyPortfolioPosition struct {
	Currency Currency
	Balance  decimal.Decimal
	Blocked  *decimal.Decimal
}

var currencyPortfolioPositionSchema = wire.NewSchema("CurrencyPortfolioPosition",
	wire.F("currency"),
	wire.F("balance"),
	wire.F("blocked").Opt(),
)

func (p *CurrencyPortfolioPosition) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(currencyPortfolioPositionSchema, data)
	if err != nil {
		return err
	}

	v := CurrencyPortfolioPosition{
		Currency: wire.ReadEnum(r, "currency", currencyTable),
		Balance:  r.Decimal("balance"),
		Blocked:  r.OptDecimal("blocked"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p CurrencyPortfolioPosition) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(currencyPortfolioPositionSchema)
	wire.WriteEnum(w, "currency", currencyTable, p.Currency)
	w.Decimal("balance", p.Balance)
	w.OptDecimal("blocked", p.Blocked)
	return w.Bytes()
}

type CurrencyPortfolioPayload struct {
	Currencies []CurrencyPortfolioPosition
}

var currencyPortfolioPayloadSchema = wire.NewSchema("CurrencyPortfolioPayload",
	wire.F("currencies"),
)

func (p *CurrencyPortfolioPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(currencyPortfolioPayloadSchema, data)
	if err != nil {
		return err
	}

	v := CurrencyPortfolioPayload{
		Currencies: wire.ReadSlice[CurrencyPortfolioPosition](r, "currencies"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p CurrencyPortfolioPayload) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(currencyPortfolioPayloadSchema)
	wire.WriteSlice(w, "currencies", p.Currencies)
	return w.Bytes()
}
