package restModel

import (
	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/shopspring/decimal"
)

// MoneyAmount is a signed amount in a currency. Currency is mandatory even for zero values.
type MoneyAmount struct {
	Currency Currency
	Value    decimal.Decimal
}

var moneyAmountSchema = wire.NewSchema("MoneyAmount",
	wire.F("currency"),
	wire.F("value"),
)

func (m *MoneyAmount) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(moneyAmountSchema, data)
	if err != nil {
		return err
	}

	v := MoneyAmount{
		Currency: wire.ReadEnum(r, "currency", currencyTable),
		Value:    r.Decimal("value"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*m = v
	return nil
}

func (m MoneyAmount) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(moneyAmountSchema)
	wire.WriteEnum(w, "currency", currencyTable, m.Currency)
	w.Decimal("value", m.Value)
	return w.Bytes()
}
