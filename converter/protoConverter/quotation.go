package protoConverter

import (
	"fmt"
	"strings"

	"github.com/KotFed0t/invest_contracts/model/restModel"
	"github.com/shopspring/decimal"
)

const nanoExp = 9

var nanoFactor = decimal.New(1, nanoExp)

// Quotation mirrors common.proto Quotation: value = units + nano * 1e-9.
// Units and Nano carry the same sign.
type Quotation struct {
	Units int64
	Nano  int32
}

// MoneyValue mirrors common.proto MoneyValue. Currency is the lower-case ISO code used by the v2 api.
type MoneyValue struct {
	Currency string
	Units    int64
	Nano     int32
}

func DecimalToQuotation(d decimal.Decimal) (Quotation, error) {
	units, nano, err := split(d)
	if err != nil {
		return Quotation{}, err
	}
	return Quotation{Units: units, Nano: nano}, nil
}

func QuotationToDecimal(q Quotation) (decimal.Decimal, error) {
	return join(q.Units, q.Nano)
}

func MoneyAmountToMoneyValue(m restModel.MoneyAmount) (MoneyValue, error) {
	cur, err := m.Currency.MarshalText()
	if err != nil {
		return MoneyValue{}, err
	}

	units, nano, err := split(m.Value)
	if err != nil {
		return MoneyValue{}, fmt.Errorf("%s amount: %w", cur, err)
	}

	return MoneyValue{Currency: strings.ToLower(string(cur)), Units: units, Nano: nano}, nil
}

func MoneyValueToMoneyAmount(m MoneyValue) (restModel.MoneyAmount, error) {
	var cur restModel.Currency
	if err := cur.UnmarshalText([]byte(strings.ToUpper(m.Currency))); err != nil {
		return restModel.MoneyAmount{}, err
	}

	value, err := join(m.Units, m.Nano)
	if err != nil {
		return restModel.MoneyAmount{}, fmt.Errorf("%s amount: %w", m.Currency, err)
	}

	return restModel.MoneyAmount{Currency: cur, Value: value}, nil
}

// split truncates toward zero, so the fractional part keeps the sign of d.
func split(d decimal.Decimal) (int64, int32, error) {
	intPart := d.Truncate(0)
	if !intPart.BigInt().IsInt64() {
		return 0, 0, fmt.Errorf("%w: %s", ErrOverflow, d)
	}

	frac := d.Sub(intPart).Mul(nanoFactor)
	if !frac.Equal(frac.Truncate(0)) {
		return 0, 0, fmt.Errorf("%w: %s", ErrPrecision, d)
	}

	return intPart.IntPart(), int32(frac.IntPart()), nil
}

func join(units int64, nano int32) (decimal.Decimal, error) {
	if nano <= -1e9 || nano >= 1e9 {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrInvalidNano, nano)
	}
	if (units > 0 && nano < 0) || (units < 0 && nano > 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: units %d and nano %d have different signs", ErrInvalidNano, units, nano)
	}
	return decimal.New(units, 0).Add(decimal.New(int64(nano), -nanoExp)), nil
}
