package restModel

import (
	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/shopspring/decimal"
)

// EmptyPayload is the payload of endpoints that answer with {}. Unknown keys are ignored.
type EmptyPayload struct{}

var emptyPayloadSchema = wire.NewSchema("EmptyPayload")

func (p *EmptyPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(emptyPayloadSchema, data)
	if err != nil {
		return err
	}
	return r.Err()
}

func (p EmptyPayload) MarshalJSON() ([]byte, error) {
	return wire.NewWriter(emptyPayloadSchema).Bytes()
}

type SandboxAccount struct {
	BrokerAccountType BrokerAccountType
	BrokerAccountID   string
}

var sandboxAccountSchema = wire.NewSchema("SandboxAccount",
	wire.F("broker_account_type").Key("brokerAccountType"),
	wire.F("broker_account_id").Key("brokerAccountId"),
)

func (a *SandboxAccount) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(sandboxAccountSchema, data)
	if err != nil {
		return err
	}

	v := SandboxAccount{
		BrokerAccountType: wire.ReadEnum(r, "broker_account_type", brokerAccountTypeTable),
		BrokerAccountID:   r.String("broker_account_id"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*a = v
	return nil
}

func (a SandboxAccount) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(sandboxAccountSchema)
	wire.WriteEnum(w, "broker_account_type", brokerAccountTypeTable, a.BrokerAccountType)
	w.String("broker_account_id", a.BrokerAccountID)
	return w.Bytes()
}

// SandboxRegisterRequest is the body of POST /sandbox/register, the broker defaults the type to Tinkoff.
type SandboxRegisterRequest struct {
	BrokerAccountType *BrokerAccountType
}

var sandboxRegisterRequestSchema = wire.NewSchema("SandboxRegisterRequest",
	wire.F("broker_account_type").Key("brokerAccountType").Opt(),
)

func (q *SandboxRegisterRequest) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(sandboxRegisterRequestSchema, data)
	if err != nil {
		return err
	}

	v := SandboxRegisterRequest{
		BrokerAccountType: wire.ReadOptEnum(r, "broker_account_type", brokerAccountTypeTable),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*q = v
	return nil
}

func (q SandboxRegisterRequest) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(sandboxRegisterRequestSchema)
	wire.WriteOptEnum(w, "broker_account_type", brokerAccountTypeTable, q.BrokerAccountType)
	return w.Bytes()
}

type SandboxSetCurrencyBalanceRequest struct {
	Currency Currency
	Balance  decimal.Decimal
}

var sandboxSetCurrencyBalanceRequestSchema = wire.NewSchema("SandboxSetCurrencyBalanceRequest",
	wire.F("currency"),
	wire.F("balance"),
)

func (q *SandboxSetCurrencyBalanceRequest) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(sandboxSetCurrencyBalanceRequestSchema, data)
	if err != nil {
		return err
	}

	v := SandboxSetCurrencyBalanceRequest{
		Currency: wire.ReadEnum(r, "currency", currencyTable),
		Balance:  r.Decimal("balance"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*q = v
	return nil
}

func (q SandboxSetCurrencyBalanceRequest) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(sandboxSetCurrencyBalanceRequestSchema)
	wire.WriteEnum(w, "currency", currencyTable, q.Currency)
	w.Decimal("balance", q.Balance)
	return w.Bytes()
}

type SandboxSetPositionBalanceRequest struct {
	FIGI    *string
	Balance decimal.Decimal
}

var sandboxSetPositionBalanceRequestSchema = wire.NewSchema("SandboxSetPositionBalanceRequest",
	wire.F("figi").Opt(),
	wire.F("balance"),
)

func (q *SandboxSetPositionBalanceRequest) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(sandboxSetPositionBalanceRequestSchema, data)
	if err != nil {
		return err
	}

	v := SandboxSetPositionBalanceRequest{
		FIGI:    r.OptString("figi"),
		Balance: r.Decimal("balance"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*q = v
	return nil
}

func (q SandboxSetPositionBalanceRequest) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(sandboxSetPositionBalanceRequestSchema)
	w.OptString("figi", q.FIGI)
	w.Decimal("balance", q.Balance)
	return w.Bytes()
}
