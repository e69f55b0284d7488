package restModel

import "github.com/KotFed0t/invest_contracts/model/wire"

// The accounts payload went through three shapes. Each one is kept as its own contract,
// the caller picks the version matching the endpoint it talks to.

type UserAccount struct {
	BrokerAccountID   string
	BrokerAccountType BrokerAccountType
}

var userAccountSchema = wire.NewSchema("UserAccount",
	wire.F("broker_account_id").Key("brokerAccountId"),
	wire.F("broker_account_type").Key("brokerAccountType"),
)

func (a *UserAccount) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(userAccountSchema, data)
	if err != nil {
		return err
	}

	v := UserAccount{
		BrokerAccountID:   r.String("broker_account_id"),
		BrokerAccountType: wire.ReadEnum(r, "broker_account_type", brokerAccountTypeTable),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*a = v
	return nil
}

func (a UserAccount) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(userAccountSchema)
	w.String("broker_account_id", a.BrokerAccountID)
	wire.WriteEnum(w, "broker_account_type", brokerAccountTypeTable, a.BrokerAccountType)
	return w.Bytes()
}

// UserAccountsPayload is the current shape of GET /user/accounts.
type UserAccountsPayload struct {
	Accounts []UserAccount
}

var userAccountsPayloadSchema = wire.NewSchema("UserAccountsPayload",
	wire.F("accounts"),
)

func (p *UserAccountsPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(userAccountsPayloadSchema, data)
	if err != nil {
		return err
	}

	v := UserAccountsPayload{
		Accounts: wire.ReadSlice[UserAccount](r, "accounts"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p UserAccountsPayload) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(userAccountsPayloadSchema)
	wire.WriteSlice(w, "accounts", p.Accounts)
	return w.Bytes()
}

// UserAccountV1 is the earliest account shape: the broker returned identifiers only.
type UserAccountV1 struct {
	BrokerAccountID string
}

var userAccountV1Schema = wire.NewSchema("UserAccountV1",
	wire.F("broker_account_id").Key("brokerAccountId"),
)

func (a *UserAccountV1) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(userAccountV1Schema, data)
	if err != nil {
		return err
	}

	v := UserAccountV1{
		BrokerAccountID: r.String("broker_account_id"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*a = v
	return nil
}

func (a UserAccountV1) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(userAccountV1Schema)
	w.String("broker_account_id", a.BrokerAccountID)
	return w.Bytes()
}

type UserAccountsPayloadV1 struct {
	Accounts []UserAccountV1
}

var userAccountsPayloadV1Schema = userAccountsPayloadSchema.Derive("UserAccountsPayloadV1")

func (p *UserAccountsPayloadV1) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(userAccountsPayloadV1Schema, data)
	if err != nil {
		return err
	}

	v := UserAccountsPayloadV1{
		Accounts: wire.ReadSlice[UserAccountV1](r, "accounts"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p UserAccountsPayloadV1) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(userAccountsPayloadV1Schema)
	wire.WriteSlice(w, "accounts", p.Accounts)
	return w.Bytes()
}

// UserAccountV2 added the account type, not yet returned for every account.
type UserAccountV2 struct {
	BrokerAccountID   string
	BrokerAccountType *BrokerAccountType
}

var userAccountV2Schema = userAccountSchema.Derive("UserAccountV2",
	wire.F("broker_account_type").Key("brokerAccountType").Opt(),
)

func (a *UserAccountV2) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(userAccountV2Schema, data)
	if err != nil {
		return err
	}

	v := UserAccountV2{
		BrokerAccountID:   r.String("broker_account_id"),
		BrokerAccountType: wire.ReadOptEnum(r, "broker_account_type", brokerAccountTypeTable),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*a = v
	return nil
}

func (a UserAccountV2) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(userAccountV2Schema)
	w.String("broker_account_id", a.BrokerAccountID)
	wire.WriteOptEnum(w, "broker_account_type", brokerAccountTypeTable, a.BrokerAccountType)
	return w.Bytes()
}

type UserAccountsPayloadV2 struct {
	Accounts []UserAccountV2
}

var userAccountsPayloadV2Schema = userAccountsPayloadSchema.Derive("UserAccountsPayloadV2")

func (p *UserAccountsPayloadV2) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(userAccountsPayloadV2Schema, data)
	if err != nil {
		return err
	}

	v := UserAccountsPayloadV2{
		Accounts: wire.ReadSlice[UserAccountV2](r, "accounts"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p UserAccountsPayloadV2) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(userAccountsPayloadV2Schema)
	wire.WriteSlice(w, "accounts", p.Accounts)
	return w.Bytes()
}
