package restModel

import (
	"errors"
	"testing"

	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContractKey(t *testing.T) {
	tests := []struct {
		in       string
		expected ContractKey
		wantErr  bool
	}{
		{in: "portfolio@v1", expected: ContractKey{Endpoint: "portfolio", Version: 1}},
		{in: "portfolio", expected: ContractKey{Endpoint: "portfolio", Version: 2}},
		{in: "user/accounts", expected: ContractKey{Endpoint: "user/accounts", Version: 3}},
		{in: "orders@v7", expected: ContractKey{Endpoint: "orders", Version: 7}},
		{in: "orders@7", wantErr: true},
		{in: "orders@vx", wantErr: true},
		{in: "@v1", wantErr: true},
		{in: "nowhere", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, err := ParseContractKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownContract)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestContractKeyString(t *testing.T) {
	assert.Equal(t, "market/candles@v1", ContractKey{Endpoint: "market/candles", Version: 1}.String())
}

func TestUnknownContract(t *testing.T) {
	_, err := Contract(ContractKey{Endpoint: "orders", Version: 7})
	assert.ErrorIs(t, err, ErrUnknownContract)
}

func TestPortfolioVersionsAreSelectedExplicitly(t *testing.T) {
	data := []byte(`{"trackingId":"t","status":"Ok","payload":{"positions":[{"figi":"F","balance":1,"lots":1,"name":"n"}]}}`)

	v1, err := Contract(ContractKey{Endpoint: "portfolio", Version: 1})
	require.NoError(t, err)
	_, err = v1(data)
	require.ErrorIs(t, err, wire.ErrSchemaViolation)
	var sv *wire.SchemaViolationError
	require.True(t, errors.As(err, &sv))
	assert.Equal(t, "payload.positions[0]", sv.Path)
	assert.Equal(t, "instrument_type", sv.Field)

	v2, err := Contract(ContractKey{Endpoint: "portfolio", Version: 2})
	require.NoError(t, err)
	res, err := v2(data)
	require.NoError(t, err)
	resp, ok := res.(ResponseData[PortfolioPayload])
	require.True(t, ok)
	assert.Len(t, resp.Payload.Positions, 1)
}

func TestContractDecodesErrorEnvelope(t *testing.T) {
	fn, err := Contract(ContractKey{Endpoint: "orders/limit-order", Version: 1})
	require.NoError(t, err)

	res, err := fn([]byte(`{"trackingId":"t","status":"Error","payload":{"message":"[lots]: Invalid value"}}`))
	require.NoError(t, err)
	resp, ok := res.(ResponseData[ErrorPayload])
	require.True(t, ok)
	assert.Nil(t, resp.Payload.Code)
	require.NotNil(t, resp.Payload.Message)
	assert.Equal(t, "[lots]: Invalid value", *resp.Payload.Message)
}

func TestContractsAreSorted(t *testing.T) {
	keys := Contracts()
	require.NotEmpty(t, keys)
	assert.Len(t, keys, len(contracts))
	for i := 1; i < len(keys); i++ {
		prev, cur := keys[i-1], keys[i]
		assert.True(t, prev.Endpoint < cur.Endpoint || (prev.Endpoint == cur.Endpoint && prev.Version < cur.Version),
			"%s before %s", prev, cur)
	}
	assert.Contains(t, keys, ContractKey{Endpoint: "user/accounts", Version: 1})
}

func TestEveryContractAcceptsErrorEnvelope(t *testing.T) {
	for _, key := range Contracts() {
		t.Run(key.String(), func(t *testing.T) {
			fn, err := Contract(key)
			require.NoError(t, err)
			res, err := fn([]byte(`{"trackingId":"t","status":"Error","payload":{}}`))
			require.NoError(t, err)
			assert.IsType(t, ResponseData[ErrorPayload]{}, res)
		})
	}
}
