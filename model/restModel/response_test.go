package restModel

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/KotFed0t/invest_contracts/model/wire"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	data := []byte(`{"trackingId": "a1b2", "status": "Ok", "payload": {"positions": [
		{"figi": "BBG1", "instrumentType": "Etf", "balance": 3, "lots": 3, "name": "FXUS"}]}}`)

	resp, err := DecodeResponse[PortfolioPayload](data)
	require.NoError(t, err)

	etf := InstrumentTypeEtf
	expected := ResponseData[PortfolioPayload]{
		TrackingID: "a1b2",
		Status:     ResponseStatusOk,
		Payload: PortfolioPayload{Positions: []PortfolioPosition{
			{FIGI: "BBG1", InstrumentType: &etf, Balance: decimal.NewFromInt(3), Lots: 3, Name: "FXUS"},
		}},
	}
	assert.Empty(t, cmp.Diff(expected, resp))
}

func TestErrorEnvelope(t *testing.T) {
	data := []byte(`{"trackingId":"t","status":"Error","payload":{"message":"m","code":"c"}}`)

	env, err := DecodeEnvelope(data)
	require.NoError(t, err)
	assert.True(t, env.Failed())

	_, err = DecodePayload[PortfolioPayload](env)
	require.ErrorIs(t, err, ErrErrorStatus)
	assert.Contains(t, err.Error(), "trackingId t")

	resp, err := DecodeErrorPayload(env)
	require.NoError(t, err)
	require.NotNil(t, resp.Payload.Code)
	require.NotNil(t, resp.Payload.Message)
	assert.Equal(t, "c", *resp.Payload.Code)
	assert.Equal(t, "m", *resp.Payload.Message)
	assert.Equal(t, "t", resp.TrackingID)
	assert.Equal(t, ResponseStatusError, resp.Status)
}

func TestDecodeErrorPayloadOfOkResponse(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"trackingId":"t","status":"Ok","payload":{}}`))
	require.NoError(t, err)
	assert.False(t, env.Failed())

	_, err = DecodeErrorPayload(env)
	assert.ErrorIs(t, err, ErrOkStatus)
}

func TestEnvelopeViolations(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		field  string
		reason string
	}{
		{
			name:   "missing tracking id",
			data:   `{"status":"Ok","payload":{}}`,
			field:  "tracking_id",
			reason: "mandatory field is missing",
		},
		{
			name:   "missing payload",
			data:   `{"trackingId":"t","status":"Ok"}`,
			field:  "payload",
			reason: "mandatory field is missing",
		},
		{
			name:   "null payload",
			data:   `{"trackingId":"t","status":"Ok","payload":null}`,
			field:  "payload",
			reason: "mandatory field is missing",
		},
		{
			name:   "unknown status",
			data:   `{"trackingId":"t","status":"Pending","payload":{}}`,
			field:  "status",
			reason: "unknown ResponseStatus token",
		},
		{
			name:   "numeric tracking id",
			data:   `{"trackingId":42,"status":"Ok","payload":{}}`,
			field:  "tracking_id",
			reason: "expected string",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEnvelope([]byte(tt.data))
			require.ErrorIs(t, err, wire.ErrSchemaViolation)

			var sv *wire.SchemaViolationError
			require.True(t, errors.As(err, &sv))
			assert.Equal(t, "ResponseData", sv.Entity)
			assert.Equal(t, tt.field, sv.Field)
			assert.Equal(t, tt.reason, sv.Reason)
		})
	}
}

func TestPayloadViolationPath(t *testing.T) {
	data := []byte(`{"trackingId":"t","status":"Ok","payload":{"positions":[{"figi":"F","balance":"1","lots":1,"name":"n"}]}}`)

	_, err := DecodeResponse[PortfolioPayload](data)
	require.ErrorIs(t, err, wire.ErrSchemaViolation)

	var sv *wire.SchemaViolationError
	require.True(t, errors.As(err, &sv))
	assert.Equal(t, "PortfolioPosition", sv.Entity)
	assert.Equal(t, "balance", sv.Field)
	assert.Equal(t, "payload.positions[0]", sv.Path)
	assert.Equal(t, `"1"`, sv.Token)
	assert.Equal(t, `schema violation: PortfolioPosition.balance at payload.positions[0]: expected number, got "1"`, err.Error())
}

func TestResponseDataMarshal(t *testing.T) {
	resp := ResponseData[Orders]{
		TrackingID: "x",
		Status:     ResponseStatusOk,
		Payload: Orders{
			{OrderID: "1", FIGI: "F", Operation: OperationTypeBuy, Status: OrderStatusNew, RequestedLots: 1,
				Type: OrderTypeLimit, Price: decimal.RequireFromString("10.50")},
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"trackingId":"x","status":"Ok","payload":[{"orderId":"1","figi":"F","operation":"Buy",
		"status":"New","requestedLots":1,"executedLots":0,"type":"Limit","price":10.5}]}`, string(data))

	again, err := DecodeResponse[Orders](data)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(resp, again))
}

func TestResponseDataMarshalBadPayload(t *testing.T) {
	resp := ResponseData[MoneyAmount]{TrackingID: "x", Status: ResponseStatusOk, Payload: MoneyAmount{}}

	_, err := json.Marshal(resp)
	require.ErrorIs(t, err, wire.ErrSchemaViolation)

	var sv *wire.SchemaViolationError
	require.True(t, errors.As(err, &sv))
	assert.Equal(t, "MoneyAmount", sv.Entity)
	assert.Equal(t, "payload", sv.Path)
}
