package restModel

import (
	"encoding/json"
	"fmt"

	"github.com/KotFed0t/invest_contracts/model/wire"
)

// ErrorPayload is the payload paired with ResponseStatusError.
type ErrorPayload struct {
	Code    *string
	Message *string
}

var errorPayloadSchema = wire.NewSchema("ErrorPayload",
	wire.F("code").Opt(),
	wire.F("message").Opt(),
)

func (p *ErrorPayload) UnmarshalJSON(data []byte) error {
	r, err := wire.NewReader(errorPayloadSchema, data)
	if err != nil {
		return err
	}

	v := ErrorPayload{
		Code:    r.OptString("code"),
		Message: r.OptString("message"),
	}
	if err := r.Err(); err != nil {
		return err
	}

	*p = v
	return nil
}

func (p ErrorPayload) MarshalJSON() ([]byte, error) {
	w := wire.NewWriter(errorPayloadSchema)
	w.OptString("code", p.Code)
	w.OptString("message", p.Message)
	return w.Bytes()
}

// ResponseData is the envelope of every REST response, instantiated once per endpoint
// with the payload type the endpoint returns.
type ResponseData[P any] struct {
	TrackingID string
	Payload    P
	Status     ResponseStatus
}

var responseDataSchema = wire.NewSchema("ResponseData",
	wire.F("tracking_id").Key("trackingId"),
	wire.F("payload"),
	wire.F("status"),
)

func (d ResponseData[P]) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(d.Payload)
	if err != nil {
		return nil, wire.WithPath(err, "payload")
	}

	w := wire.NewWriter(responseDataSchema)
	w.String("tracking_id", d.TrackingID)
	w.Raw("payload", payload)
	wire.WriteEnum(w, "status", responseStatusTable, d.Status)
	return w.Bytes()
}

// Envelope is a validated response whose payload is not decoded yet.
type Envelope struct {
	TrackingID string
	Status     ResponseStatus
	Payload    json.RawMessage
}

// DecodeEnvelope validates trackingId, status and the presence of payload
// without looking at the payload shape.
func DecodeEnvelope(data []byte) (Envelope, error) {
	r, err := wire.NewReader(responseDataSchema, data)
	if err != nil {
		return Envelope{}, err
	}

	env := Envelope{
		TrackingID: r.String("tracking_id"),
		Payload:    r.Raw("payload"),
		Status:     wire.ReadEnum(r, "status", responseStatusTable),
	}
	if err := r.Err(); err != nil {
		return Envelope{}, err
	}

	return env, nil
}

func (e Envelope) Failed() bool {
	return e.Status == ResponseStatusError
}

// DecodePayload decodes the success payload of env as P. It refuses to touch the payload
// of a failed response, those carry an ErrorPayload.
func DecodePayload[P any, PT wire.PtrUnmarshaler[P]](env Envelope) (ResponseData[P], error) {
	if env.Status != ResponseStatusOk {
		return ResponseData[P]{}, fmt.Errorf("%w (trackingId %s)", ErrErrorStatus, env.TrackingID)
	}

	var p P
	if err := PT(&p).UnmarshalJSON(env.Payload); err != nil {
		return ResponseData[P]{}, wire.WithPath(err, "payload")
	}

	return ResponseData[P]{TrackingID: env.TrackingID, Payload: p, Status: env.Status}, nil
}

func DecodeErrorPayload(env Envelope) (ResponseData[ErrorPayload], error) {
	if env.Status != ResponseStatusError {
		return ResponseData[ErrorPayload]{}, fmt.Errorf("%w (trackingId %s)", ErrOkStatus, env.TrackingID)
	}

	var p ErrorPayload
	if err := p.UnmarshalJSON(env.Payload); err != nil {
		return ResponseData[ErrorPayload]{}, wire.WithPath(err, "payload")
	}

	return ResponseData[ErrorPayload]{TrackingID: env.TrackingID, Payload: p, Status: env.Status}, nil
}

// DecodeResponse decodes a successful response in one step.
func DecodeResponse[P any, PT wire.PtrUnmarshaler[P]](data []byte) (ResponseData[P], error) {
	env, err := DecodeEnvelope(data)
	if err != nil {
		return ResponseData[P]{}, err
	}
	return DecodePayload[P, PT](env)
}
