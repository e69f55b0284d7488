package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// PtrUnmarshaler is satisfied by *T when T decodes itself from a JSON value.
type PtrUnmarshaler[T any] interface {
	*T
	json.Unmarshaler
}

var nullLiteral = []byte("null")

// Reader decodes one JSON object according to a Schema.
// The first failure is kept and every later getter returns a zero value, so entity decoders
// read all fields in a row and check Err once.
type Reader struct {
	schema *Schema
	obj    map[string]json.RawMessage
	err    error
}

func NewReader(schema *Schema, data []byte) (*Reader, error) {
	if err := checkWellFormed(schema.entity, data); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if trimmed[0] != '{' {
		return nil, &SchemaViolationError{
			Entity: schema.entity,
			Token:  token(trimmed),
			Reason: "expected JSON object",
		}
	}

	obj := make(map[string]json.RawMessage)
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, &SchemaViolationError{
			Entity: schema.entity,
			Token:  token(trimmed),
			Reason: fmt.Sprintf("can't read object: %v", err),
		}
	}

	return &Reader{schema: schema, obj: obj}, nil
}

func checkWellFormed(entity string, data []byte) error {
	if !utf8.Valid(data) {
		return &MalformedInputError{Entity: entity, Offset: invalidUTF8Offset(data), Err: errors.New("invalid UTF-8")}
	}
	if json.Valid(data) {
		return nil
	}

	var v any
	err := json.Unmarshal(data, &v)

	var offset int64
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset = syntaxErr.Offset
	}
	if err == nil {
		err = errors.New("invalid JSON")
	}

	return &MalformedInputError{Entity: entity, Offset: offset, Err: err}
}

func invalidUTF8Offset(data []byte) int64 {
	for i := 0; i < len(data); {
		c, size := utf8.DecodeRune(data[i:])
		if c == utf8.RuneError && size == 1 {
			return int64(i)
		}
		i += size
	}
	return int64(len(data))
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(f Field, raw []byte, reason string) {
	if r.err == nil {
		r.err = violation(r.schema.entity, f, raw, reason)
	}
}

// lookup returns the raw value of a field. A missing key and an explicit null are both "absent".
func (r *Reader) lookup(name string, optional bool) (Field, json.RawMessage, bool) {
	f := r.schema.Field(name)
	if f.Optional != optional {
		panic(fmt.Sprintf("wire: %s.%s is declared with optional=%t", r.schema.entity, name, f.Optional))
	}
	if r.err != nil || f.ReadKey == "" {
		return f, nil, false
	}

	raw, ok := r.obj[f.ReadKey]
	if !ok || bytes.Equal(raw, nullLiteral) {
		if !optional {
			r.fail(f, nil, "mandatory field is missing")
		}
		return f, nil, false
	}

	return f, raw, true
}

func (r *Reader) String(name string) string {
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return ""
	}
	return r.readString(f, raw)
}

func (r *Reader) OptString(name string) *string {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	s := r.readString(f, raw)
	if r.err != nil {
		return nil
	}
	return &s
}

func (r *Reader) readString(f Field, raw json.RawMessage) string {
	if raw[0] != '"' {
		r.fail(f, raw, "expected string")
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		r.fail(f, raw, "expected string")
		return ""
	}
	return s
}

func (r *Reader) Int64(name string) int64 {
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return 0
	}
	return r.readInt64(f, raw)
}

func (r *Reader) OptInt64(name string) *int64 {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	v := r.readInt64(f, raw)
	if r.err != nil {
		return nil
	}
	return &v
}

func (r *Reader) readInt64(f Field, raw json.RawMessage) int64 {
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		r.fail(f, raw, "expected integer")
		return 0
	}
	return v
}

func (r *Reader) Decimal(name string) decimal.Decimal {
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return decimal.Decimal{}
	}
	return r.readDecimal(f, raw)
}

func (r *Reader) OptDecimal(name string) *decimal.Decimal {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	d := r.readDecimal(f, raw)
	if r.err != nil {
		return nil
	}
	return &d
}

// readDecimal keeps the literal digits of the JSON number, no float64 round trip.
func (r *Reader) readDecimal(f Field, raw json.RawMessage) decimal.Decimal {
	if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
		r.fail(f, raw, "expected number")
		return decimal.Decimal{}
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		r.fail(f, raw, "expected number")
		return decimal.Decimal{}
	}
	return d
}

func (r *Reader) Bool(name string) bool {
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return false
	}
	return r.readBool(f, raw)
}

func (r *Reader) OptBool(name string) *bool {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	v := r.readBool(f, raw)
	if r.err != nil {
		return nil
	}
	return &v
}

func (r *Reader) readBool(f Field, raw json.RawMessage) bool {
	switch string(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	r.fail(f, raw, "expected boolean")
	return false
}

func (r *Reader) Time(name string) time.Time {
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return time.Time{}
	}
	return r.readTime(f, raw)
}

func (r *Reader) OptTime(name string) *time.Time {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	t := r.readTime(f, raw)
	if r.err != nil {
		return nil
	}
	return &t
}

func (r *Reader) readTime(f Field, raw json.RawMessage) time.Time {
	s := r.readString(f, raw)
	if r.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		r.fail(f, raw, "expected RFC 3339 timestamp")
		return time.Time{}
	}
	return t
}

// Raw returns a mandatory field undecoded, for envelopes that defer decoding to the caller.
func (r *Reader) Raw(name string) json.RawMessage {
	_, raw, ok := r.lookup(name, false)
	if !ok {
		return nil
	}
	res := make(json.RawMessage, len(raw))
	copy(res, raw)
	return res
}

func (r *Reader) enumToken(f Field, raw json.RawMessage) (string, bool) {
	s := r.readString(f, raw)
	return s, r.err == nil
}

func (r *Reader) enumFail(f Field, raw json.RawMessage, enum string) {
	r.fail(f, raw, fmt.Sprintf("unknown %s token", enum))
}

func ReadEnum[T ~uint8](r *Reader, name string, table *EnumTable[T]) T {
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return 0
	}
	tok, ok := r.enumToken(f, raw)
	if !ok {
		return 0
	}
	v, err := table.Decode(tok)
	if err != nil {
		r.enumFail(f, raw, table.Name())
		return 0
	}
	return v
}

func ReadOptEnum[T ~uint8](r *Reader, name string, table *EnumTable[T]) *T {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	tok, ok := r.enumToken(f, raw)
	if !ok {
		return nil
	}
	v, err := table.Decode(tok)
	if err != nil {
		r.enumFail(f, raw, table.Name())
		return nil
	}
	return &v
}

func (r *Reader) nested(path string, err error) {
	if r.err == nil {
		r.err = WithPath(err, path)
	}
}

func ReadObject[T any, PT PtrUnmarshaler[T]](r *Reader, name string) T {
	var v T
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return v
	}
	if err := PT(&v).UnmarshalJSON(raw); err != nil {
		r.nested(f.ReadKey, err)
	}
	return v
}

func ReadOptObject[T any, PT PtrUnmarshaler[T]](r *Reader, name string) *T {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	var v T
	if err := PT(&v).UnmarshalJSON(raw); err != nil {
		r.nested(f.ReadKey, err)
		return nil
	}
	return &v
}

// ReadSlice decodes a mandatory list. An empty array yields nil, which encodes back to [].
func ReadSlice[T any, PT PtrUnmarshaler[T]](r *Reader, name string) []T {
	f, raw, ok := r.lookup(name, false)
	if !ok {
		return nil
	}
	res := readElems[T, PT](r, f, raw)
	if len(res) == 0 {
		return nil
	}
	return res
}

// ReadOptSlice distinguishes an absent list (nil) from an empty one.
func ReadOptSlice[T any, PT PtrUnmarshaler[T]](r *Reader, name string) []T {
	f, raw, ok := r.lookup(name, true)
	if !ok {
		return nil
	}
	return readElems[T, PT](r, f, raw)
}

func readElems[T any, PT PtrUnmarshaler[T]](r *Reader, f Field, raw json.RawMessage) []T {
	if raw[0] != '[' {
		r.fail(f, raw, "expected array")
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		r.fail(f, raw, "expected array")
		return nil
	}

	res := make([]T, len(items))
	for i, item := range items {
		if err := PT(&res[i]).UnmarshalJSON(item); err != nil {
			r.nested(fmt.Sprintf("%s[%d]", f.ReadKey, i), err)
			return nil
		}
	}
	return res
}

// DecodeList decodes a payload that is a bare JSON array of entities. An empty array yields nil.
func DecodeList[T any, PT PtrUnmarshaler[T]](entity string, data []byte) ([]T, error) {
	if err := checkWellFormed(entity, data); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if trimmed[0] != '[' {
		return nil, &SchemaViolationError{Entity: entity, Token: token(trimmed), Reason: "expected JSON array"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &SchemaViolationError{Entity: entity, Token: token(trimmed), Reason: "expected JSON array"}
	}

	if len(items) == 0 {
		return nil, nil
	}

	res := make([]T, len(items))
	for i, item := range items {
		if err := PT(&res[i]).UnmarshalJSON(item); err != nil {
			return nil, WithPath(err, fmt.Sprintf("[%d]", i))
		}
	}
	return res, nil
}
