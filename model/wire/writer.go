package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Writer encodes one JSON object with the write keys of a Schema, in call order.
// Absent optional values are omitted so that decoding the output yields "absent" again.
type Writer struct {
	schema *Schema
	buf    bytes.Buffer
	n      int
	err    error
}

func NewWriter(schema *Schema) *Writer {
	w := &Writer{schema: schema}
	w.buf.WriteByte('{')
	return w
}

func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// key writes the separator and the write key of name, false means the field is not encoded.
func (w *Writer) key(name string) bool {
	f := w.schema.Field(name)
	if w.err != nil || f.WriteKey == "" {
		return false
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.n++
	w.writeString(f.WriteKey)
	w.buf.WriteByte(':')
	return true
}

// checkOpt guards against an entity encoding a mandatory field as optional.
func (w *Writer) checkOpt(name string) {
	if f := w.schema.Field(name); !f.Optional {
		panic(fmt.Sprintf("wire: %s.%s is mandatory", w.schema.entity, name))
	}
}

func (w *Writer) writeString(s string) {
	b, _ := json.Marshal(s)
	w.buf.Write(b)
}

func (w *Writer) String(name, v string) {
	if w.key(name) {
		w.writeString(v)
	}
}

func (w *Writer) OptString(name string, v *string) {
	w.checkOpt(name)
	if v != nil {
		w.String(name, *v)
	}
}

func (w *Writer) Int64(name string, v int64) {
	if w.key(name) {
		fmt.Fprintf(&w.buf, "%d", v)
	}
}

func (w *Writer) OptInt64(name string, v *int64) {
	w.checkOpt(name)
	if v != nil {
		w.Int64(name, *v)
	}
}

func (w *Writer) Decimal(name string, v decimal.Decimal) {
	if w.key(name) {
		w.buf.WriteString(v.String())
	}
}

func (w *Writer) OptDecimal(name string, v *decimal.Decimal) {
	w.checkOpt(name)
	if v != nil {
		w.Decimal(name, *v)
	}
}

func (w *Writer) Bool(name string, v bool) {
	if w.key(name) {
		fmt.Fprintf(&w.buf, "%t", v)
	}
}

func (w *Writer) OptBool(name string, v *bool) {
	w.checkOpt(name)
	if v != nil {
		w.Bool(name, *v)
	}
}

func (w *Writer) Time(name string, v time.Time) {
	if w.key(name) {
		w.writeString(v.Format(time.RFC3339Nano))
	}
}

func (w *Writer) OptTime(name string, v *time.Time) {
	w.checkOpt(name)
	if v != nil {
		w.Time(name, *v)
	}
}

// Raw writes an already encoded JSON value.
func (w *Writer) Raw(name string, v json.RawMessage) {
	if !json.Valid(v) {
		f := w.schema.Field(name)
		w.fail(&SchemaViolationError{Entity: w.schema.entity, Field: f.Name, Key: f.WriteKey, Token: token(v), Reason: "invalid raw JSON"})
		return
	}
	if w.key(name) {
		w.buf.Write(v)
	}
}

func WriteEnum[T ~uint8](w *Writer, name string, table *EnumTable[T], v T) {
	tok, err := table.Encode(v)
	if err != nil {
		f := w.schema.Field(name)
		w.fail(&SchemaViolationError{
			Entity: w.schema.entity,
			Field:  f.Name,
			Key:    f.WriteKey,
			Token:  fmt.Sprintf("%d", uint8(v)),
			Reason: fmt.Sprintf("value is not a %s variant", table.Name()),
		})
		return
	}
	w.String(name, tok)
}

func WriteOptEnum[T ~uint8](w *Writer, name string, table *EnumTable[T], v *T) {
	w.checkOpt(name)
	if v != nil {
		WriteEnum(w, name, table, *v)
	}
}

func WriteObject[T json.Marshaler](w *Writer, name string, v T) {
	b, err := v.MarshalJSON()
	if err != nil {
		w.fail(WithPath(err, w.schema.Field(name).WriteKey))
		return
	}
	if w.key(name) {
		w.buf.Write(b)
	}
}

func WriteOptObject[T json.Marshaler](w *Writer, name string, v *T) {
	w.checkOpt(name)
	if v != nil {
		WriteObject(w, name, *v)
	}
}

// WriteSlice always emits the key, a nil mandatory list is written as [].
func WriteSlice[T json.Marshaler](w *Writer, name string, v []T) {
	b, err := encodeElems(w.schema.Field(name).WriteKey, v)
	if err != nil {
		w.fail(err)
		return
	}
	if w.key(name) {
		w.buf.Write(b)
	}
}

func WriteOptSlice[T json.Marshaler](w *Writer, name string, v []T) {
	w.checkOpt(name)
	if v != nil {
		WriteSlice(w, name, v)
	}
}

// EncodeList encodes entities as a bare JSON array.
func EncodeList[T json.Marshaler](v []T) ([]byte, error) {
	return encodeElems("", v)
}

func encodeElems[T json.Marshaler](path string, v []T) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := item.MarshalJSON()
		if err != nil {
			return nil, WithPath(err, fmt.Sprintf("%s[%d]", path, i))
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
