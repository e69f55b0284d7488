package wire

import (
	"fmt"
	"strconv"
)

type EnumPair[T ~uint8] struct {
	Value T
	Token string
}

func Pair[T ~uint8](v T, token string) EnumPair[T] {
	return EnumPair[T]{Value: v, Token: token}
}

// EnumTable is an explicit bidirectional mapping between the variants of a closed enum and their
// wire tokens. Tokens are matched case-sensitively and there is no fallback variant.
// Variants are small integers so that the zero value stays an "unset" marker without a token.
type EnumTable[T ~uint8] struct {
	name    string
	values  []T
	tokens  map[T]string
	byToken map[string]T
}

func NewEnumTable[T ~uint8](name string, pairs ...EnumPair[T]) *EnumTable[T] {
	t := &EnumTable[T]{
		name:    name,
		values:  make([]T, 0, len(pairs)),
		tokens:  make(map[T]string, len(pairs)),
		byToken: make(map[string]T, len(pairs)),
	}

	for _, p := range pairs {
		if p.Value == 0 {
			panic(fmt.Sprintf("wire: enum %s: zero value is reserved for unset", name))
		}
		if p.Token == "" {
			panic(fmt.Sprintf("wire: enum %s: empty token for %d", name, uint8(p.Value)))
		}
		if _, ok := t.tokens[p.Value]; ok {
			panic(fmt.Sprintf("wire: enum %s: duplicate variant %d", name, uint8(p.Value)))
		}
		if _, ok := t.byToken[p.Token]; ok {
			panic(fmt.Sprintf("wire: enum %s: duplicate token %q", name, p.Token))
		}
		t.values = append(t.values, p.Value)
		t.tokens[p.Value] = p.Token
		t.byToken[p.Token] = p.Value
	}

	return t
}

func (t *EnumTable[T]) Name() string {
	return t.name
}

// Decode maps a wire token to its variant.
func (t *EnumTable[T]) Decode(token string) (T, error) {
	v, ok := t.byToken[token]
	if !ok {
		var zero T
		return zero, &SchemaViolationError{
			Entity: t.name,
			Token:  strconv.Quote(token),
			Reason: "unknown enum token",
		}
	}
	return v, nil
}

// Encode returns the exact wire token of v.
func (t *EnumTable[T]) Encode(v T) (string, error) {
	tok, ok := t.tokens[v]
	if !ok {
		return "", &SchemaViolationError{
			Entity: t.name,
			Token:  strconv.Itoa(int(v)),
			Reason: "value has no wire token",
		}
	}
	return tok, nil
}

// String is Encode for printing, unknown values are rendered as Name(value).
func (t *EnumTable[T]) String(v T) string {
	tok, ok := t.tokens[v]
	if !ok {
		return fmt.Sprintf("%s(%d)", t.name, uint8(v))
	}
	return tok
}

func (t *EnumTable[T]) MarshalText(v T) ([]byte, error) {
	tok, err := t.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(tok), nil
}

func (t *EnumTable[T]) UnmarshalText(dst *T, text []byte) error {
	v, err := t.Decode(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Values lists the variants in declaration order.
func (t *EnumTable[T]) Values() []T {
	res := make([]T, len(t.values))
	copy(res, t.values)
	return res
}

func (t *EnumTable[T]) Tokens() []string {
	res := make([]string, 0, len(t.values))
	for _, v := range t.values {
		res = append(res, t.tokens[v])
	}
	return res
}
