package wire

import "fmt"

// Field describes how one entity field is named on the wire.
// An empty ReadKey means the field is never decoded, an empty WriteKey means it is never encoded.
type Field struct {
	Name     string
	ReadKey  string
	WriteKey string
	Optional bool
}

// F declares a mandatory field whose wire keys equal its identifier.
func F(name string) Field {
	return Field{Name: name, ReadKey: name, WriteKey: name}
}

// Key sets the same wire key for both directions.
func (f Field) Key(key string) Field {
	f.ReadKey, f.WriteKey = key, key
	return f
}

// Keys sets independent read and write keys.
func (f Field) Keys(read, write string) Field {
	f.ReadKey, f.WriteKey = read, write
	return f
}

func (f Field) ReadOnly(key string) Field {
	f.ReadKey, f.WriteKey = key, ""
	return f
}

func (f Field) WriteOnly(key string) Field {
	f.ReadKey, f.WriteKey = "", key
	return f
}

func (f Field) Opt() Field {
	f.Optional = true
	return f
}

func (f Field) Required() Field {
	f.Optional = false
	return f
}

// Schema is the wire-name table of one entity definition.
type Schema struct {
	entity string
	fields []Field
	byName map[string]int
}

// NewSchema builds the table for entity. It panics on duplicate identifiers or keys,
// schemas are package-level values and a broken one must not survive init.
func NewSchema(entity string, fields ...Field) *Schema {
	s := &Schema{
		entity: entity,
		fields: make([]Field, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}

	readKeys := make(map[string]string, len(fields))
	writeKeys := make(map[string]string, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("wire: %s: field without name", entity))
		}
		if _, ok := s.byName[f.Name]; ok {
			panic(fmt.Sprintf("wire: %s: duplicate field %s", entity, f.Name))
		}
		if other, ok := readKeys[f.ReadKey]; ok && f.ReadKey != "" {
			panic(fmt.Sprintf("wire: %s: read key %q used by %s and %s", entity, f.ReadKey, other, f.Name))
		}
		if other, ok := writeKeys[f.WriteKey]; ok && f.WriteKey != "" {
			panic(fmt.Sprintf("wire: %s: write key %q used by %s and %s", entity, f.WriteKey, other, f.Name))
		}
		readKeys[f.ReadKey] = f.Name
		writeKeys[f.WriteKey] = f.Name
		s.byName[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s
}

// Derive returns a new schema for entity with the given fields replaced by name.
// Used for versioned snapshots that differ from a base definition in a few fields.
func (s *Schema) Derive(entity string, overrides ...Field) *Schema {
	fields := s.Fields()
	for _, o := range overrides {
		i, ok := s.byName[o.Name]
		if !ok {
			panic(fmt.Sprintf("wire: %s: override of unknown field %s", entity, o.Name))
		}
		fields[i] = o
	}
	return NewSchema(entity, fields...)
}

func (s *Schema) Entity() string {
	return s.entity
}

func (s *Schema) Fields() []Field {
	res := make([]Field, len(s.fields))
	copy(res, s.fields)
	return res
}

// Field returns the declaration of name. Asking for an undeclared field is a programming error.
func (s *Schema) Field(name string) Field {
	i, ok := s.byName[name]
	if !ok {
		panic(fmt.Sprintf("wire: %s has no field %s", s.entity, name))
	}
	return s.fields[i]
}

// WriteKeys lists the keys a fully populated value is encoded with, in declaration order.
func (s *Schema) WriteKeys() []string {
	res := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if f.WriteKey != "" {
			res = append(res, f.WriteKey)
		}
	}
	return res
}
