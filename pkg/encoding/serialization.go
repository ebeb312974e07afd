// Package encoding provides the serialization adapters for the value
// types. The types themselves only guarantee a stable field set and
// ordering; the codecs here operate purely structurally on that
// shape.
package encoding

import (
	"bytes"
	"encoding/binary"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Serializable is implemented by values that own their wire form.
type Serializable[T any] interface {
	Serialize() ([]byte, error)
	Deserialize([]byte) error
}

// Codec converts values to and from a byte representation.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON is a Codec producing JSON documents.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// YAML is a Codec producing YAML documents.
var YAML Codec = yamlCodec{}

type yamlCodec struct{}

func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Binary is a Codec for fixed-size value types (structs of numeric
// and bool fields), writing fields in declaration order as
// little-endian.
var Binary Codec = binaryCodec{}

type binaryCodec struct{}

func (binaryCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (binaryCodec) Unmarshal(data []byte, v any) error {
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, v)
}
