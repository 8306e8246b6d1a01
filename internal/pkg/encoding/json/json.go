// Package json wraps the json-iterator library,
// the behavior is compatible with the std encoding/json.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary // nolint: gochecknoglobals

func Encode(v any, pretty bool) ([]byte, error) {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func MustEncode(v any, pretty bool) []byte {
	data, err := Encode(v, pretty)
	if err != nil {
		panic(err)
	}
	return data
}

func EncodeString(v any, pretty bool) (string, error) {
	data, err := Encode(v, pretty)
	return string(data), err
}

func MustEncodeString(v any, pretty bool) string {
	data, err := EncodeString(v, pretty)
	if err != nil {
		panic(err)
	}
	return data
}

func Decode(data []byte, m any) error {
	return json.Unmarshal(data, m)
}

func MustDecode(data []byte, m any) {
	if err := Decode(data, m); err != nil {
		panic(err)
	}
}

func DecodeString(data string, m any) error {
	return Decode([]byte(data), m)
}

func MustDecodeString(data string, m any) {
	if err := DecodeString(data, m); err != nil {
		panic(err)
	}
}
