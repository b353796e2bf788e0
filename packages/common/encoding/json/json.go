package json

import (
	"hobbes/packages/common/logger"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var log = logger.NewSource("JSON", logger.Default)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

type RawMessage = jsoniter.RawMessage

// Decode json from the given reader.
func Decode[T any](input io.Reader) (T, error) {
	var result T

	if err := api.NewDecoder(input).Decode(&result); err != nil {
		log.Error("Failed to decode JSON", err.Error(), nil)

		return result, err
	}

	return result, nil
}

// Same as Decode, but for in-memory json.
func Unmarshal[T any](data []byte) (T, error) {
	var result T

	if err := api.Unmarshal(data, &result); err != nil {
		log.Error("Failed to unmarshal JSON", err.Error(), nil)

		return result, err
	}

	return result, nil
}

func Marshal(v any) ([]byte, error) {
	data, err := api.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal JSON", err.Error(), nil)
	}
	return data, err
}
