package codec

import gojson "github.com/goccy/go-json"

// GoJSON is the default codec, backed by github.com/goccy/go-json.
//
// Output is plain JSON without HTML escaping, so payloads written by GoJSON
// decode with JSON and the other way round.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) {
	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
}

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
