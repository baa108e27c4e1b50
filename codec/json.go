package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// The host's wire format is plain JSON, so any spec-conforming JSON
// implementation can stand in here. Use JSON when you want the most
// portable, lowest-dependency option.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used for the wire format. Geometry snapshots can be
// large (one flat array per attribute), so the faster implementation wins.
var Default Codec = GoJSON{}
