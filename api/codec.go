// Package api declares the chappy.v1 gRPC services: message types, service
// descriptors and typed clients. Messages travel as JSON through a codec
// registered under the "json" content subtype.
package api

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// CallJSON selects the json codec for a call. Typed clients add it themselves.
func CallJSON() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
