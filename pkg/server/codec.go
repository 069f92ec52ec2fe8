package server

import (
	"github.com/bufbuild/connect-go"
	"github.com/goccy/go-json"
)

const codecName = "json"

// Codec carries the plain Go API messages as JSON. It replaces connect's
// protojson codec, which only accepts generated protobuf messages.
type Codec struct{}

func (Codec) Name() string {
	return codecName
}

func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, message)
}

// HandlerOptions returns the options every Foodgram service handler is built with.
func HandlerOptions(interceptors ...connect.Interceptor) []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithCodec(Codec{}),
		connect.WithInterceptors(interceptors...),
	}
}
