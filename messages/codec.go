package messages

import "github.com/bytedance/sonic"

// Marshal encodes a transport message as JSON.
func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// Unmarshal decodes a transport message from JSON.
func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}
