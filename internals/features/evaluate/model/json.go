package model

import "github.com/bytedance/sonic"

func jsonUnmarshal(b []byte, v any) error { return sonic.Unmarshal(b, v) }
