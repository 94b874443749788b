//go:build !termlinefastjson

// Package jsonx is the JSON codec used for word lists. Building with the
// termlinefastjson tag swaps encoding/json for sonic.
package jsonx

import "encoding/json"

func Marshal(v any) ([]byte, error)   { return json.Marshal(v) }
func Unmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }
