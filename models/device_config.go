package models

import "sort"

// DeviceConfig is the canonical flat device configuration record — the
// in-memory form of the config.json consumed by the device agent.
//
// The key names are a wire contract with the agent and must not be renamed.
// The record is a plain map so that callers can stamp additional
// device-identity fields (registered_at, deviceId, uuid) after generation
// and re-validate the result against the schema.
type DeviceConfig map[string]any

// Keys returns the record's keys in sorted order. Map enumeration order is
// not stable in Go, so every "first key" decision in validation is made over
// this deterministic ordering.
func (c DeviceConfig) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the record. Values are shared; the `files`
// sub-map is treated as opaque content and never mutated after generation.
func (c DeviceConfig) Clone() DeviceConfig {
	out := make(DeviceConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
