package deviceconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/MKhiriev/device-provision/models"
)

// Validate checks cfg against the builder's schema and fails on the first
// violation encountered, in schema declaration order. Integral values
// supplied as numeric strings or whole floats are coerced to int64 and
// written back into the record.
//
// Unknown top-level keys are checked in a second pass, so an extra key is
// only reported once the record is otherwise schema-conformant.
func (b *Builder) Validate(cfg models.DeviceConfig) error {
	if err := b.schema.validate(cfg, true); err != nil {
		return err
	}
	return b.schema.checkUnknownKeys(cfg, true)
}

// ValidateAll is the diagnostic counterpart of [Builder.Validate]: it walks
// the whole record and joins every schema violation and unknown key into a
// single error. Validate remains the default first-error contract.
func (b *Builder) ValidateAll(cfg models.DeviceConfig) error {
	return errors.Join(
		b.schema.validate(cfg, false),
		b.schema.checkUnknownKeys(cfg, false),
	)
}

func (s *Schema) validate(cfg models.DeviceConfig, failFast bool) error {
	var violations []error

	for _, f := range s.fields {
		err := f.check(cfg)
		if err == nil {
			continue
		}
		if failFast {
			return err
		}
		violations = append(violations, err)
	}

	return errors.Join(violations...)
}

func (s *Schema) checkUnknownKeys(cfg models.DeviceConfig, failFast bool) error {
	var unknown []error

	for _, key := range cfg.Keys() {
		if s.Declares(key) {
			continue
		}
		err := fmt.Errorf("%w: %s", ErrUnknownField, key)
		if failFast {
			return err
		}
		unknown = append(unknown, err)
	}

	return errors.Join(unknown...)
}

func (f Field) check(cfg models.DeviceConfig) error {
	value, present := cfg[f.Name]
	if !present || value == nil {
		if f.Required {
			return violation(f.Name, "is required")
		}
		return nil
	}

	switch f.Kind {
	case String:
		if _, ok := value.(string); !ok {
			return violation(f.Name, "must be a string")
		}
	case Integer:
		n, ok := coerceInt64(value)
		if !ok {
			return violation(f.Name, "must be an integer")
		}
		cfg[f.Name] = n
	case Object:
		if !isStringKeyedMap(value) {
			return violation(f.Name, "must be an object")
		}
	default:
		return violation(f.Name, "has no declared type")
	}

	return nil
}

func violation(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrSchemaViolation, field, reason)
}

// coerceInt64 converts value to int64 when it is an integral number in any
// of the representations that reach the record: native Go integers, whole
// floats (the type encoding/json produces), json.Number, or numeric strings.
func coerceInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return wholeFloatToInt64(float64(v))
	case float64:
		return wholeFloatToInt64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func wholeFloatToInt64(f float64) (int64, bool) {
	n := int64(f)
	if float64(n) != f {
		return 0, false
	}
	return n, true
}

func isStringKeyedMap(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}
