package deviceconfig

// Record key names. The names are a wire contract with the device agent and
// are listed here once so that builder, schema, and callers never drift.
const (
	FieldApplicationName       = "applicationName"
	FieldApplicationID         = "applicationId"
	FieldDeviceType            = "deviceType"
	FieldUserID                = "userId"
	FieldUsername              = "username"
	FieldFiles                 = "files"
	FieldAppUpdatePollInterval = "appUpdatePollInterval"
	FieldListenPort            = "listenPort"
	FieldVPNPort               = "vpnPort"
	FieldAPIEndpoint           = "apiEndpoint"
	FieldVPNEndpoint           = "vpnEndpoint"
	FieldRegistryEndpoint      = "registryEndpoint"
	FieldDeltaEndpoint         = "deltaEndpoint"
	FieldPubNubSubscribeKey    = "pubnubSubscribeKey"
	FieldPubNubPublishKey      = "pubnubPublishKey"
	FieldMixpanelToken         = "mixpanelToken"
	FieldAPIKey                = "apiKey"
	FieldWifiSSID              = "wifiSsid"
	FieldWifiKey               = "wifiKey"
	FieldRegisteredAt          = "registered_at"
	FieldDeviceID              = "deviceId"
	FieldUUID                  = "uuid"
)

// Kind is the expected type of a schema field.
type Kind int

const (
	// String accepts string values only.
	String Kind = iota + 1

	// Integer accepts any integral numeric value. Numeric strings and whole
	// floats are coerced to int64 during validation.
	Integer

	// Object accepts a nested string-keyed mapping whose content is opaque
	// to the schema.
	Object
)

// Field declares one allowed record key.
type Field struct {
	// Name is the exact record key.
	Name string

	// Kind is the expected value type.
	Kind Kind

	// Required marks keys that must be present and non-nil.
	Required bool
}

// Schema is an ordered set of field declarations. Validation walks fields in
// declaration order, so the "first violation" reported to callers is stable.
type Schema struct {
	fields []Field
	byName map[string]Field
}

// NewSchema builds a Schema from the given field declarations, preserving
// their order.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{
		fields: fields,
		byName: make(map[string]Field, len(fields)),
	}
	for _, f := range fields {
		s.byName[f.Name] = f
	}
	return s
}

// DefaultSchema returns the schema of the device configuration record: every
// key the agent understands, no more. Optional keys cover the wifi pair and
// the device-identity fields stamped by device-scoped provisioning.
func DefaultSchema() *Schema {
	return NewSchema(
		Field{Name: FieldApplicationName, Kind: String, Required: true},
		Field{Name: FieldApplicationID, Kind: Integer, Required: true},
		Field{Name: FieldDeviceType, Kind: String, Required: true},
		Field{Name: FieldUserID, Kind: Integer, Required: true},
		Field{Name: FieldUsername, Kind: String, Required: true},
		Field{Name: FieldFiles, Kind: Object, Required: true},
		Field{Name: FieldAppUpdatePollInterval, Kind: Integer, Required: true},
		Field{Name: FieldListenPort, Kind: Integer, Required: true},
		Field{Name: FieldVPNPort, Kind: Integer, Required: true},
		Field{Name: FieldAPIEndpoint, Kind: String, Required: true},
		Field{Name: FieldVPNEndpoint, Kind: String, Required: true},
		Field{Name: FieldRegistryEndpoint, Kind: String, Required: true},
		Field{Name: FieldDeltaEndpoint, Kind: String},
		Field{Name: FieldPubNubSubscribeKey, Kind: String, Required: true},
		Field{Name: FieldPubNubPublishKey, Kind: String, Required: true},
		Field{Name: FieldMixpanelToken, Kind: String, Required: true},
		Field{Name: FieldAPIKey, Kind: String, Required: true},
		Field{Name: FieldWifiSSID, Kind: String},
		Field{Name: FieldWifiKey, Kind: String},
		Field{Name: FieldRegisteredAt, Kind: Integer},
		Field{Name: FieldDeviceID, Kind: Integer},
		Field{Name: FieldUUID, Kind: String},
	)
}

// Declares reports whether the schema declares the given key.
func (s *Schema) Declares(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Fields returns the field declarations in declaration order.
func (s *Schema) Fields() []Field {
	return s.fields
}
