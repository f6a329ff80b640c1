package entity

// Push sound values understood by the gateways.
const (
	PushSoundDefault = "default"
)

// Push ticket statuses.
const (
	PushStatusOK    = "ok"
	PushStatusError = "error"
)

// PushErrorDeviceNotRegistered is reported when a token no longer addresses an installed app.
const PushErrorDeviceNotRegistered = "DeviceNotRegistered"

// PushMessage is a single outbound notification. It is built per dispatch and never persisted.
type PushMessage struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
	Sound string         `json:"sound,omitempty"`
}

// PushReceipt reports the gateway's verdict for one message of a batch.
type PushReceipt struct {
	Token     string
	Status    string
	ErrorCode string
	Message   string
}

// Failed reports whether the gateway rejected the message.
func (r PushReceipt) Failed() bool {
	return r.Status != PushStatusOK
}

// Unregistered reports whether the token should be removed from the registry.
func (r PushReceipt) Unregistered() bool {
	return r.ErrorCode == PushErrorDeviceNotRegistered
}
