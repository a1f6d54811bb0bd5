// Package auth decides whether a caller may mutate events.
package auth

// Capability is the caller's resolved admin standing. Consumers must handle
// all three states: Unknown means the role has not been resolved yet and is
// never the same as a denial.
type Capability int

const (
	CapabilityUnknown Capability = iota
	CapabilityAdmin
	CapabilityNotAdmin
)

func (c Capability) String() string {
	switch c {
	case CapabilityAdmin:
		return "admin"
	case CapabilityNotAdmin:
		return "not_admin"
	default:
		return "unknown"
	}
}
