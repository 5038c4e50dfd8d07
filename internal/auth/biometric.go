// ABOUTME: Biometric capability interface consumed by the session service.
// ABOUTME: The platform gate authenticates the human; this layer only trusts it.
package auth

// Capability is the platform biometric gate. LoginWithBiometric assumes
// Authenticate already succeeded before it is called.
type Capability interface {
	// Supported reports whether the device has biometric hardware.
	Supported() bool
	// Enrolled reports whether the user has biometrics registered.
	Enrolled() bool
	// Authenticate runs the platform prompt and reports success.
	Authenticate() bool
	// Kind returns a display label ("Face ID", "Fingerprint", ...).
	Kind() string
}

// Unavailable is the capability for hosts with no biometric hardware.
type Unavailable struct{}

func (Unavailable) Supported() bool    { return false }
func (Unavailable) Enrolled() bool     { return false }
func (Unavailable) Authenticate() bool { return false }
func (Unavailable) Kind() string       { return "Biometric" }
