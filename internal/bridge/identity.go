package bridge

// Identity is the bridge for hosts whose native text already is UTF-8.
// Both directions return their input slice unchanged.
type Identity struct{}

// Name implements Bridge.
func (Identity) Name() string { return "utf-8" }

// ToUTF8 implements Bridge.
func (Identity) ToUTF8(native []byte) ([]byte, error) { return native, nil }

// ToNative implements Bridge.
func (Identity) ToNative(text []byte) ([]byte, error) { return text, nil }
