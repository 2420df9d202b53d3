package address

const redacted = "[REDACTED]"

// Secret holds exported private key material.
// It redacts itself when formatted or marshaled; use Reveal for the actual value.
type Secret struct {
	b []byte
}

// NewSecret copies s into a new Secret
func NewSecret(s string) Secret {
	return Secret{b: []byte(s)}
}

// Reveal returns the encoded key material
func (s Secret) Reveal() string {
	return string(s.b)
}

// IsZero reports whether the secret is empty or has been wiped
func (s Secret) IsZero() bool {
	return len(s.b) == 0
}

// Clone returns an independent copy
func (s Secret) Clone() Secret {
	if s.b == nil {
		return Secret{}
	}

	b := make([]byte, len(s.b))
	copy(b, s.b)
	return Secret{b: b}
}

// Zero overwrites the key material in place.
// Copies made with Clone are not affected.
func (s *Secret) Zero() {
	for i := range s.b {
		s.b[i] = 0
	}
	s.b = nil
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}
