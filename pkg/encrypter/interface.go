package encrypter

// Encrypter seals and opens small blobs (session files) with AES-GCM.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	EncryptBytesToString(data []byte) (string, error)
	DecryptStringToBytes(ciphertext string) ([]byte, error)
}

// New creates a new Encrypter with the provided key (16, 24, or 32 bytes for AES).
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}

// NewFromSecret derives a 32-byte AES key from an arbitrary-length secret with HKDF-SHA256.
// The same secret and info always yield the same key.
func NewFromSecret(secret, info string) (Encrypter, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	key, err := deriveKey([]byte(secret), []byte(info))
	if err != nil {
		return nil, err
	}
	return &implEncrypter{key: string(key)}, nil
}
