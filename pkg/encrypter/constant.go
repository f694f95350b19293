package encrypter

const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32

	// hkdfSalt is fixed so a secret always derives the same key across restarts.
	hkdfSalt = "orderdesk.encrypter.v1"
)
