package service

// PasswordService is the opaque one-way verifier primitive. Hash returns the
// verifier parts stored on accounts and pending registrations; Verify checks
// a plaintext against them.
type PasswordService interface {
	Hash(password string) (hash, salt, paramsJSON []byte, ver int, err error)
	Verify(password string, cred PasswordCredential) bool
}

type PasswordCredential interface {
	GetHash() []byte
	GetSalt() []byte
	GetParamsJSON() []byte
	GetPasswordVer() int
}
