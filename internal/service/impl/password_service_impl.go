package impl

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"

	"github.com/proyectocucea9-hash/proyectocucea/internal/service"

	"golang.org/x/crypto/argon2"
)

type argon2Params struct {
	// Stored alongside the hash so verification uses the original cost.
	Time    uint32 `json:"t"`
	Memory  uint32 `json:"m"` // KiB
	Threads uint8  `json:"p"`
	KeyLen  uint32 `json:"k"`
	SaltLen uint32 `json:"s"`
}

type PasswordServiceImpl struct {
	currentVer int
	cur        argon2Params
}

var _ service.PasswordService = (*PasswordServiceImpl)(nil)

func NewPasswordServiceArgon2id() *PasswordServiceImpl {
	return &PasswordServiceImpl{
		currentVer: 1,
		cur: argon2Params{
			Time:    3,
			Memory:  64 * 1024, // 64 MiB
			Threads: 1,
			KeyLen:  32,
			SaltLen: 16,
		},
	}
}

func (p *PasswordServiceImpl) Hash(password string) (hash, salt, paramsJSON []byte, ver int, err error) {
	if password == "" {
		return nil, nil, nil, 0, ErrEmptyPassword
	}
	salt = make([]byte, p.cur.SaltLen)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, nil, 0, err
	}
	hash = argon2.IDKey([]byte(password), salt, p.cur.Time, p.cur.Memory, p.cur.Threads, p.cur.KeyLen)
	paramsJSON, err = json.Marshal(p.cur)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	return hash, salt, paramsJSON, p.currentVer, nil
}

func (p *PasswordServiceImpl) Verify(password string, cred service.PasswordCredential) bool {
	var stored argon2Params
	if err := json.Unmarshal(cred.GetParamsJSON(), &stored); err != nil {
		return false
	}
	calculated := argon2.IDKey([]byte(password), cred.GetSalt(), stored.Time, stored.Memory, stored.Threads, stored.KeyLen)
	return subtle.ConstantTimeCompare(calculated, cred.GetHash()) == 1
}
