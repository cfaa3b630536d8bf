package impl

import (
	"errors"
	"testing"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
)

func TestArgon2idHashAndVerify(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	hash, salt, params, ver, err := svc.Hash("correcthorse")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if len(hash) != 32 || len(salt) != 16 {
		t.Fatalf("hash/salt lengths = %d/%d, want 32/16", len(hash), len(salt))
	}
	if ver != 1 {
		t.Fatalf("ver = %d, want 1", ver)
	}

	cred := &domain.Account{
		PasswordHash:   hash,
		PasswordSalt:   salt,
		PasswordParams: params,
		PasswordVer:    ver,
	}
	if !svc.Verify("correcthorse", cred) {
		t.Fatal("Verify rejected the original password")
	}
	if svc.Verify("wronghorse", cred) {
		t.Fatal("Verify accepted a wrong password")
	}
}

func TestArgon2idRejectsEmptyPassword(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	if _, _, _, _, err := svc.Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("error = %v, want ErrEmptyPassword", err)
	}
}

func TestArgon2idVerifyRejectsBadParams(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	cred := &domain.Account{
		PasswordHash:   []byte("x"),
		PasswordSalt:   []byte("y"),
		PasswordParams: []byte("not json"),
	}
	if svc.Verify("anything", cred) {
		t.Fatal("Verify accepted credentials with unparseable params")
	}
}
