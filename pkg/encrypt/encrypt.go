package encrypt

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

const privateKeyBytes = 24

// HashPassword bcrypt 哈希
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 校验明文与哈希
func VerifyPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// GeneratePrivateKey 生成用户登录私钥，返回明文(只下发一次)和哈希(入库)
func GeneratePrivateKey() (plain string, hashed string, err error) {
	buf := make([]byte, privateKeyBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(buf)
	hashed, err = HashPassword(plain)
	if err != nil {
		return "", "", err
	}
	return plain, hashed, nil
}
