package authutils

import (
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const tempPasswordLength = 12
const letterBytes = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateTempPassword produit le mot de passe temporaire envoyé par email
// lors du provisionnement d'un compte.
func GenerateTempPassword() string {
	sb := strings.Builder{}
	sb.Grow(tempPasswordLength)
	for i := 0; i < tempPasswordLength; i++ {
		idx := rand.Int63() % int64(len(letterBytes))
		sb.WriteByte(letterBytes[idx])
	}
	return sb.String()
}
