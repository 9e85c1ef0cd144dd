package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
)

var (
	pasetoInstance = paseto.NewV2()
	symmetricKey   []byte
)

// Init mendecode secret base64 dan menyimpannya untuk Generate/ValidateToken.
// Wajib dipanggil sekali dari main sebelum server menerima request.
func Init(secretBase64 string) error {
	decodedKey, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		return fmt.Errorf("PASETO secret is not a valid Base64 URL-encoded string: %w", err)
	}

	if len(decodedKey) != 32 {
		return fmt.Errorf("PASETO secret must be exactly 32 bytes after decoding, got %d bytes", len(decodedKey))
	}

	symmetricKey = decodedKey
	return nil
}

func GenerateToken(user *models.User) (string, error) {
	if symmetricKey == nil {
		return "", fmt.Errorf("paseto belum di inisialisasi, panggil paseto.Init() dulu")
	}

	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	// Custom claims disimpan sebagai string
	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return pasetoInstance.Encrypt(symmetricKey, token, "")
}

func ValidateToken(tokenString string) (*models.Claims, error) {
	if symmetricKey == nil {
		return nil, fmt.Errorf("paseto belum di inisialisasi, panggil paseto.Init() dulu")
	}

	var token paseto.JSONToken
	var footer string

	err := pasetoInstance.Decrypt(tokenString, symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	var claims models.Claims

	userIDStr := token.Get("user_id")
	objectID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %v", err)
	}
	claims.UserID = objectID
	claims.Email = token.Get("email")
	claims.Role = token.Get("role")

	return &claims, nil
}
