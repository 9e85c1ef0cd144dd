package paseto

import (
	"encoding/base64"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
)

func testSecret() string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return base64.URLEncoding.EncodeToString(key)
}

func TestInitRejectsBadSecret(t *testing.T) {
	if err := Init("bukan base64!!"); err == nil {
		t.Errorf("secret non-base64 harus ditolak")
	}
	if err := Init(base64.URLEncoding.EncodeToString([]byte("pendek"))); err == nil {
		t.Errorf("secret kurang dari 32 byte harus ditolak")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	if err := Init(testSecret()); err != nil {
		t.Fatalf("Init gagal: %v", err)
	}

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@parlour.com",
		Role:  models.RoleSuperAdmin,
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken gagal: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken gagal: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user_id = %v, harusnya %v", claims.UserID, user.ID)
	}
	if claims.Email != user.Email || claims.Role != user.Role {
		t.Errorf("claims tidak cocok: %+v", claims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if err := Init(testSecret()); err != nil {
		t.Fatalf("Init gagal: %v", err)
	}
	if _, err := ValidateToken("v2.local.token-palsu"); err == nil {
		t.Errorf("token rusak harus ditolak")
	}
}
