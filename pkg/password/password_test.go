package password

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	plain := "Admin@123"

	hashed, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword gagal: %v", err)
	}
	if hashed == plain {
		t.Fatalf("hash tidak boleh sama dengan plaintext")
	}

	if !CheckPasswordHash(plain, hashed) {
		t.Errorf("password benar ditolak")
	}
	if CheckPasswordHash("password-salah", hashed) {
		t.Errorf("password salah diterima")
	}
	if CheckPasswordHash(plain, "bukan-hash-bcrypt") {
		t.Errorf("hash rusak diterima")
	}
}
