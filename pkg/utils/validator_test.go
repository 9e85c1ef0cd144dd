package util

import "testing"

type registerPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,hasuppercase"`
}

func TestValidateStructPassesValidPayload(t *testing.T) {
	payload := registerPayload{Email: "admin@parlour.com", Password: "Admin@123"}

	if errs := ValidateStruct(payload); errs != nil {
		t.Fatalf("payload valid ditolak: %+v", errs)
	}
}

func TestValidateStructReportsMissingRequired(t *testing.T) {
	errs := ValidateStruct(registerPayload{})
	if len(errs) == 0 {
		t.Fatalf("payload kosong harus gagal validasi")
	}

	found := false
	for _, e := range errs {
		if e.Field == "Email" && e.Tag == "required" {
			found = true
			if e.Msg != "Kolom 'Email' wajib diisi." {
				t.Errorf("pesan required = %q", e.Msg)
			}
		}
	}
	if !found {
		t.Errorf("error required untuk Email tidak dilaporkan: %+v", errs)
	}
}

func TestValidateStructHasUppercase(t *testing.T) {
	errs := ValidateStruct(registerPayload{Email: "admin@parlour.com", Password: "semuahurufkecil"})
	if len(errs) != 1 {
		t.Fatalf("jumlah error = %d, harusnya 1: %+v", len(errs), errs)
	}
	if errs[0].Tag != "hasuppercase" {
		t.Errorf("tag = %q, harusnya hasuppercase", errs[0].Tag)
	}
	if errs[0].Msg != "Password harus mengandung setidaknya satu huruf kapital." {
		t.Errorf("pesan hasuppercase = %q", errs[0].Msg)
	}
}

func TestValidateStructInvalidEmail(t *testing.T) {
	errs := ValidateStruct(registerPayload{Email: "bukan-email", Password: "Admin@123"})
	if len(errs) != 1 || errs[0].Tag != "email" {
		t.Fatalf("email tidak valid harus menghasilkan satu error email: %+v", errs)
	}
	if errs[0].Msg != "Format email tidak valid." {
		t.Errorf("pesan email = %q", errs[0].Msg)
	}
}
