package service

import "errors"

// Error domain untuk mesin status absensi. Handler memetakan error ini ke
// kode HTTP lewat errors.Is; error infrastruktur lain jatuh ke 500.
var (
	ErrEmployeeNotFound = errors.New("karyawan tidak ditemukan")
	ErrEmployeeInactive = errors.New("karyawan sudah tidak aktif")
	ErrAlreadyPunchedIn = errors.New("sudah melakukan punch-in hari ini")
	ErrNoActivePunchIn  = errors.New("tidak ada punch-in aktif untuk hari ini")
	ErrInvalidPunchOut  = errors.New("waktu punch-out harus setelah punch-in")
)
