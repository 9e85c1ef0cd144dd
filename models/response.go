package models

type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login berhasil"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	User    User   `json:"user"`
}

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User berhasil didaftarkan (oleh superadmin)"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

type ChangePasswordSuccessResponse struct {
	Message string `json:"message" example:"Password berhasil diubah."`
}

type GetAllEmployeesSuccessResponse struct {
	Message   string     `json:"message" example:"Data karyawan berhasil diambil"`
	Employees []Employee `json:"employees"`
	Total     int        `json:"total" example:"10"`
}

type QRBadgeSuccessResponse struct {
	Message     string `json:"message" example:"QR badge berhasil dibuat"`
	EmployeeID  string `json:"employee_id" example:"EMP0001"`
	QRCodeImage string `json:"qr_code_image" example:"data:image/png;base64,iVBOR..."`
}

type DashboardStats struct {
	TotalEmployees  int64 `json:"total_employees"`
	ActiveEmployees int64 `json:"active_employees"`
	TodayAttendance int64 `json:"today_attendance"`
	PunchedInNow    int64 `json:"punched_in_now"`
	PendingTasks    int64 `json:"pending_tasks"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Akses ditolak. Hak akses admin diperlukan"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Karyawan tidak ditemukan"`
}
