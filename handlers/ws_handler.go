package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"Parlour-Admin-Dashboard/realtime"
)

// UpgradeRequired menolak request non-websocket ke endpoint /ws.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// AttendanceSocket mendaftarkan koneksi ke hub lalu menahan koneksi sampai
// client menutupnya. Server tidak memproses pesan masuk; kanal ini hanya
// untuk push event attendanceUpdate.
func AttendanceSocket(hub *realtime.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		id := hub.Register(conn)
		defer hub.Unregister(id)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}
