package realtime

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"Parlour-Admin-Dashboard/models"
)

// Pesan yang dikirim ke client lewat websocket.
type wsMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menyimpan koneksi websocket yang sedang aktif dan menyiarkan event
// absensi ke semuanya. Tidak ada state durable di sini; registry client hanya
// berubah lewat connect/disconnect dan dibaca saat broadcast. Hub di-inject
// sebagai dependency eksplisit, bukan singleton proses.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

// Register mendaftarkan koneksi baru dan mengembalikan ID client-nya.
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.New().String()

	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	log.Printf("Client realtime terhubung: %s (total %d)", id, h.ClientCount())
	return id
}

func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()

	log.Printf("Client realtime terputus: %s (total %d)", id, h.ClientCount())
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastAttendanceUpdate mengirim event attendanceUpdate ke semua client.
// Best-effort: client yang gagal dikirimi dilepas dari registry dan tidak
// menggagalkan apa pun di sisi pemanggil. Urutan antar karyawan tidak dijamin.
func (h *Hub) BroadcastAttendanceUpdate(event models.AttendanceEvent) {
	message := wsMessage{
		Event: "attendanceUpdate",
		Data:  event,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Gagal kirim event ke client %s, koneksi dilepas: %v", id, err)
			conn.Close()
			delete(h.clients, id)
		}
	}
}
