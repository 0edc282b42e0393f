package socket

import (
	"log"
	"net/http"

	"moodmap_server/models"

	socketio "github.com/googollee/go-socket.io"
)

const mapRoom = "map"

// Server pushes moodUpdated nudges to connected map clients. Clients
// react by re-fetching the full mood set; the nudge carries the stored
// record for display only.
type Server struct {
	io *socketio.Server
}

// NewServer initializes and returns a new Socket.IO server
func NewServer() *Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn) {
		log.Printf("Socket %s joined the map room\n", s.ID())
		s.Join(mapRoom)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return &Server{io: server}
}

// BroadcastMoodUpdated notifies the map room about a new submission
func (s *Server) BroadcastMoodUpdated(record models.MoodRecord) {
	s.io.BroadcastToRoom("/", mapRoom, "moodUpdated", record)
}

// Handler exposes the server for mounting under /socket.io/
func (s *Server) Handler() http.Handler {
	return s.io
}

// Serve runs the Socket.IO event loop
func (s *Server) Serve() {
	if err := s.io.Serve(); err != nil {
		log.Printf("Socket.IO serve error: %v\n", err)
	}
}

// Close shuts the Socket.IO server down
func (s *Server) Close() {
	s.io.Close()
}
