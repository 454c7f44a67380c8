package socket

import (
	"log"

	"matchpoint_server/models"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the live message feed. Clients join the room
// for a conversation to start receiving its messages and must leave the
// room to stop; the room membership is the subscription handle.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, data map[string]string) {
		room := conversationRoom(data)
		if room == "" {
			log.Println("❌ Invalid join request, ownerId and counterpartId required")
			return
		}
		log.Printf("👥 Socket %s joined conversation %s\n", c.ID(), room)
		c.Join(room)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, data map[string]string) {
		room := conversationRoom(data)
		if room == "" {
			return
		}
		log.Printf("👋 Socket %s left conversation %s\n", c.ID(), room)
		c.Leave(room)
	})

	server.OnEvent("/", "sendMessage", func(c socketio.Conn, message map[string]interface{}) {
		fromID, _ := message["fromId"].(string)
		toID, _ := message["toId"].(string)
		if fromID == "" || toID == "" {
			log.Println("❌ Invalid sendMessage payload")
			return
		}
		room := models.ConversationID(fromID, toID)
		server.BroadcastToRoom("/", room, "newMessage", message)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

func conversationRoom(data map[string]string) string {
	ownerID := data["ownerId"]
	counterpartID := data["counterpartId"]
	if ownerID == "" || counterpartID == "" {
		return ""
	}
	return models.ConversationID(ownerID, counterpartID)
}
