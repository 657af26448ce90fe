package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

type Client struct {
	ID    string
	Email string
	Conn  *WebSocketConn
	Send  chan []byte
}

type Hub struct {
	clients    map[string]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// BroadcastJSON marshals and broadcasts to every connected client.
func (h *Hub) BroadcastJSON(v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling broadcast payload: %v", err)
		return
	}
	h.broadcast <- b
}

// SendToUser sends to every connection belonging to one account.
func (h *Hub) SendToUser(email string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.Email == email {
			select {
			case client.Send <- payload:
			default:
				// full buffer: skip, never block the hub
			}
		}
	}
}

// SendToConversation sends to both participants.
func (h *Hub) SendToConversation(clientEmail, freelancerEmail string, data interface{}) {
	h.SendToUser(clientEmail, data)
	h.SendToUser(freelancerEmail, data)
	log.Printf("Message broadcasted to conversation: %s <-> %s", clientEmail, freelancerEmail)
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("Client registered: %s (%s)", client.ID, client.Email)

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.Send)
				log.Printf("Client unregistered: %s", client.ID)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}
