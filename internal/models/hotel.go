package models

import "github.com/xhamera1/Hotel-app/internal/collection"

// Hotel is the directory owning every room of one hotel, keyed by room
// number. Rooms cannot be removed, so the floor count only grows.
type Hotel struct {
	floorsCount int
	roomsCount  int
	rooms       *collection.OrderedMap[int, *Room]
}

// NewHotel creates an empty hotel
func NewHotel() *Hotel {
	return &Hotel{
		rooms: collection.NewOrderedMap[int, *Room](),
	}
}

// AddRoom registers room. A room whose number is already registered is
// ignored; the first registration wins.
func (h *Hotel) AddRoom(room *Room) {
	if room == nil {
		return
	}
	if _, exists := h.rooms.Get(room.Number()); exists {
		return
	}
	h.rooms.Put(room.Number(), room)
	h.roomsCount++
	h.floorsCount = max(h.floorsCount, room.Level())
}

// RoomByNumber returns the room with the given number
func (h *Hotel) RoomByNumber(number int) (*Room, bool) {
	return h.rooms.Get(number)
}

// AllRooms returns the rooms in registration order
func (h *Hotel) AllRooms() []*Room {
	return h.rooms.Values()
}

// RoomNumbers returns the room numbers in registration order
func (h *Hotel) RoomNumbers() []int {
	return h.rooms.Keys()
}

// RoomsCount returns the number of registered rooms
func (h *Hotel) RoomsCount() int {
	return h.roomsCount
}

// FloorsCount returns the highest level of any room registered so far
func (h *Hotel) FloorsCount() int {
	return h.floorsCount
}
