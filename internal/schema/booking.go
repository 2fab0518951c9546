package schema

// BookingUpdate is the writable field set for booking updates. Anything else
// in the request body is ignored. Field names, including the "cheak" spelling,
// match the documents already stored in the bookings collection.
type BookingUpdate struct {
	RoomName string `json:"room_name"`
	Price    any    `json:"price"`
	Img      string `json:"img"`
	CheckIn  string `json:"cheakIn"`
	CheckOut string `json:"cheakOut"`
	Number   any    `json:"number"`
}
