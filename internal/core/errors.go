package core

// MsgRoomNotFound is the error text surfaced to a peer that connected to a
// room the directory does not know. Wire-visible, do not reword.
const MsgRoomNotFound = "Room not found"
