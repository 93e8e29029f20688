package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akulagin/codeshare-server/internal/store"
)

// RoomHandlers provides HTTP handlers for the room catalog endpoints.
type RoomHandlers struct {
	directory store.Directory
	log       *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(directory store.Directory, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		directory: directory,
		log:       logger,
	}
}

// CreateRoomRequest represents the create room request body.
type CreateRoomRequest struct {
	RoomName string `json:"room_name" binding:"required,min=1,max=128"`
}

// RoomResponse represents a freshly created room.
type RoomResponse struct {
	RoomID   string   `json:"room_id"`
	RoomName string   `json:"room_name"`
	Users    []string `json:"users"`
}

// RoomListItem represents a room in the listing.
type RoomListItem struct {
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name"`
	UserCount int    `json:"user_count"`
}

// RoomsListResponse represents the list rooms response body.
type RoomsListResponse struct {
	Rooms []RoomListItem `json:"rooms"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateRoom handles room creation.
// POST /rooms
func (h *RoomHandlers) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create room request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	room, err := h.directory.CreateRoom(c.Request.Context(), req.RoomName)
	if err != nil {
		h.log.Error().Err(err).Str("room_name", req.RoomName).Msg("failed to create room")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	h.log.Info().Str("room_id", room.ID).Str("room_name", room.Name).Msg("room created")
	c.JSON(http.StatusCreated, RoomResponse{
		RoomID:   room.ID,
		RoomName: room.Name,
		Users:    room.Roster,
	})
}

// ListRooms handles listing all rooms with their roster sizes.
// GET /rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	rooms, err := h.directory.ListRooms(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list rooms")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	items := make([]RoomListItem, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, RoomListItem{
			RoomID:    room.ID,
			RoomName:  room.Name,
			UserCount: len(room.Roster),
		})
	}

	c.JSON(http.StatusOK, RoomsListResponse{Rooms: items})
}
