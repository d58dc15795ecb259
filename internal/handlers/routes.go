package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the lobby API under /api.
func RegisterRoutes(engine *gin.Engine, h *RoomHandler) {
	api := engine.Group("/api")

	api.POST("/rooms", h.CreateRoomHandler)
	api.GET("/rooms/:code", h.GetRoomHandler)
	api.POST("/rooms/:code/join", h.JoinRoomHandler)
	api.POST("/rooms/:code/configure", h.ConfigureRoomHandler)
	api.GET("/rooms/:code/available-characters", h.AvailableCharactersHandler)
	api.POST("/rooms/:code/start", h.StartGameHandler)
	api.POST("/rooms/:code/reset", h.ResetGameHandler)
	api.POST("/rooms/:code/back-to-lobby", h.BackToLobbyHandler)
	api.POST("/rooms/:code/kick", h.KickPlayerHandler)
	api.POST("/rooms/:code/leave", h.LeaveRoomHandler)

	api.POST("/players/:id/select-character", h.SelectCharacterHandler)
	api.GET("/players/:id/reveal", h.RevealHandler)
}
