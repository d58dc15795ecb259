package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Tomasdfgh/Avalon/internal/game"
	"github.com/Tomasdfgh/Avalon/internal/registry"
)

var (
	ErrorInvalidRequestFormatJson  = gin.H{"error": "bad-request-format"}
	ErrorPlayerNameRequiredJson    = gin.H{"error": "player-name-required"}
	ErrorCharacterRequiredJson     = gin.H{"error": "character-required"}
	ErrorCharacterNotAvailableJson = gin.H{"error": "character-not-available"}
	ErrorRoomNotFoundJson          = gin.H{"error": "room-not-found"}
	ErrorPlayerNotFoundJson        = gin.H{"error": "player-not-found"}
	ErrorRoomNotConfiguredJson     = gin.H{"error": "room-not-configured"}
	ErrorGameNotStartedJson        = gin.H{"error": "game-not-started"}
	ErrorNoCharacterSelectedJson   = gin.H{"error": "no-character-selected"}
)

type RoomHandler struct {
	store RoomStore
}

func NewRoomHandler(store RoomStore) *RoomHandler {
	return &RoomHandler{store: store}
}

// abortWithStoreError maps registry failures onto HTTP statuses: missing
// records are 404, host violations 403, everything else is a plain 400.
func abortWithStoreError(ctx *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, registry.ErrRoomNotFound), errors.Is(err, registry.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, registry.ErrNotHost):
		status = http.StatusForbidden
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (h *RoomHandler) CreateRoomHandler(ctx *gin.Context) {
	var body struct {
		PlayerName string `json:"player_name"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorInvalidRequestFormatJson)
		return
	}
	if body.PlayerName == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorPlayerNameRequiredJson)
		return
	}

	room, player := h.store.CreateRoom(body.PlayerName)
	roomData, _ := h.store.GetRoomWithPlayers(room.RoomCode)

	ctx.JSON(http.StatusCreated, gin.H{"room": roomData, "player": player})
}

func (h *RoomHandler) JoinRoomHandler(ctx *gin.Context) {
	var body struct {
		PlayerName string `json:"player_name"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorInvalidRequestFormatJson)
		return
	}
	if body.PlayerName == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorPlayerNameRequiredJson)
		return
	}

	roomCode := ctx.Param("code")
	_, player, err := h.store.JoinRoom(roomCode, body.PlayerName)
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	roomData, _ := h.store.GetRoomWithPlayers(roomCode)
	ctx.JSON(http.StatusOK, gin.H{"room": roomData, "player": player})
}

// GetRoomHandler is the poll endpoint. A player_id query parameter doubles as
// that player's heartbeat, and each poll opportunistically sweeps the room
// for stale members.
func (h *RoomHandler) GetRoomHandler(ctx *gin.Context) {
	roomCode := ctx.Param("code")

	if raw := ctx.Query("player_id"); raw != "" {
		if playerID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			h.store.Heartbeat(playerID)
		}
	}
	h.store.CleanupStale(roomCode)

	roomData, ok := h.store.GetRoomWithPlayers(roomCode)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorRoomNotFoundJson)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"room": roomData})
}

func (h *RoomHandler) ConfigureRoomHandler(ctx *gin.Context) {
	var body struct {
		PlayerID           int64    `json:"player_id"`
		OptionalCharacters []string `json:"optional_characters"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorInvalidRequestFormatJson)
		return
	}

	roomCode := ctx.Param("code")
	if _, err := h.store.ConfigureRoom(roomCode, body.PlayerID, body.OptionalCharacters); err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	roomData, _ := h.store.GetRoomWithPlayers(roomCode)
	ctx.JSON(http.StatusOK, gin.H{"room": roomData})
}

func (h *RoomHandler) AvailableCharactersHandler(ctx *gin.Context) {
	room, ok := h.store.GetRoom(ctx.Param("code"))
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorRoomNotFoundJson)
		return
	}
	if room.Status == registry.StatusWaiting {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorRoomNotConfiguredJson)
		return
	}

	available := game.AvailableCharacters(room.PlayerCount, room.OptionalCharacters)

	selected := []string{}
	for _, p := range h.store.GetPlayersInRoom(room.RoomCode) {
		if p.CharacterRole != "" {
			selected = append(selected, p.CharacterRole)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"available_characters": available,
		"selected_characters":  selected,
	})
}

func (h *RoomHandler) SelectCharacterHandler(ctx *gin.Context) {
	playerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorPlayerNotFoundJson)
		return
	}

	var body struct {
		Character string `json:"character"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorInvalidRequestFormatJson)
		return
	}
	if body.Character == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorCharacterRequiredJson)
		return
	}

	if _, ok := h.store.GetPlayer(playerID); !ok {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorPlayerNotFoundJson)
		return
	}
	room, ok := h.store.GetRoomByPlayer(playerID)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorRoomNotFoundJson)
		return
	}

	pool := game.AvailableCharacters(room.PlayerCount, room.OptionalCharacters)
	if !pool.Contains(body.Character) {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorCharacterNotAvailableJson)
		return
	}

	player, err := h.store.SelectCharacter(playerID, body.Character)
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"player": player})
}

// StartGameHandler runs the full official-rules roster validation before
// handing over to the registry, which only checks completeness.
func (h *RoomHandler) StartGameHandler(ctx *gin.Context) {
	var body struct {
		PlayerID int64 `json:"player_id"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorInvalidRequestFormatJson)
		return
	}

	roomCode := ctx.Param("code")
	room, ok := h.store.GetRoom(roomCode)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorRoomNotFoundJson)
		return
	}

	if err := game.ValidateSelection(h.store.Roster(roomCode), room.OptionalCharacters); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.StartGame(roomCode, body.PlayerID); err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	roomData, _ := h.store.GetRoomWithPlayers(roomCode)
	ctx.JSON(http.StatusOK, gin.H{"room": roomData})
}

func (h *RoomHandler) RevealHandler(ctx *gin.Context) {
	playerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorPlayerNotFoundJson)
		return
	}

	player, ok := h.store.GetPlayer(playerID)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorPlayerNotFoundJson)
		return
	}
	room, ok := h.store.GetRoomByPlayer(playerID)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusNotFound, ErrorRoomNotFoundJson)
		return
	}
	if room.Status != registry.StatusStarted {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorGameNotStartedJson)
		return
	}
	if player.CharacterRole == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorNoCharacterSelectedJson)
		return
	}

	reveals := game.CharacterReveals(player.CharacterRole, h.store.Roster(room.RoomCode))
	ctx.JSON(http.StatusOK, gin.H{"reveals": reveals})
}

// roomAction factors the shared shape of the host-triggered room mutations:
// bind player_id, run the registry operation, return the refreshed room view.
func (h *RoomHandler) roomAction(ctx *gin.Context, op func(roomCode string, playerID int64) (registry.Room, error)) {
	var body struct {
		PlayerID int64 `json:"player_id"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorInvalidRequestFormatJson)
		return
	}

	roomCode := ctx.Param("code")
	if _, err := op(roomCode, body.PlayerID); err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	roomData, _ := h.store.GetRoomWithPlayers(roomCode)
	ctx.JSON(http.StatusOK, gin.H{"room": roomData})
}

func (h *RoomHandler) ResetGameHandler(ctx *gin.Context) {
	h.roomAction(ctx, h.store.ResetGame)
}

func (h *RoomHandler) BackToLobbyHandler(ctx *gin.Context) {
	h.roomAction(ctx, h.store.BackToLobby)
}

func (h *RoomHandler) LeaveRoomHandler(ctx *gin.Context) {
	h.roomAction(ctx, h.store.LeaveRoom)
}

func (h *RoomHandler) KickPlayerHandler(ctx *gin.Context) {
	var body struct {
		PlayerID int64 `json:"player_id"`
		TargetID int64 `json:"target_id"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorInvalidRequestFormatJson)
		return
	}

	roomCode := ctx.Param("code")
	if _, err := h.store.KickPlayer(roomCode, body.PlayerID, body.TargetID); err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	roomData, _ := h.store.GetRoomWithPlayers(roomCode)
	ctx.JSON(http.StatusOK, gin.H{"room": roomData})
}
