package httpapi

import (
	"net/http"

	"calendard/internal/server/events"
	"github.com/gin-gonic/gin"
)

type createEventRequest struct {
	Name        string  `json:"name"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Description *string `json:"description"`
}

type updateEventRequest struct {
	ID          string  `json:"_id"`
	Name        *string `json:"name"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Description *string `json:"description"`
}

type deleteEventRequest struct {
	ID string `json:"_id"`
}

func (s *Server) handleListEvents(c *gin.Context) {
	user := currentUser(c)

	result, err := s.events.List(c.Request.Context(), user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": "success", "events": toEventDTOs(result)})
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	user := currentUser(c)

	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := s.events.Create(c.Request.Context(), user.ID, events.CreateParams{
		Name:        req.Name,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": "success", "event": toEventDTO(event)})
}

func (s *Server) handleUpdateEvent(c *gin.Context) {
	user := currentUser(c)

	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		fail(c, http.StatusBadRequest, "Event ID is required")
		return
	}

	event, err := s.events.Update(c.Request.Context(), req.ID, user.ID, events.Patch{
		Name:        req.Name,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": "success", "event": toEventDTO(event)})
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	user := currentUser(c)

	var req deleteEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		fail(c, http.StatusBadRequest, "Event ID is required")
		return
	}

	remaining, err := s.events.Delete(c.Request.Context(), req.ID, user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": "success", "events": toEventDTOs(remaining)})
}
