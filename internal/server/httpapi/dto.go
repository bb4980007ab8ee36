package httpapi

import (
	"calendard/internal/server/events"
	"calendard/internal/server/users"
)

// Transfer shapes. Field names (notably "_id") match the wire protocol the
// web client already speaks.

type friendDTO struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type userDTO struct {
	ID       string      `json:"_id"`
	Username string      `json:"username"`
	Token    string      `json:"token"`
	Friends  []friendDTO `json:"friends"`
}

type eventDTO struct {
	ID          string `json:"_id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

func toUserDTO(u *users.ResolvedUser) userDTO {
	friends := make([]friendDTO, 0, len(u.Friends))
	for _, f := range u.Friends {
		friends = append(friends, friendDTO{ID: f.ID, Username: f.Username})
	}
	return userDTO{ID: u.ID, Username: u.Username, Token: u.Token, Friends: friends}
}

func toEventDTO(e *events.Event) eventDTO {
	return eventDTO{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Start:       e.Start,
		End:         e.End,
		Description: e.Description,
	}
}

func toEventDTOs(list []*events.Event) []eventDTO {
	result := make([]eventDTO, 0, len(list))
	for _, e := range list {
		result = append(result, toEventDTO(e))
	}
	return result
}
