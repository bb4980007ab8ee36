package httpapi

import (
	"bytes"
	"net/http"
	"time"

	"calendard/internal/calendar"
	"calendard/internal/server/events"
	ics "github.com/emersion/go-ical"
	"github.com/gin-gonic/gin"
)

// handleExportICS renders the caller's events as an iCalendar document.
// Events whose stored timestamps fail to parse are skipped so one corrupt
// record cannot break the whole export.
func (s *Server) handleExportICS(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()

	result, err := s.events.List(ctx, user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	cal := ics.NewCalendar()
	cal.Props.SetText(ics.PropVersion, "2.0")
	cal.Props.SetText(ics.PropProductID, "-//calendard//EN")

	for _, event := range result {
		ve, err := toVEvent(event)
		if err != nil {
			s.logger.Warn(ctx, "skipping event with bad timestamps", "event_id", event.ID, "error", err.Error())
			continue
		}
		cal.Children = append(cal.Children, ve)
	}

	var buf bytes.Buffer
	if err := ics.NewEncoder(&buf).Encode(cal); err != nil {
		s.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar", buf.Bytes())
}

func toVEvent(event *events.Event) (*ics.Component, error) {
	start, err := calendar.ParseWireTime(event.Start)
	if err != nil {
		return nil, err
	}
	end, err := calendar.ParseWireTime(event.End)
	if err != nil {
		return nil, err
	}

	ve := ics.NewComponent(ics.CompEvent)
	ve.Props.SetText(ics.PropUID, event.ID)
	ve.Props.SetText(ics.PropSummary, event.Name)
	ve.Props.SetDateTime(ics.PropDateTimeStamp, time.Now().UTC())
	ve.Props.SetDateTime(ics.PropDateTimeStart, start)
	ve.Props.SetDateTime(ics.PropDateTimeEnd, end)
	if event.Description != "" {
		ve.Props.SetText(ics.PropDescription, event.Description)
	}
	return ve, nil
}
