package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teamdash/domain/team"
	"teamdash/internal/errors"
	"teamdash/internal/events"
	"teamdash/models"
)

// MemberForm is the add/edit member form body. Compensation may be negative,
// as imported rosters can carry credits.
type MemberForm struct {
	Name         string `form:"name" binding:"required,max=120"`
	Title        string `form:"title" binding:"required,max=120"`
	Compensation int    `form:"compensation"`
}

func formFor(p models.Person) MemberForm {
	return MemberForm{Name: p.Name, Title: p.Title, Compensation: p.Compensation}
}

func (s *Server) handleTeam(c *gin.Context) {
	var modal *MemberModal
	toast := toastFromQuery(c.Query("toast"))
	status := http.StatusOK

	if c.Query("modal") == "open" {
		modal = addModal(MemberForm{})
	} else if raw := c.Query("edit"); raw != "" {
		person, err := s.lookupMember(c, raw)
		if err != nil {
			toast = ErrorToast(team.UserMessage(err, team.PersonNotFound))
			status = errors.HTTPStatus(err)
		} else {
			modal = editModal(raw, formFor(person))
		}
	}

	s.renderTeam(c, status, modal, toast)
}

func (s *Server) handleCreateMember(c *gin.Context) {
	var form MemberForm
	if err := c.ShouldBind(&form); err != nil {
		err = errors.Wrap(errors.InvalidInput(err.Error()), "invalid member form")
		s.log.Warn("invalid member form", "error", err)
		s.renderTeam(c, errors.HTTPStatus(err), addModal(form), ErrorToast(team.UserMessage(err, team.PersonCreationFailure)))
		return
	}

	person, err := s.persons.Add(c.Request.Context(), models.NewPerson(form.Name, form.Title, form.Compensation))
	if err != nil {
		s.log.Error("failed to add member", "error", err)
		s.renderTeam(c, errors.HTTPStatus(err), addModal(form), ErrorToast(team.UserMessage(err, team.PersonCreationFailure)))
		return
	}

	s.log.Info("member added", "member_id", person.ID, "title", person.Title)
	s.events.Publish(events.RosterEvent{
		EventType: events.MemberAdded,
		MemberID:  person.ID.String(),
		Name:      person.Name,
		Message:   person.Name + " joined the team",
	})
	c.Redirect(http.StatusSeeOther, "/team?toast=created")
}

func (s *Server) handleUpdateMember(c *gin.Context) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.renderTeam(c, http.StatusNotFound, nil, ErrorToast(team.Message(team.PersonNotFound)))
		return
	}

	var form MemberForm
	if err := c.ShouldBind(&form); err != nil {
		err = errors.Wrap(errors.InvalidInput(err.Error()), "invalid member form")
		s.log.Warn("invalid member form", "member_id", id, "error", err)
		s.renderTeam(c, errors.HTTPStatus(err), editModal(raw, form), ErrorToast(team.UserMessage(err, team.PersonUpdateFailure)))
		return
	}

	person, err := s.persons.Update(c.Request.Context(), models.Person{
		ID:           id,
		Name:         form.Name,
		Title:        form.Title,
		Compensation: form.Compensation,
	})
	if err != nil {
		s.log.Error("failed to update member", "member_id", id, "error", err)
		s.renderTeam(c, errors.HTTPStatus(err), editModal(raw, form), ErrorToast(team.UserMessage(err, team.PersonUpdateFailure)))
		return
	}

	s.events.Publish(events.RosterEvent{
		EventType: events.MemberUpdated,
		MemberID:  person.ID.String(),
		Name:      person.Name,
		Message:   person.Name + " was updated",
	})
	c.Redirect(http.StatusSeeOther, "/team?toast=updated")
}

func (s *Server) handleDeleteMember(c *gin.Context) {
	ctx := c.Request.Context()

	person, err := s.lookupMember(c, c.Param("id"))
	if err == nil {
		err = s.persons.Delete(ctx, person.ID)
	}
	if err != nil {
		s.log.Error("failed to delete member", "member_id", c.Param("id"), "error", err)
		s.renderTeam(c, errors.HTTPStatus(err), nil, ErrorToast(team.UserMessage(err, team.PersonDeleteFailure)))
		return
	}

	s.events.Publish(events.RosterEvent{
		EventType: events.MemberDeleted,
		MemberID:  person.ID.String(),
		Name:      person.Name,
		Message:   person.Name + " left the team",
	})
	c.Redirect(http.StatusSeeOther, "/team?toast=deleted")
}

func (s *Server) lookupMember(c *gin.Context, raw string) (models.Person, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		notFound := errors.NotFound("member " + raw)
		notFound.Cause = team.PersonNotFound
		return models.Person{}, notFound
	}
	return s.persons.Get(c.Request.Context(), id)
}

// renderTeam renders the team page around the current roster. A roster
// fetch failure replaces toast, since an empty table would otherwise be
// indistinguishable from an empty team.
func (s *Server) renderTeam(c *gin.Context, status int, modal *MemberModal, toast *ToastMessage) {
	page := s.page(c, "Team")
	page.Toast = toast

	persons, err := s.persons.List(c.Request.Context())
	if err != nil {
		s.log.Error("failed to list members", "error", err)
		page.Toast = ErrorToast(team.UserMessage(err, team.PersonsFetchFailure))
		if status < http.StatusBadRequest {
			status = errors.HTTPStatus(err)
		}
	}

	s.renderTemplate(c, status, "team.html", TeamPage{
		Page:           page,
		Members:        memberRows(persons),
		Modal:          modal,
		AddButtonClass: addButtonClass,
	})
}
