package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamdash/domain/team"
	"teamdash/internal/errors"
)

func (s *Server) handleDashboard(c *gin.Context) {
	page := s.page(c, "Dashboard")
	status := http.StatusOK

	persons, err := s.persons.List(c.Request.Context())
	if err != nil {
		// the page still renders with zeroed widgets and an error toast
		s.log.Error("failed to list members for dashboard", "error", err)
		page.Toast = ErrorToast(team.UserMessage(err, team.PersonsFetchFailure))
		status = errors.HTTPStatus(err)
		persons = nil
	}

	summary := team.Aggregate(persons)
	s.renderTemplate(c, status, "dashboard.html", DashboardPage{
		Page:    page,
		Widgets: summary.Widgets(),
		Chart:   s.chart.RenderSummary(summary),
	})
}
