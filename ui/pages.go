package ui

import (
	"html/template"
	"strconv"

	"teamdash/domain/nav"
	"teamdash/domain/team"
	"teamdash/models"
)

const addButtonClass = "bg-[#7734e7] px-8 py-2 rounded text-white transition-all duration-1000 ease-in-out hover:bg-[#8448e9]"

// Page holds what every page shell needs
type Page struct {
	Title string
	Nav   []nav.Link
	Toast *ToastMessage
}

// DashboardPage is the data for dashboard.html
type DashboardPage struct {
	Page
	Widgets []team.Widget
	Chart   template.HTML
}

// MemberRow is one roster table row
type MemberRow struct {
	ID           string
	Name         string
	Title        string
	Compensation string
}

// MemberModal is the add/edit member form
type MemberModal struct {
	Heading      string
	Action       string
	Submit       string
	Name         string
	Title        string
	Compensation string
}

// TeamPage is the data for team.html
type TeamPage struct {
	Page
	Members        []MemberRow
	Modal          *MemberModal
	AddButtonClass string
}

func memberRows(persons []models.Person) []MemberRow {
	rows := make([]MemberRow, len(persons))
	for i, p := range persons {
		rows[i] = MemberRow{
			ID:           p.ID.String(),
			Name:         p.Name,
			Title:        p.Title,
			Compensation: team.FormatCurrency(int64(p.Compensation)),
		}
	}
	return rows
}

func addModal(form MemberForm) *MemberModal {
	return &MemberModal{
		Heading:      "Add member",
		Action:       "/team/members",
		Submit:       "Add",
		Name:         form.Name,
		Title:        form.Title,
		Compensation: compensationValue(form.Compensation),
	}
}

func editModal(id string, form MemberForm) *MemberModal {
	return &MemberModal{
		Heading:      "Edit member",
		Action:       "/team/members/" + id,
		Submit:       "Save",
		Name:         form.Name,
		Title:        form.Title,
		Compensation: compensationValue(form.Compensation),
	}
}

func compensationValue(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
