package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndurmanov/medirates/models"
)

const (
	formFieldName = iota
	formFieldPrice
	formFieldDescription
	formFieldCount
)

func (m *directoryModel) startLogin() {
	email := textinput.New()
	email.Placeholder = "email"
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	m.loginInputs = []textinput.Model{email, password}
	m.loginFocus = 0
	m.errMsg = ""
	m.screen = screenLogin
}

func (m directoryModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.screen = screenList
			return m, nil
		case "tab", "shift+tab", "up", "down":
			m.loginInputs[m.loginFocus].Blur()
			if keyMsg.String() == "shift+tab" || keyMsg.String() == "up" {
				m.loginFocus = (m.loginFocus - 1 + len(m.loginInputs)) % len(m.loginInputs)
			} else {
				m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
			}
			m.loginInputs[m.loginFocus].Focus()
			return m, nil
		case "enter":
			if m.signingIn {
				return m, nil
			}
			email := trimmedValue(m.loginInputs[0])
			password := m.loginInputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}
			m.signingIn = true
			m.errMsg = ""
			return m, m.cmdSignIn(email, password)
		}
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

// startForm opens the service form, prefilled from row when editing.
func (m *directoryModel) startForm(row *models.ServiceWithCategory) {
	name := textinput.New()
	name.Placeholder = "service name"
	name.Width = 40
	name.Focus()

	price := textinput.New()
	price.Placeholder = "price, e.g. 45.00"
	price.Width = 40

	description := textinput.New()
	description.Placeholder = "description (optional)"
	description.Width = 40

	m.editingID = ""
	m.formCatIdx = 0

	if row != nil {
		m.editingID = row.ID
		name.SetValue(row.Name)
		price.SetValue(formatPriceInput(row.Price))
		if row.Description != nil {
			description.SetValue(*row.Description)
		}
		if row.CategoryID != nil {
			for i, c := range m.categories {
				if c.ID == *row.CategoryID {
					m.formCatIdx = i
					break
				}
			}
		}
	}

	m.formInputs = []textinput.Model{name, price, description}
	m.formFocus = formFieldName
	m.errMsg = ""
	m.screen = screenForm
}

func (m directoryModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.screen = screenList
			return m, nil
		case "tab", "down":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % formFieldCount
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab", "up":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + formFieldCount) % formFieldCount
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "left":
			if m.formCatIdx > 0 {
				m.formCatIdx--
			}
			return m, nil
		case "right":
			if m.formCatIdx < len(m.categories)-1 {
				m.formCatIdx++
			}
			return m, nil
		case "enter":
			if m.saving {
				return m, nil
			}
			if len(m.categories) == 0 {
				m.errMsg = "no categories available yet, refresh first"
				return m, nil
			}
			input := models.ServiceInput{
				Name:        trimmedValue(m.formInputs[formFieldName]),
				CategoryID:  m.categories[m.formCatIdx].ID,
				Price:       trimmedValue(m.formInputs[formFieldPrice]),
				Description: trimmedValue(m.formInputs[formFieldDescription]),
			}
			m.saving = true
			m.errMsg = ""
			return m, m.cmdSave(m.editingID, input)
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}
