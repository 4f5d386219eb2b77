// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndurmanov/medirates/internal/service"
	"github.com/ndurmanov/medirates/models"
)

type screen int

const (
	screenList screen = iota
	screenLogin
	screenForm
	screenConfirm
)

type directoryModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen  screen
	loading bool
	status  string
	errMsg  string

	rows       []models.ServiceWithCategory
	visible    []models.ServiceWithCategory
	categories []models.Category
	idx        int

	searching    bool
	searchInput  textinput.Model
	selectedCats map[string]bool
	chipIdx      int

	syncing bool

	loginInputs []textinput.Model
	loginFocus  int
	signingIn   bool

	formInputs []textinput.Model
	formFocus  int
	formCatIdx int
	editingID  string
	saving     bool

	confirmID   string
	confirmName string
}

func newDirectoryModel(ctx context.Context, services *service.ClientServices) directoryModel {
	search := textinput.New()
	search.Placeholder = "search services"
	search.Width = 40

	return directoryModel{
		ctx:          ctx,
		services:     services,
		loading:      true,
		searchInput:  search,
		selectedCats: make(map[string]bool),
	}
}

func (m directoryModel) Init() tea.Cmd {
	return m.cmdLoadCatalog()
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m directoryModel) cmdLoadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{
			rows:       m.services.CatalogService.Services(m.ctx),
			categories: m.services.CatalogService.Categories(m.ctx),
		}
	}
}

func (m directoryModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{outcome: m.services.SyncService.Trigger(m.ctx, models.TriggerManual)}
	}
}

func (m directoryModel) cmdSignIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.services.AuthService.SignIn(m.ctx, email, password)
		return signInDoneMsg{session: session, err: err}
	}
}

func (m directoryModel) cmdSignOut() tea.Cmd {
	return func() tea.Msg {
		return signOutDoneMsg{err: m.services.AuthService.SignOut(m.ctx)}
	}
}

func (m directoryModel) cmdSave(editingID string, input models.ServiceInput) tea.Cmd {
	return func() tea.Msg {
		if editingID == "" {
			_, err := m.services.AdminService.CreateService(m.ctx, input)
			return saveDoneMsg{err: err}
		}
		return saveDoneMsg{err: m.services.AdminService.UpdateService(m.ctx, editingID, input)}
	}
}

func (m directoryModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.services.AdminService.DeleteService(m.ctx, id)}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m directoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		m.rows = msg.rows
		m.categories = msg.categories
		m.applyFilter()
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		switch msg.outcome {
		case models.SyncCompleted:
			m.status = "Up to date"
			m.errMsg = ""
			m.loading = true
			return m, m.cmdLoadCatalog()
		case models.SyncSkippedOffline:
			m.status = "Offline, showing cached prices"
		case models.SyncDeferred:
			m.status = "Checking the network, try again shortly"
		case models.SyncCoalesced:
			m.status = "Refresh already running"
		default:
			m.errMsg = "Refresh failed, showing cached prices"
		}
		return m, nil

	case signInDoneMsg:
		m.signingIn = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.screen = screenList
		m.status = fmt.Sprintf("Signed in as %s", msg.session.Email)
		m.errMsg = ""
		return m, nil

	case signOutDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Signed out"
		m.errMsg = ""
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.screen = screenList
		m.status = "Saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCatalog()

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Service removed"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCatalog()
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	}
	return m.updateList(msg)
}

func (m directoryModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.applyFilter()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case "left", "h":
		if m.chipIdx > 0 {
			m.chipIdx--
		}
	case "right", "l":
		if m.chipIdx < len(m.categories)-1 {
			m.chipIdx++
		}
	case " ":
		if m.chipIdx < len(m.categories) {
			id := m.categories[m.chipIdx].ID
			if m.selectedCats[id] {
				delete(m.selectedCats, id)
			} else {
				m.selectedCats[id] = true
			}
			m.applyFilter()
		}
	case "esc":
		if len(m.selectedCats) > 0 || m.searchInput.Value() != "" {
			m.selectedCats = make(map[string]bool)
			m.searchInput.SetValue("")
			m.applyFilter()
		}

	case "c":
		row, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(fmt.Sprintf("%s — %s", row.Name, formatPrice(row.Price))); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"

	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Refreshing..."
		m.errMsg = ""
		return m, m.cmdSync()

	case "a":
		if m.signedIn() {
			return m, m.cmdSignOut()
		}
		m.startLogin()
		return m, textinput.Blink

	case "n":
		if !m.signedIn() {
			m.status = "Sign in to manage services"
			return m, nil
		}
		m.startForm(nil)
		return m, textinput.Blink

	case "e":
		if !m.signedIn() {
			m.status = "Sign in to manage services"
			return m, nil
		}
		row, ok := m.current()
		if !ok {
			m.status = "No service selected"
			return m, nil
		}
		m.startForm(&row)
		return m, textinput.Blink

	case "ctrl+d":
		if !m.signedIn() {
			m.status = "Sign in to manage services"
			return m, nil
		}
		row, ok := m.current()
		if !ok {
			m.status = "No service selected"
			return m, nil
		}
		m.screen = screenConfirm
		m.confirmID = row.ID
		m.confirmName = row.Name
	}

	return m, nil
}

func (m directoryModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		id := m.confirmID
		m.screen = screenList
		m.confirmID = ""
		m.confirmName = ""
		return m, m.cmdDelete(id)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.screen = screenList
		m.confirmID = ""
		m.confirmName = ""
	case keyMsg.String() == "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (m *directoryModel) applyFilter() {
	filter := service.CatalogFilter{Query: m.searchInput.Value()}
	for id, on := range m.selectedCats {
		if on {
			filter.CategoryIDs = append(filter.CategoryIDs, id)
		}
	}

	m.visible = filter.Apply(m.rows)
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m directoryModel) current() (models.ServiceWithCategory, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.ServiceWithCategory{}, false
	}
	return m.visible[m.idx], true
}

func (m directoryModel) signedIn() bool {
	return m.services.AuthService.Session().Valid()
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func trimmedValue(input textinput.Model) string {
	return strings.TrimSpace(input.Value())
}
