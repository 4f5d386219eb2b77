package tui

import "github.com/ndurmanov/medirates/models"

type catalogLoadedMsg struct {
	rows       []models.ServiceWithCategory
	categories []models.Category
}

type syncDoneMsg struct {
	outcome models.SyncOutcome
}

type signInDoneMsg struct {
	session models.Session
	err     error
}

type signOutDoneMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}
