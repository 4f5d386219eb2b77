package tui

import (
	"fmt"
	"strconv"
	"strings"
)

func (m directoryModel) View() string {
	var b strings.Builder

	switch m.screen {
	case screenLogin:
		b.WriteString(m.viewLogin())
	case screenForm:
		b.WriteString(m.viewForm())
	case screenConfirm:
		b.WriteString(m.viewConfirm())
	default:
		b.WriteString(m.viewList())
	}

	return appStyle.Render(b.String())
}

func (m directoryModel) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hospital Services & Prices"))
	b.WriteString("\n\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString("Search: " + m.searchInput.View() + "\n\n")
	}

	if len(m.categories) > 0 {
		chips := make([]string, 0, len(m.categories))
		for i, c := range m.categories {
			label := c.Name
			if c.Icon != nil {
				label = *c.Icon + " " + label
			}
			style := chipStyle
			if m.selectedCats[c.ID] {
				style = chipOnStyle
			}
			if i == m.chipIdx && !m.searching {
				label = "[" + label + "]"
			}
			chips = append(chips, style.Render(label))
		}
		b.WriteString(strings.Join(chips, " "))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.visible) == 0 && len(m.rows) == 0:
		b.WriteString("No services cached yet. Press s to refresh once online.\n")
	case len(m.visible) == 0:
		b.WriteString("Nothing matches the current search and filters.\n")
	default:
		lastCategory := ""
		for i, row := range m.visible {
			category := row.DisplayCategory()
			if category != lastCategory {
				if lastCategory != "" {
					b.WriteString("\n")
				}
				header := category
				if icon := row.DisplayIcon(); icon != "" {
					header = icon + " " + header
				}
				b.WriteString(categoryStyle.Render(header) + "\n")
				lastCategory = category
			}

			line := fmt.Sprintf("  %s  %s", row.Name, priceStyle.Render(formatPrice(row.Price)))
			if row.Description != nil {
				line += statusStyle.Render("  " + *row.Description)
			}
			if i == m.idx {
				line = selectedStyle.Render("›" + line[1:])
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}

	help := "/ search · ←→ pick category · space toggle · c copy · s refresh · a sign in · q quit"
	if m.signedIn() {
		help = "/ search · space toggle category · n new · e edit · ctrl+d delete · s refresh · a sign out · q quit"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m directoryModel) viewLogin() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Administrator Sign-In"))
	b.WriteString("\n\n")
	for _, input := range m.loginInputs {
		b.WriteString(input.View() + "\n")
	}
	b.WriteString("\n")

	if m.signingIn {
		b.WriteString(statusStyle.Render("Signing in...") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("enter submit · tab next field · esc back"))

	return b.String()
}

func (m directoryModel) viewForm() string {
	var b strings.Builder

	title := "New Service"
	if m.editingID != "" {
		title = "Edit Service"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Name", "Price", "Description"}
	for i, input := range m.formInputs {
		b.WriteString(labels[i] + ": " + input.View() + "\n")
	}

	b.WriteString("Category: ")
	if len(m.categories) == 0 {
		b.WriteString(errorStyle.Render("none available") + "\n")
	} else {
		c := m.categories[m.formCatIdx]
		label := c.Name
		if c.Icon != nil {
			label = *c.Icon + " " + label
		}
		b.WriteString(fmt.Sprintf("‹ %s › (%d/%d)\n", label, m.formCatIdx+1, len(m.categories)))
	}
	b.WriteString("\n")

	if m.saving {
		b.WriteString(statusStyle.Render("Saving...") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("enter save · tab next field · ←→ category · esc cancel"))

	return b.String()
}

func (m directoryModel) viewConfirm() string {
	body := fmt.Sprintf("Delete %q?\n\ny delete · n cancel", m.confirmName)
	return overlayStyle.Render(body)
}

func formatPriceInput(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
