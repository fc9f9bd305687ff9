// Package tui implements the interactive view for shelf as a bubbletea
// program. The App renders the catalog and captures input; business
// operations flow through the controller handlers bound at construction, so
// the app itself never mutates the model.
//
// Event flow: key press -> Update -> bound handler -> model mutation ->
// controller Refresh -> DisplayProducts/UpdateStats -> next View render.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfd/shelf/internal/control"
	"github.com/shelfd/shelf/internal/journal"
	"github.com/shelfd/shelf/pkg/types"
)

// focusArea identifies which input currently receives keystrokes.
type focusArea int

const (
	focusName focusArea = iota
	focusPrice
	focusCategory
	focusStock
	focusSearch
	focusList
	focusAreaCount
)

// modal identifies which blocking overlay, if any, is active. While a modal
// is up every other input is ignored, so messages are read one at a time.
type modal int

const (
	modalNone modal = iota
	modalAlert
	modalConfirm
)

// App is the bubbletea model. It implements control.View: the controller
// pushes rendered state into products/stats, and the Bind methods register
// the handlers the key dispatch below invokes.
type App struct {
	form    form
	search  textinput.Model
	journal *journal.Journal

	focus     focusArea
	selection int // selected row in the product list

	// State pushed by the controller.
	products []types.Product
	stats    types.Stats

	// Modal state.
	modal      modal
	alertText  string
	confirmID  int64
	confirmMsg string

	// Handlers registered by the controller.
	onAdd    func(types.ProductInput)
	onRemove func(id int64)
	onSearch func(term string)

	width  int
	height int
}

// NewApp builds the view and wires a controller over the given model. The
// journal may be nil; when present its tail renders in a side panel.
func NewApp(model control.Model, jrnl *journal.Journal) *App {
	search := textinput.New()
	search.Placeholder = "Buscar por nome ou categoria..."
	search.CharLimit = 60
	search.Width = 32

	a := &App{
		form:    newForm(),
		search:  search,
		journal: jrnl,
		focus:   focusName,
	}
	a.form.setFocus(focusName)
	control.New(model, a)
	return a
}

// Run starts the interactive UI and blocks until the user quits.
func Run(model control.Model, jrnl *journal.Journal) error {
	program := tea.NewProgram(NewApp(model, jrnl), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// DisplayProducts replaces the rendered product list, keeping the selection
// inside bounds. The order is the caller's; the view does not re-sort.
func (a *App) DisplayProducts(products []types.Product) {
	a.products = products
	if a.selection >= len(products) {
		a.selection = len(products) - 1
	}
	if a.selection < 0 {
		a.selection = 0
	}
}

// UpdateStats replaces the stats readout.
func (a *App) UpdateStats(stats types.Stats) {
	a.stats = stats
}

// FormData returns the raw, unvalidated field values.
func (a *App) FormData() types.ProductInput {
	return a.form.data()
}

// ClearForm resets every form field to its empty default.
func (a *App) ClearForm() {
	a.form.clear()
}

// Acknowledge surfaces a success message through the blocking alert modal.
func (a *App) Acknowledge(message string) {
	a.modal = modalAlert
	a.alertText = message
}

// BindAdd registers the submit-for-add handler.
func (a *App) BindAdd(handler func(in types.ProductInput)) { a.onAdd = handler }

// BindRemove registers the confirmed-remove handler.
func (a *App) BindRemove(handler func(id int64)) { a.onRemove = handler }

// BindSearch registers the live search handler.
func (a *App) BindSearch(handler func(term string)) { a.onSearch = handler }

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update dispatches one message. Modals swallow everything until dismissed;
// otherwise keys go to the focused input.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.modal {
		case modalAlert:
			return a.updateAlert(msg)
		case modalConfirm:
			return a.updateConfirm(msg)
		}
		return a.updateMain(msg)
	}
	return a, nil
}

// updateAlert dismisses the blocking alert on any key.
func (a *App) updateAlert(tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.modal = modalNone
	a.alertText = ""
	return a, nil
}

// updateConfirm handles the delete confirmation prompt.
func (a *App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "y", "enter":
		id := a.confirmID
		a.modal = modalNone
		a.confirmID = 0
		if a.onRemove != nil {
			a.onRemove(id)
		}
	case "n", "esc":
		a.modal = modalNone
		a.confirmID = 0
	}
	return a, nil
}

// updateMain handles keys when no modal is active.
func (a *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		a.setFocus((a.focus + 1) % focusAreaCount)
		return a, nil
	case "shift+tab":
		a.setFocus((a.focus + focusAreaCount - 1) % focusAreaCount)
		return a, nil
	case "esc":
		if a.focus == focusList {
			return a, tea.Quit
		}
		a.setFocus(focusList)
		return a, nil
	case "enter":
		if a.focus != focusSearch && a.focus != focusList {
			a.submitForm()
			return a, nil
		}
	}

	switch a.focus {
	case focusCategory:
		switch msg.String() {
		case "left", "h":
			a.form.cycleCategory(-1)
		case "right", "l", " ":
			a.form.cycleCategory(1)
		}
		return a, nil

	case focusList:
		switch msg.String() {
		case "up", "k":
			if a.selection > 0 {
				a.selection--
			}
		case "down", "j":
			if a.selection < len(a.products)-1 {
				a.selection++
			}
		case "d", "delete", "x":
			a.requestRemove()
		case "q":
			return a, tea.Quit
		}
		return a, nil

	case focusSearch:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		// Live search: every keystroke forwards the raw current text.
		if a.onSearch != nil {
			a.onSearch(a.search.Value())
		}
		return a, cmd

	default:
		return a, a.form.updateField(a.focus, msg)
	}
}

// setFocus moves keyboard focus between the form fields, the search box, and
// the product list.
func (a *App) setFocus(focus focusArea) {
	a.focus = focus
	a.form.setFocus(focus)
	if focus == focusSearch {
		a.search.Focus()
	} else {
		a.search.Blur()
	}
}

// submitForm validates the current form and, only on success, invokes the
// add handler and clears the form. The first violated rule blocks the submit
// with an alert; the form keeps its values so the user can fix the field.
func (a *App) submitForm() {
	data := a.FormData()
	if err := validateInput(data); err != nil {
		a.modal = modalAlert
		a.alertText = err.Error()
		return
	}
	if a.onAdd != nil {
		a.onAdd(data)
	}
	a.ClearForm()
}

// requestRemove opens the confirmation prompt for the selected product.
func (a *App) requestRemove() {
	if len(a.products) == 0 || a.selection >= len(a.products) {
		return
	}
	p := a.products[a.selection]
	a.modal = modalConfirm
	a.confirmID = p.ID
	a.confirmMsg = fmt.Sprintf("Remover o produto %q?", p.Name)
}
