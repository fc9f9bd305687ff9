package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfd/shelf/internal/inventory"
	"github.com/shelfd/shelf/internal/store/memstore"
	"github.com/shelfd/shelf/pkg/types"
)

func newTestApp(t *testing.T) (*inventory.Model, *App) {
	t.Helper()
	created := time.Date(2023, 11, 15, 10, 13, 20, 0, time.UTC)
	model := inventory.New(memstore.New(), inventory.WithClock(func() time.Time { return created }))
	return model, NewApp(model, nil)
}

func press(app *App, keys ...string) {
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		app.Update(msg)
	}
}

func fillForm(app *App, in types.ProductInput) {
	app.form.name.SetValue(in.Name)
	app.form.price.SetValue(in.Price)
	app.form.stock.SetValue(in.Stock)
	app.form.category = -1
	for i, c := range categories {
		if c == in.Category {
			app.form.category = i
		}
	}
}

func TestInitialRenderShowsPersistedState(t *testing.T) {
	persisted := []types.Product{
		{ID: 1, Name: "Widget", Price: 9.99, Category: types.CategoryElectronics, Stock: 3, CreatedAt: "15/11/2023 10:13:20"},
	}
	model := inventory.New(memstore.New(persisted...))
	app := NewApp(model, nil)

	require.Len(t, app.products, 1, "construction renders persisted state immediately")
	view := app.View()
	assert.Contains(t, view, "Widget")
	assert.Contains(t, view, "R$ 9.99")
	assert.Contains(t, view, "Estoque: 3")
	assert.Contains(t, view, "Eletrônicos")
	assert.Contains(t, view, "Total de produtos: 1")
}

func TestEmptyListRendersPlaceholder(t *testing.T) {
	_, app := newTestApp(t)
	view := app.View()
	assert.Contains(t, view, "Nenhum produto encontrado")
	assert.Contains(t, view, "ajuste a busca")
}

func TestSubmitValidFormAddsProductAndClearsForm(t *testing.T) {
	model, app := newTestApp(t)
	fillForm(app, types.ProductInput{Name: " Widget ", Price: "9.99", Category: types.CategoryElectronics, Stock: "3"})

	press(app, "enter")

	require.Len(t, model.AllProducts(), 1)
	got := model.AllProducts()[0]
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 9.99, got.Price)
	assert.Equal(t, 3, got.Stock)
	assert.Equal(t, "15/11/2023 10:13:20", got.CreatedAt)

	assert.Equal(t, types.ProductInput{}, app.FormData(), "form clears after a successful add")
	assert.Equal(t, modalAlert, app.modal, "success acknowledgment is shown")
	assert.Contains(t, app.alertText, "Widget")

	press(app, "enter") // dismiss the acknowledgment
	assert.Equal(t, modalNone, app.modal)
}

func TestSubmitEmptyNameBlocksAndKeepsForm(t *testing.T) {
	model, app := newTestApp(t)
	fillForm(app, types.ProductInput{Name: "", Price: "9.99", Category: types.CategoryElectronics, Stock: "3"})

	press(app, "enter")

	assert.Empty(t, model.AllProducts(), "validator blocks before any model call")
	assert.Equal(t, modalAlert, app.modal)
	assert.Equal(t, errNameRequired.Error(), app.alertText)
	assert.Equal(t, "9.99", app.FormData().Price, "form is not cleared on a blocked submit")
}

func TestAlertModalSwallowsKeysUntilDismissed(t *testing.T) {
	model, app := newTestApp(t)
	fillForm(app, types.ProductInput{Name: "", Price: "1", Category: types.CategoryOther, Stock: "1"})
	press(app, "enter")
	require.Equal(t, modalAlert, app.modal)

	press(app, "d") // dismisses the alert instead of reaching the list
	assert.Equal(t, modalNone, app.modal)
	assert.Empty(t, model.AllProducts())
}

func TestRemoveRequiresConfirmation(t *testing.T) {
	model, app := newTestApp(t)
	fillForm(app, types.ProductInput{Name: "Gone", Price: "1", Category: types.CategoryOther, Stock: "1"})
	press(app, "enter", "enter") // submit, dismiss acknowledgment
	require.Len(t, model.AllProducts(), 1)

	app.setFocus(focusList)
	press(app, "d")
	assert.Equal(t, modalConfirm, app.modal)
	assert.Contains(t, app.confirmMsg, "Gone")
	assert.Len(t, model.AllProducts(), 1, "nothing removed before confirmation")

	press(app, "n")
	assert.Equal(t, modalNone, app.modal)
	assert.Len(t, model.AllProducts(), 1, "cancel keeps the product")

	press(app, "d", "s")
	assert.Empty(t, model.AllProducts(), "confirmed removal reaches the model")
	assert.Equal(t, modalAlert, app.modal, "removal is acknowledged")
	assert.Contains(t, app.alertText, "removido")
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	model, app := newTestApp(t)
	fillForm(app, types.ProductInput{Name: "Teclado", Price: "120", Category: types.CategoryElectronics, Stock: "5"})
	press(app, "enter", "enter")
	fillForm(app, types.ProductInput{Name: "Camiseta", Price: "29.9", Category: types.CategoryClothing, Stock: "10"})
	press(app, "enter", "enter")
	require.Len(t, model.AllProducts(), 2)

	app.setFocus(focusSearch)
	press(app, "c", "a", "m")

	require.Len(t, app.products, 1, "list shows only matches while typing")
	assert.Equal(t, "Camiseta", app.products[0].Name)
	assert.Equal(t, 2, app.stats.Total, "stats stay unfiltered")

	view := app.View()
	assert.Contains(t, view, "Camiseta")
	assert.NotContains(t, view, "Teclado")
}

func TestTabCyclesFocus(t *testing.T) {
	_, app := newTestApp(t)
	require.Equal(t, focusName, app.focus)

	for _, want := range []focusArea{focusPrice, focusCategory, focusStock, focusSearch, focusList, focusName} {
		press(app, "tab")
		assert.Equal(t, want, app.focus)
	}
}

func TestUnknownCategoryRendersRawValue(t *testing.T) {
	persisted := []types.Product{
		{ID: 1, Name: "Martelo", Price: 35, Category: "ferramentas", Stock: 2, CreatedAt: "15/11/2023 10:13:20"},
	}
	app := NewApp(inventory.New(memstore.New(persisted...)), nil)
	assert.Contains(t, app.View(), "ferramentas")
}
