package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfd/shelf/internal/inventory"
	"github.com/shelfd/shelf/internal/store/memstore"
	"github.com/shelfd/shelf/pkg/types"
)

// fakeView records every push from the controller and exposes the bound
// handlers so tests can fire view events directly.
type fakeView struct {
	displayed [][]types.Product
	stats     []types.Stats
	acks      []string
	cleared   int

	onAdd    func(types.ProductInput)
	onRemove func(int64)
	onSearch func(string)
}

func (v *fakeView) DisplayProducts(products []types.Product) {
	v.displayed = append(v.displayed, products)
}
func (v *fakeView) UpdateStats(stats types.Stats)        { v.stats = append(v.stats, stats) }
func (v *fakeView) ClearForm()                           { v.cleared++ }
func (v *fakeView) Acknowledge(message string)           { v.acks = append(v.acks, message) }
func (v *fakeView) BindAdd(h func(types.ProductInput))   { v.onAdd = h }
func (v *fakeView) BindRemove(h func(int64))             { v.onRemove = h }
func (v *fakeView) BindSearch(h func(string))            { v.onSearch = h }

func newFixture(t *testing.T) (*inventory.Model, *fakeView, *Controller) {
	t.Helper()
	model := inventory.New(memstore.New())
	view := &fakeView{}
	return model, view, New(model, view)
}

func TestNewBindsHandlersAndRendersInitialState(t *testing.T) {
	_, view, _ := newFixture(t)

	assert.NotNil(t, view.onAdd)
	assert.NotNil(t, view.onRemove)
	assert.NotNil(t, view.onSearch)
	require.Len(t, view.displayed, 1, "construction renders immediately")
	require.Len(t, view.stats, 1)
	assert.Equal(t, types.Stats{Total: 0, TotalValue: "0.00"}, view.stats[0])
}

func TestHandleAddRendersAndAcknowledges(t *testing.T) {
	model, view, _ := newFixture(t)

	view.onAdd(types.ProductInput{Name: " Widget ", Price: "9.99", Category: types.CategoryElectronics, Stock: "3"})

	require.Len(t, model.AllProducts(), 1)
	require.Len(t, view.displayed, 2)
	assert.Equal(t, "Widget", view.displayed[1][0].Name)
	assert.Equal(t, types.Stats{Total: 1, TotalValue: "29.97"}, view.stats[1])
	require.Len(t, view.acks, 1)
	assert.Contains(t, view.acks[0], "Widget")
	assert.Contains(t, view.acks[0], "adicionado com sucesso")
}

func TestHandleRemoveExistingID(t *testing.T) {
	model, view, _ := newFixture(t)
	view.onAdd(types.ProductInput{Name: "Gone", Price: "1", Stock: "1"})
	id := model.AllProducts()[0].ID
	renders := len(view.displayed)

	view.onRemove(id)

	assert.Empty(t, model.AllProducts())
	assert.Len(t, view.displayed, renders+1, "confirmed removal re-renders")
	assert.Contains(t, view.acks[len(view.acks)-1], "removido com sucesso")
}

func TestHandleRemoveAbsentIDIsSilent(t *testing.T) {
	model, view, _ := newFixture(t)
	view.onAdd(types.ProductInput{Name: "Stays", Price: "1", Stock: "1"})
	renders := len(view.displayed)
	acks := len(view.acks)

	view.onRemove(999)

	assert.Len(t, model.AllProducts(), 1)
	assert.Len(t, view.displayed, renders, "no re-render for a no-op id")
	assert.Len(t, view.acks, acks, "no acknowledgment for a no-op id")
}

func TestHandleSearchRendersEveryKeystroke(t *testing.T) {
	_, view, _ := newFixture(t)
	view.onAdd(types.ProductInput{Name: "Teclado", Price: "120", Category: types.CategoryElectronics, Stock: "5"})
	view.onAdd(types.ProductInput{Name: "Camiseta", Price: "29.9", Category: types.CategoryClothing, Stock: "10"})
	renders := len(view.displayed)

	for _, term := range []string{"t", "te", "tec"} {
		view.onSearch(term)
	}

	require.Len(t, view.displayed, renders+3, "one render per keystroke")
	last := view.displayed[len(view.displayed)-1]
	require.Len(t, last, 1)
	assert.Equal(t, "Teclado", last[0].Name)
}

func TestSearchDoesNotAffectStats(t *testing.T) {
	_, view, _ := newFixture(t)
	view.onAdd(types.ProductInput{Name: "A", Price: "10", Stock: "1"})
	view.onAdd(types.ProductInput{Name: "B", Price: "20", Stock: "1"})

	view.onSearch("A")

	last := view.stats[len(view.stats)-1]
	assert.Equal(t, 2, last.Total, "stats stay computed over the unfiltered collection")
	assert.Equal(t, "30.00", last.TotalValue)
}
