// Package control wires view events to model operations. The controller is
// the only component that talks to both sides, and it carries no business
// rules of its own beyond sequencing: translate the event, mutate the model,
// pull fresh derived state, push it to the view.
package control

import "github.com/shelfd/shelf/pkg/types"

// Model is the data-owning side the controller drives.
type Model interface {
	AddProduct(in types.ProductInput) types.Product
	RemoveProduct(id int64) bool
	SetSearchTerm(term string)
	FilteredProducts() []types.Product
	AllProducts() []types.Product
	Stats() types.Stats
}

// View is the render/input side. It captures raw input, validates it, and
// invokes the handlers registered through the Bind methods; it never touches
// the model or persistence directly.
type View interface {
	DisplayProducts(products []types.Product)
	UpdateStats(stats types.Stats)
	ClearForm()
	Acknowledge(message string)

	// BindAdd registers the handler invoked after a submitted form passes
	// validation. The view clears the form afterwards.
	BindAdd(handler func(in types.ProductInput))
	// BindRemove registers the handler invoked after the user confirms a
	// delete on the product with the given id.
	BindRemove(handler func(id int64))
	// BindSearch registers the handler invoked on every search keystroke
	// with the current raw text.
	BindSearch(handler func(term string))
}

// Controller coordinates one model and one view.
type Controller struct {
	model Model
	view  View
}

// New registers the controller as the handler for all three view event
// sources and performs the initial render, so the view reflects persisted
// state immediately.
func New(model Model, view View) *Controller {
	c := &Controller{model: model, view: view}
	view.BindAdd(c.HandleAdd)
	view.BindRemove(c.HandleRemove)
	view.BindSearch(c.HandleSearch)
	c.Refresh()
	return c
}

// HandleAdd delegates to the model, re-renders, and acknowledges.
func (c *Controller) HandleAdd(in types.ProductInput) {
	p := c.model.AddProduct(in)
	c.Refresh()
	c.view.Acknowledge("Produto \"" + p.Name + "\" adicionado com sucesso!")
}

// HandleRemove delegates to the model. Only an actual removal re-renders and
// acknowledges; an absent id is a silent no-op.
func (c *Controller) HandleRemove(id int64) {
	if !c.model.RemoveProduct(id) {
		return
	}
	c.Refresh()
	c.view.Acknowledge("Produto removido com sucesso!")
}

// HandleSearch forwards the term and re-renders. Every keystroke triggers a
// full re-render; there is no debouncing.
func (c *Controller) HandleSearch(term string) {
	c.model.SetSearchTerm(term)
	c.Refresh()
}

// Refresh is the single re-render path: filtered products and stats are
// pulled from the model and pushed to the view together, so the view never
// goes stale relative to the model.
func (c *Controller) Refresh() {
	c.view.DisplayProducts(c.model.FilteredProducts())
	c.view.UpdateStats(c.model.Stats())
}
