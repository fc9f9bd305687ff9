package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfd/shelf/pkg/types"
)

// Validation failure messages, surfaced one at a time through the alert
// modal. Validation stops at the first violated rule.
var (
	errNameRequired     = errors.New("Por favor, insira um nome válido para o produto!")
	errPriceRequired    = errors.New("Por favor, insira um preço válido (maior que zero)!")
	errCategoryRequired = errors.New("Por favor, selecione uma categoria!")
	errStockRequired    = errors.New("Por favor, insira uma quantidade de estoque válida!")
)

// validateInput enforces the form contract: name non-empty after trimming,
// price present and positive, category selected, stock present and
// non-negative. It returns the first violation only.
func validateInput(in types.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errNameRequired
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || price <= 0 {
		return errPriceRequired
	}
	if in.Category == "" {
		return errCategoryRequired
	}
	stock, err := strconv.Atoi(strings.TrimSpace(in.Stock))
	if err != nil || stock < 0 {
		return errStockRequired
	}
	return nil
}

// form holds the four product inputs. Name, price, and stock are free-text
// fields; category cycles through the known set with the arrow keys.
type form struct {
	name     textinput.Model
	price    textinput.Model
	stock    textinput.Model
	category int // index into categories; -1 when nothing is selected
}

// categories is the selectable closed set, in display order.
var categories = types.Categories()

func newForm() form {
	name := textinput.New()
	name.Placeholder = "Nome do produto"
	name.CharLimit = 80
	name.Width = 28

	price := textinput.New()
	price.Placeholder = "Preço (ex: 9.99)"
	price.CharLimit = 16
	price.Width = 28

	stock := textinput.New()
	stock.Placeholder = "Estoque (ex: 3)"
	stock.CharLimit = 8
	stock.Width = 28

	return form{name: name, price: price, stock: stock, category: -1}
}

// data returns the raw, unparsed field values.
func (f *form) data() types.ProductInput {
	return types.ProductInput{
		Name:     f.name.Value(),
		Price:    f.price.Value(),
		Category: f.categoryValue(),
		Stock:    f.stock.Value(),
	}
}

func (f *form) categoryValue() string {
	if f.category < 0 || f.category >= len(categories) {
		return ""
	}
	return categories[f.category]
}

// clear resets every field to its empty default.
func (f *form) clear() {
	f.name.SetValue("")
	f.price.SetValue("")
	f.stock.SetValue("")
	f.category = -1
}

// cycleCategory moves the category selection by delta, wrapping around.
func (f *form) cycleCategory(delta int) {
	if len(categories) == 0 {
		return
	}
	f.category = (f.category + delta + len(categories)) % len(categories)
}

// updateField forwards a message to the text input for the focused field.
func (f *form) updateField(focus focusArea, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusPrice:
		f.price, cmd = f.price.Update(msg)
	case focusStock:
		f.stock, cmd = f.stock.Update(msg)
	}
	return cmd
}

// setFocus focuses the text input backing the given field, if any.
func (f *form) setFocus(focus focusArea) {
	f.name.Blur()
	f.price.Blur()
	f.stock.Blur()
	switch focus {
	case focusName:
		f.name.Focus()
	case focusPrice:
		f.price.Focus()
	case focusStock:
		f.stock.Focus()
	}
}
