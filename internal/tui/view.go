package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shelfd/shelf/pkg/types"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginBottom(1)
	focusedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	detailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	rowStyle       = lipgloss.NewStyle().Padding(0, 0, 1, 0)
	alertStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#F7B801")).Padding(1, 3)
	emptyListLines = []string{"Nenhum produto encontrado", "Adicione um produto pelo formulário ou ajuste a busca."}
)

// View renders the whole screen. Modals replace everything else so they
// block, matching the one-message-at-a-time alert contract.
func (a *App) View() string {
	switch a.modal {
	case modalAlert:
		return a.renderModal(a.alertText, "Pressione qualquer tecla para continuar")
	case modalConfirm:
		return a.renderModal(a.confirmMsg, "s → confirmar    n → cancelar")
	}

	header := headerStyle.Render("⌸ SHELF — catálogo de produtos")
	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderForm(),
		"",
		a.renderSearch(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.renderStats(),
		"",
		a.renderProducts(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(left),
		panelStyle.Render(right),
	)

	sections := []string{header, body}
	if logPanel := a.renderJournalPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections, dimStyle.Render(a.helpLine()))
	return strings.Join(sections, "\n")
}

func (a *App) helpLine() string {
	if a.focus == focusList {
		return "↑/↓ navegar    d → remover    Tab → formulário    q → sair"
	}
	return "Tab → próximo campo    Enter → adicionar    Esc → lista    Ctrl+C → sair"
}

func (a *App) fieldLabel(text string, focus focusArea) string {
	if a.focus == focus {
		return focusedStyle.Render("▸ " + text)
	}
	return labelStyle.Render("  " + text)
}

func (a *App) renderForm() string {
	category := "Selecione..."
	if v := a.form.categoryValue(); v != "" {
		category = types.CategoryLabel(v)
	}
	if a.focus == focusCategory {
		category = "◂ " + category + " ▸"
	}
	lines := []string{
		titleStyle.Render("Novo produto"),
		a.fieldLabel("Nome", focusName),
		"  " + a.form.name.View(),
		a.fieldLabel("Preço", focusPrice),
		"  " + a.form.price.View(),
		a.fieldLabel("Categoria", focusCategory),
		"  " + labelStyle.Render(category),
		a.fieldLabel("Estoque", focusStock),
		"  " + a.form.stock.View(),
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderSearch() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.fieldLabel("Buscar", focusSearch),
		"  "+a.search.View(),
	)
}

func (a *App) renderStats() string {
	return titleStyle.Render(fmt.Sprintf(
		"Total de produtos: %d    Valor do estoque: %s %s",
		a.stats.Total, types.CurrencyPrefix, a.stats.TotalValue,
	))
}

// renderProducts redraws the list panel from scratch in the order given by
// the controller. An empty collection renders the fixed placeholder.
func (a *App) renderProducts() string {
	if len(a.products) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(emptyListLines[0]),
			dimStyle.Render(emptyListLines[1]),
		)
	}
	rows := make([]string, 0, len(a.products))
	for i, p := range a.products {
		rows = append(rows, a.renderProductRow(p, a.focus == focusList && i == a.selection))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderProductRow(p types.Product, selected bool) string {
	line1 := labelStyle.Bold(true).Render(p.Name)
	line2 := fmt.Sprintf("%s · Estoque: %d · %s",
		types.FormatPrice(p.Price), p.Stock, types.CategoryLabel(p.Category))
	line3 := detailStyle.Render(fmt.Sprintf("Adicionado em: %s · id %d", p.CreatedAt, p.ID))
	content := strings.Join([]string{line1, line2, line3}, "\n")
	if selected {
		return selectedStyle.Render(content)
	}
	return rowStyle.Render(content)
}

func (a *App) renderJournalPanel() string {
	if a.journal == nil {
		return ""
	}
	lines := a.journal.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	head := titleStyle.Render("Atividade recente")
	body := dimStyle.Render(strings.Join(lines, "\n"))
	return panelStyle.Render(head + "\n" + body)
}

func (a *App) renderModal(message, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render(message),
		"",
		dimStyle.Render(hint),
	)
	box := alertStyle.Render(content)
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
