// Shared helpers for shelf CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shelfd/shelf/internal/inventory"
	"github.com/shelfd/shelf/internal/journal"
	"github.com/shelfd/shelf/internal/store/jsonfile"
	"github.com/shelfd/shelf/internal/store/sqlite"
	"github.com/shelfd/shelf/pkg/types"
)

// openModel resolves the data directory, opens the configured store backend,
// and returns the rehydrated model. The returned closer releases backend
// resources; callers must defer it.
func (st *state) openModel() (*inventory.Model, func() error, error) {
	dataDir, err := st.resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{Backend: st.cfgBackend, DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	var store types.Store
	closer := func() error { return nil }
	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := sqlite.Open(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		store, closer = s, s.Close
	default:
		s, err := jsonfile.Open(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open json store: %w", err)
		}
		store = s
	}

	jrnl, err := journal.Open(dataDir)
	if err != nil {
		// The journal is best-effort; the model runs without one.
		jrnl = nil
	}

	return inventory.New(store, inventory.WithJournal(jrnl)), closer, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// printProductTable prints products in a human-readable table format.
func printProductTable(w io.Writer, products []types.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK\tCREATED")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, p.Name, types.FormatPrice(p.Price), types.CategoryLabel(p.Category), p.Stock, p.CreatedAt)
	}
	tw.Flush()
	fmt.Fprint(w, sb.String())
}
