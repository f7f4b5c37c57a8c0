// internal/output/history.go
package output

import (
	"fmt"
	"io"

	"prip/pkg/api"
)

// RunsTSVHeader is the header row for history listings.
const RunsTSVHeader = "id\tcreated_at\tstructure\tmodel\tchain\tresidues\tpairs\tmatches"

// WriteRunsText prints recorded runs as a TSV table, newest first as given.
func WriteRunsText(w io.Writer, runs []api.RunV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, RunsTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range runs {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%d\t%d\n",
			r.ID, r.CreatedAt, r.Structure, r.Model, r.Chain, r.Residues, r.Pairs, r.Matches,
		); err != nil {
			return err
		}
	}
	return nil
}
