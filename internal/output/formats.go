// internal/output/formats.go
package output

// Canonical output format names shared by the CLI and the writer factory.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Formats lists every pair output format in display order.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatJSONL, FormatSummary}
}
