// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"prip-core/engine"
	"prip/internal/jsonlutil"
	"prip/internal/output"
)

// StartPairJSONLWriter streams each pair as one JSON line (v1), numbering
// rows in arrival order.
func StartPairJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Pair, <-chan error) {
	row := 0
	return jsonlutil.Start[engine.Pair](out, bufSize,
		func(enc *json.Encoder, p engine.Pair) error {
			row++
			return enc.Encode(output.ToAPIPair(row, p))
		},
		IsBrokenPipe,
	)
}
