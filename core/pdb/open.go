// core/pdb/open.go
package pdb

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// structReader hands the decompressed stream to the parser and closes the
// whole stack (gzip reader first, then the file) when done.
type structReader struct {
	io.Reader
	closers []io.Closer
}

func (r *structReader) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path for structure reading. "-" selects stdin. gzip is
// detected by peeking at the stream's magic bytes, so compressed input
// works on stdin as well; a ".gz" suffix forces decompression so a
// mislabeled file fails loudly instead of parsing as garbage.
func openReader(path string) (io.ReadCloser, error) {
	var (
		src     io.Reader
		closers []io.Closer
	)
	if path == "-" {
		src = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
		closers = append(closers, fh)
	}

	br := bufio.NewReader(src)
	head, _ := br.Peek(2)
	gzipped := len(head) == 2 && head[0] == 0x1f && head[1] == 0x8b

	if gzipped || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
			return nil, err
		}
		return &structReader{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
	}
	return &structReader{Reader: br, closers: closers}, nil
}
