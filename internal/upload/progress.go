package upload

import "io"

// progressReader counts bytes as the transport consumes them and reports the
// running percentage. With an unknown total it stays silent; the terminal
// outcome is still reported by the surrounding send.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report func(pct float64)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += int64(n)
		if p.total > 0 && p.report != nil {
			p.report(float64(p.read) * 100 / float64(p.total))
		}
	}
	return n, err
}
