package dbg

import "iter"

// PrintSeq writes the header for f, then one line per pair yielded by seq
// as it arrives. Names cannot be aligned because later names are unknown.
func (p *Printer) PrintSeq(f Frame, seq iter.Seq2[string, any]) error {
	if err := p.WriteHeader(f); err != nil {
		return err
	}
	var writeErr error
	seq(func(name string, value any) bool {
		if err := p.writeVar(name, value, 0); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

// PrintChan writes the header for f, then one line per Var received from
// ch until it is closed. It is a thin wrapper around [Printer.PrintSeq].
func (p *Printer) PrintChan(f Frame, ch <-chan Var) error {
	return p.PrintSeq(f, chanToSeq(ch))
}

func chanToSeq(ch <-chan Var) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for v := range ch {
			if !yield(v.Name, v.Value) {
				return
			}
		}
	}
}
