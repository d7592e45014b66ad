package render

import (
	"escp2render/internal/escp"
	"escp2render/internal/node"
)

// styleDiff emits the minimum-byte toggle sequence to move the printer
// from "from" to "to", in the fixed order spec.md §4.7 requires for
// byte-exact reproducibility: CPI/pitch first, then condensed, then the
// boolean style flags in a fixed enumeration.
func styleDiff(from, to node.Resolved) ([]byte, error) {
	var buf []byte

	fromBase, fromForced := from.CPI.Base()
	toBase, toForced := to.CPI.Base()
	if fromBase != toBase {
		cmd, err := cpiCommand(toBase)
		if err != nil {
			return nil, err
		}
		buf = append(buf, cmd...)
	}

	fromCondensed := from.Condensed || fromForced
	toCondensed := to.Condensed || toForced
	if fromCondensed != toCondensed {
		if toCondensed {
			buf = append(buf, escp.CondensedOn()...)
		} else {
			buf = append(buf, escp.CondensedOff()...)
		}
	}

	if from.Bold != to.Bold {
		if to.Bold {
			buf = append(buf, escp.BoldOn()...)
		} else {
			buf = append(buf, escp.BoldOff()...)
		}
	}
	if from.Italic != to.Italic {
		if to.Italic {
			buf = append(buf, escp.ItalicOn()...)
		} else {
			buf = append(buf, escp.ItalicOff()...)
		}
	}
	if from.Underline != to.Underline {
		n := 0
		if to.Underline {
			n = 1
		}
		cmd, err := escp.Underline(n)
		if err != nil {
			return nil, err
		}
		buf = append(buf, cmd...)
	}
	if from.DoubleStrike != to.DoubleStrike {
		if to.DoubleStrike {
			buf = append(buf, escp.DoubleStrikeOn()...)
		} else {
			buf = append(buf, escp.DoubleStrikeOff()...)
		}
	}
	if from.DoubleWidth != to.DoubleWidth {
		n := 0
		if to.DoubleWidth {
			n = 1
		}
		cmd, err := escp.DoubleWidth(n)
		if err != nil {
			return nil, err
		}
		buf = append(buf, cmd...)
	}
	if from.DoubleHeight != to.DoubleHeight {
		n := 0
		if to.DoubleHeight {
			n = 1
		}
		cmd, err := escp.DoubleHeight(n)
		if err != nil {
			return nil, err
		}
		buf = append(buf, cmd...)
	}

	return buf, nil
}

func cpiCommand(base node.CPI) ([]byte, error) {
	switch base {
	case node.CPI10:
		return escp.CPI10(), nil
	case node.CPI12:
		return escp.CPI12(), nil
	case node.CPI15:
		return escp.CPI15(), nil
	default:
		return escp.CPI10(), nil
	}
}
