package flex

// DefaultSolver is the pure-Go implementation of the Solver contract: the
// "stack/flex row/column with gap, shrink, grow, and alignment" subset
// spec.md §4.5 and §9 describe as sufficient, used in place of a bound
// native flexbox library (spec.md treats that binding as swappable).
type DefaultSolver struct{}

// RoundHalfEven rounds v to the nearest integer, breaking exact .5 ties to
// the even neighbor — the rounding mode spec.md §9 mandates for
// percentage-to-dot conversion.
func RoundHalfEven(v float64) int {
	floor := int(v)
	if float64(floor) > v {
		floor-- // int() truncates toward zero; step down to the true floor
	}
	frac := v - float64(floor)
	switch {
	case frac < 0.5:
		return floor
	case frac > 0.5:
		return floor + 1
	default:
		if floor%2 == 0 {
			return floor
		}
		return floor + 1
	}
}

func resolveDim(d Dim, available int) (value int, isAuto bool) {
	switch d.Kind {
	case DimDots:
		return d.Dots, false
	case DimFill:
		if available < 0 {
			available = 0
		}
		return available, false
	case DimPercent:
		return RoundHalfEven(float64(available) * d.Percent), false
	default: // DimAuto
		return 0, true
	}
}

// Solve lays out root and its descendants within c, returning a BoxTree
// whose coordinates are relative to root's own box origin (so a caller
// composing subtrees only needs to add its own absolute origin once).
func (DefaultSolver) Solve(root StyleRecord, c Constraints) BoxTree {
	return solveNode(root, c.AvailableWidth, c.AvailableHeight)
}

// solveNode resolves one container (or leaf) given the width/height
// available to it from its parent.
func solveNode(n StyleRecord, availW, availH int) BoxTree {
	if len(n.Children) == 0 {
		w, wAuto := resolveDim(n.Width, availW)
		h, hAuto := resolveDim(n.Height, availH)
		if wAuto {
			w = n.IntrinsicWidth + n.Padding.Horizontal()
		}
		if hAuto {
			h = n.IntrinsicHeight + n.Padding.Vertical()
		}
		return BoxTree{Box: Box{W: w, H: h}}
	}

	isRow := n.Direction == Row

	// Determine this container's own resolved width/height. For an Auto
	// dimension we don't yet know the content-derived value; it's filled
	// in below once children are sized.
	outerW, wAuto := resolveDim(n.Width, availW)
	outerH, hAuto := resolveDim(n.Height, availH)

	contentWAvail := availW - n.Padding.Horizontal()
	contentHAvail := availH - n.Padding.Vertical()
	if !wAuto {
		contentWAvail = outerW - n.Padding.Horizontal()
	}
	if !hAuto {
		contentHAvail = outerH - n.Padding.Vertical()
	}

	var mainAvail, crossAvail int
	if isRow {
		mainAvail, crossAvail = contentWAvail, contentHAvail
	} else {
		mainAvail, crossAvail = contentHAvail, contentWAvail
	}

	// Percentages resolve against the parent's available space, per
	// spec.md §4.5, not the (possibly still-unknown) container size.
	percentBasisMain, percentBasisCross := availW, availH
	if isRow {
		// already main=width, cross=height
	} else {
		percentBasisMain, percentBasisCross = availH, availW
	}

	type resolved struct {
		child StyleRecord
		basis int
		min   int
		cross int
	}

	children := make([]resolved, len(n.Children))
	naturalTotal := 0
	for i, child := range n.Children {
		var mainDim, crossDim Dim
		var childMin int
		if isRow {
			mainDim, crossDim = child.Width, child.Height
			childMin = child.MinWidth
		} else {
			mainDim, crossDim = child.Height, child.Width
			childMin = child.MinHeight
		}

		var basis int
		switch {
		case child.FlexBasis >= 0:
			basis = child.FlexBasis
		case mainDim.Kind == DimPercent:
			basis = RoundHalfEven(float64(percentBasisMain) * mainDim.Percent)
		case mainDim.Kind == DimFill:
			basis = 0
		case mainDim.Kind == DimDots:
			basis = mainDim.Dots
		default: // auto
			if isRow {
				basis = child.IntrinsicWidth
			} else {
				basis = child.IntrinsicHeight
			}
		}

		var crossSize int
		switch crossDim.Kind {
		case DimFill:
			crossSize = crossAvail
		case DimPercent:
			crossSize = RoundHalfEven(float64(percentBasisCross) * crossDim.Percent)
		case DimDots:
			crossSize = crossDim.Dots
		default:
			if isRow {
				crossSize = child.IntrinsicHeight
			} else {
				crossSize = child.IntrinsicWidth
			}
		}

		children[i] = resolved{child: child, basis: basis, min: childMin, cross: crossSize}
		naturalTotal += basis
	}

	gapTotal := 0
	if len(children) > 1 {
		gapTotal = n.Gap * (len(children) - 1)
	}
	naturalTotal += gapTotal

	var containerMain int
	if isRow {
		if wAuto {
			containerMain = naturalTotal
		} else {
			containerMain = mainAvail
		}
	} else {
		if hAuto {
			containerMain = naturalTotal
		} else {
			containerMain = mainAvail
		}
	}

	remaining := containerMain - naturalTotal

	finalMain := make([]int, len(children))
	for i, r := range children {
		finalMain[i] = r.basis
	}

	if remaining > 0 {
		totalGrow := 0.0
		for _, r := range children {
			totalGrow += r.child.FlexGrow
		}
		if totalGrow > 0 {
			distributed := 0
			for i, r := range children {
				if r.child.FlexGrow <= 0 {
					continue
				}
				share := RoundHalfEven(float64(remaining) * (r.child.FlexGrow / totalGrow))
				finalMain[i] += share
				distributed += share
			}
			remaining -= distributed
		}
	} else if remaining < 0 {
		deficit := -remaining
		totalShrinkWeight := 0.0
		for _, r := range children {
			shrink := r.child.FlexShrink
			if r.child.FlexShrink == 0 && r.child.FlexGrow == 0 && r.child.FlexBasis < 0 {
				shrink = 1 // default flex-shrink: 1, per spec.md §4.5
			}
			totalShrinkWeight += shrink * float64(r.basis)
		}
		if totalShrinkWeight > 0 {
			for i, r := range children {
				shrink := r.child.FlexShrink
				if r.child.FlexShrink == 0 && r.child.FlexGrow == 0 && r.child.FlexBasis < 0 {
					shrink = 1
				}
				weight := shrink * float64(r.basis)
				if weight <= 0 {
					continue
				}
				reduction := RoundHalfEven(float64(deficit) * weight / totalShrinkWeight)
				newSize := r.basis - reduction
				if newSize < r.min {
					newSize = r.min
				}
				finalMain[i] = newSize
			}
		}
		remaining = 0
	}

	if isRow && wAuto {
		containerMain = naturalTotal
	}
	if !isRow && hAuto {
		containerMain = naturalTotal
	}

	totalFinal := 0
	for _, v := range finalMain {
		totalFinal += v
	}
	totalFinal += gapTotal
	leftover := containerMain - totalFinal
	if leftover < 0 {
		leftover = 0
	}

	offsets := make([]int, len(children))
	gapExtra := 0
	startOffset := 0
	switch n.Justify {
	case JustifyCenter:
		startOffset = leftover / 2
	case JustifyEnd:
		startOffset = leftover
	case JustifySpaceBetween:
		if len(children) > 1 {
			gapExtra = leftover / (len(children) - 1)
		} else {
			startOffset = 0
		}
	case JustifySpaceAround:
		if len(children) > 0 {
			startOffset = leftover / (2 * len(children))
			gapExtra = leftover / len(children)
		}
	}

	cursor := startOffset
	for i := range children {
		offsets[i] = cursor
		cursor += finalMain[i] + n.Gap
		if i < len(children)-1 {
			cursor += gapExtra
		}
	}

	// Resolve each child's subtree recursively, then place it.
	crossContentForChildren := crossAvail
	result := BoxTree{Children: make([]BoxTree, len(children))}
	for i, r := range children {
		var childAvailW, childAvailH int
		if isRow {
			childAvailW, childAvailH = finalMain[i], r.cross
		} else {
			childAvailW, childAvailH = r.cross, finalMain[i]
		}
		sub := solveNode(r.child, childAvailW, childAvailH)
		// Force the child's own box to the dimensions flex distribution
		// assigned it (sub.Box may have recomputed auto sizes that match,
		// but the distributed main size is authoritative).
		if isRow {
			sub.Box.W = finalMain[i]
			if sub.Box.H == 0 {
				sub.Box.H = r.cross
			}
		} else {
			sub.Box.H = finalMain[i]
			if sub.Box.W == 0 {
				sub.Box.W = r.cross
			}
		}

		crossOffset := 0
		if isRow {
			crossOffset = RoundHalfEven(float64(crossContentForChildren-sub.Box.H) * n.AlignFrac)
			sub.Box.X = n.Padding.Left + offsets[i]
			sub.Box.Y = n.Padding.Top + crossOffset
		} else {
			crossOffset = RoundHalfEven(float64(crossContentForChildren-sub.Box.W) * n.AlignFrac)
			sub.Box.Y = n.Padding.Top + offsets[i]
			sub.Box.X = n.Padding.Left + crossOffset
		}
		result.Children[i] = sub
	}

	finalW, finalH := outerW, outerH
	if isRow {
		if wAuto {
			finalW = containerMain + n.Padding.Horizontal()
		}
		if hAuto {
			maxCross := 0
			for _, r := range children {
				if r.cross > maxCross {
					maxCross = r.cross
				}
			}
			finalH = maxCross + n.Padding.Vertical()
		}
	} else {
		if hAuto {
			finalH = containerMain + n.Padding.Vertical()
		}
		if wAuto {
			maxCross := 0
			for _, r := range children {
				if r.cross > maxCross {
					maxCross = r.cross
				}
			}
			finalW = maxCross + n.Padding.Horizontal()
		}
	}

	result.Box = Box{W: finalW, H: finalH}
	return result
}
