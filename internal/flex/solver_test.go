package flex

import "testing"

func TestRoundHalfEvenTiesToEven(t *testing.T) {
	cases := map[float64]int{
		0.5: 0,
		1.5: 2,
		2.5: 2,
		3.5: 4,
		-0.5: 0,
	}
	for in, want := range cases {
		if got := RoundHalfEven(in); got != want {
			t.Errorf("RoundHalfEven(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestSingleChildSpaceBetweenPlacedAtStart(t *testing.T) {
	root := StyleRecord{
		Direction: Row,
		Justify:   JustifySpaceBetween,
		Width:     Dim{Kind: DimDots, Dots: 500},
		Height:    Dim{Kind: DimDots, Dots: 100},
		Children: []StyleRecord{
			{Width: Dim{Kind: DimDots, Dots: 100}, Height: Dim{Kind: DimDots, Dots: 100}, FlexBasis: -1},
		},
	}
	tree := DefaultSolver{}.Solve(root, Constraints{AvailableWidth: 500, AvailableHeight: 100})
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	if tree.Children[0].Box.X != 0 {
		t.Errorf("single child with justify:space-between: X = %d, want 0", tree.Children[0].Box.X)
	}
}

func TestFlexGrowDistributesRemainingSpace(t *testing.T) {
	root := StyleRecord{
		Direction: Row,
		Width:     Dim{Kind: DimDots, Dots: 300},
		Height:    Dim{Kind: DimDots, Dots: 50},
		Children: []StyleRecord{
			{Width: Dim{Kind: DimDots, Dots: 50}, Height: Dim{Kind: DimDots, Dots: 50}, FlexBasis: -1, FlexGrow: 1},
			{Width: Dim{Kind: DimDots, Dots: 50}, Height: Dim{Kind: DimDots, Dots: 50}, FlexBasis: -1, FlexGrow: 1},
		},
	}
	tree := DefaultSolver{}.Solve(root, Constraints{AvailableWidth: 300, AvailableHeight: 50})
	if got := tree.Children[0].Box.W; got != 150 {
		t.Errorf("child[0].W = %d, want 150", got)
	}
	if got := tree.Children[1].Box.W; got != 150 {
		t.Errorf("child[1].W = %d, want 150", got)
	}
	if got := tree.Children[1].Box.X; got != 150 {
		t.Errorf("child[1].X = %d, want 150", got)
	}
}

func TestShrinkNeverGoesBelowMinimum(t *testing.T) {
	root := StyleRecord{
		Direction: Row,
		Width:     Dim{Kind: DimDots, Dots: 100},
		Height:    Dim{Kind: DimDots, Dots: 50},
		Children: []StyleRecord{
			{Width: Dim{Kind: DimDots, Dots: 80}, Height: Dim{Kind: DimDots, Dots: 50}, FlexBasis: -1, MinWidth: 70},
			{Width: Dim{Kind: DimDots, Dots: 80}, Height: Dim{Kind: DimDots, Dots: 50}, FlexBasis: -1, MinWidth: 70},
		},
	}
	tree := DefaultSolver{}.Solve(root, Constraints{AvailableWidth: 100, AvailableHeight: 50})
	for i, c := range tree.Children {
		if c.Box.W < 70 {
			t.Errorf("child[%d].W = %d, below minimum 70", i, c.Box.W)
		}
	}
}

func TestPercentResolvesAgainstParentAvailable(t *testing.T) {
	root := StyleRecord{
		Direction: Row,
		Width:     Dim{Kind: DimDots, Dots: 1000},
		Height:    Dim{Kind: DimDots, Dots: 100},
		Children: []StyleRecord{
			{Width: Dim{Kind: DimPercent, Percent: 0.5}, Height: Dim{Kind: DimDots, Dots: 100}, FlexBasis: -1},
			{Width: Dim{Kind: DimPercent, Percent: 0.5}, Height: Dim{Kind: DimDots, Dots: 100}, FlexBasis: -1},
		},
	}
	tree := DefaultSolver{}.Solve(root, Constraints{AvailableWidth: 1000, AvailableHeight: 100})
	if got := tree.Children[0].Box.W; got != 500 {
		t.Errorf("child[0].W = %d, want 500", got)
	}
}

func TestEmptyContainerSizesToPadding(t *testing.T) {
	root := StyleRecord{
		Direction: Column,
		Width:     Dim{Kind: DimAuto},
		Height:    Dim{Kind: DimAuto},
		Padding:   Sides{Top: 5, Right: 5, Bottom: 5, Left: 5},
	}
	tree := DefaultSolver{}.Solve(root, Constraints{AvailableWidth: 1000, AvailableHeight: 1000})
	if tree.Box.W != 10 || tree.Box.H != 10 {
		t.Errorf("empty container box = %+v, want 10x10", tree.Box)
	}
}

func TestCrossAxisAlignCenter(t *testing.T) {
	root := StyleRecord{
		Direction: Row,
		Width:     Dim{Kind: DimDots, Dots: 200},
		Height:    Dim{Kind: DimDots, Dots: 100},
		AlignFrac: 0.5,
		Children: []StyleRecord{
			{Width: Dim{Kind: DimDots, Dots: 50}, Height: Dim{Kind: DimDots, Dots: 20}, FlexBasis: -1},
		},
	}
	tree := DefaultSolver{}.Solve(root, Constraints{AvailableWidth: 200, AvailableHeight: 100})
	if got := tree.Children[0].Box.Y; got != 40 {
		t.Errorf("centered child Y = %d, want 40", got)
	}
}
