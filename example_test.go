package shapes_test

import (
	"fmt"

	"honnef.co/go/shapes"
)

func ExampleThickArrow() {
	a := shapes.NewThickArrow(nil)
	a.SetWidth(120)
	a.SetHeight(100)
	a.SetHeadWidth(60)
	a.SetBodyHeight(34)
	for _, pt := range a.Path().Points() {
		fmt.Println(pt)
	}

	// Output:
	// (-60, 0)
	// (0, -50)
	// (0, -17)
	// (60, -17)
	// (60, 17)
	// (0, 17)
	// (0, 50)
}

func ExampleThickArrow_MoveControlPoint() {
	a := shapes.NewThickArrow(nil)
	a.SetWidth(120)
	a.SetHeight(100)
	a.SetHeadWidth(60)

	// Drag the tip up: the arrow turns about its tail and grows.
	ok, err := a.MoveControlPoint(shapes.ArrowTip, 0, -120, 0)
	fmt.Println(ok, err, a.Frame())

	// A head wider than the arrow is clamped and reported.
	fmt.Println(a.SetHeadWidth(500), a.HeadWidth())

	// Output:
	// true <nil> {0 -60 450 170 100}
	// false 170
}

func ExampleTemplate() {
	styles := shapes.NewStyleSet()
	proto := shapes.NewBox(styles)
	tmpl, _ := shapes.NewTemplate("Box", proto)

	s, _ := tmpl.CreateShape()
	thick := styles.AddLineStyle(&shapes.LineStyle{Name: "Thick", Width: 4})
	proto.SetLineStyle(thick)

	ls, _ := s.LineStyle()
	fmt.Println(ls.Name)

	// Output:
	// Thick
}
