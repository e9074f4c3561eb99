package layouter_test

import (
	"context"
	"fmt"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/layouter"
	"github.com/drodenkirchen/rio/pkg/source"
)

// Example computes the layout of a row with two text children and reads
// the authoritative placement of the second child.
func Example() {
	root := component.New(1, component.KindRow, []component.Component{
		component.New(2, component.KindText, nil),
		component.New(3, component.KindText, nil),
	}, component.WithSpacing(10))

	// The client report: text metrics live on the rendering client, so
	// leaf natural sizes come in from outside.
	first := layouter.NewRecord()
	first.NaturalWidth, first.NaturalHeight = 30, 20
	second := layouter.NewRecord()
	second.NaturalWidth, second.NaturalHeight = 50, 20

	snap := &layouter.Snapshot{
		WindowWidth:  200,
		WindowHeight: 100,
		Records: map[component.ID]*layouter.Record{
			1: layouter.NewRecord(),
			2: first,
			3: second,
		},
	}

	ly, err := layouter.New(context.Background(), root, source.NewStatic(snap))
	if err != nil {
		fmt.Println("compute:", err)
		return
	}

	rec := ly.Should()[3]
	fmt.Printf("child 3 at %.0f, width %.0f\n", rec.OuterLeft, rec.AllocatedOuterWidth)
	// Output: child 3 at 40, width 50
}
