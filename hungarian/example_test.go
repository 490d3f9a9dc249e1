package hungarian_test

import (
	"fmt"

	"github.com/katalvlaran/kuhnmunkres/hungarian"
	"github.com/katalvlaran/kuhnmunkres/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAssignRows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Six students rank six seminar slots (higher is better).
//	Find the seating that maximizes total satisfaction.
//
// Complexity: O(n³) time, O(n²) memory
func ExampleAssignRows() {
	res, err := hungarian.AssignRows([][]float64{
		{62, 75, 80, 93, 95, 97},
		{75, 80, 82, 85, 71, 97},
		{80, 75, 81, 98, 90, 97},
		{78, 82, 84, 80, 50, 98},
		{90, 85, 85, 80, 85, 99},
		{65, 75, 80, 75, 68, 96},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.0f\nleftToRight=%v\n", res.Value, res.LeftToRight)
	// Output:
	// value=543
	// leftToRight=[4 1 3 2 0 5]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAssignMin
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three couriers, three parcels, travel minutes per pair.
//	Minimize total travel time.
func ExampleAssignMin() {
	cost, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{3, 3, 3},
		{3, 3, 2},
	})
	res, err := hungarian.AssignMin(cost)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range res.Pairs {
		fmt.Printf("courier %d → parcel %d (%.0f min)\n", p.Left, p.Right, p.Weight)
	}
	fmt.Printf("total=%.0f\n", res.Value)
	// Output:
	// courier 0 → parcel 0 (1 min)
	// courier 1 → parcel 1 (3 min)
	// courier 2 → parcel 2 (2 min)
	// total=6
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleVerify
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Check a result against the dual certificate it carries.
func ExampleVerify() {
	w, _ := matrix.NewDenseFromRows([][]float64{{7, 4, 3}, {3, 1, 2}, {3, 0, 0}})
	res, _ := hungarian.Assign(w)
	fmt.Println("certified:", hungarian.Verify(w, res, hungarian.DefaultEps) == nil)
	fmt.Println("lu:", res.LeftPotential, "lv:", res.RightPotential)
	// Output:
	// certified: true
	// lu: [4 2 0] lv: [3 0 0]
}
