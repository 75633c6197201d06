package critical_test

import (
	"fmt"

	"github.com/katalvlaran/skillpath/catalogue"
	"github.com/katalvlaran/skillpath/critical"
)

// ExampleSearch ranks the 120 orders of the default critical set.
func ExampleSearch() {
	g, err := catalogue.Open("")
	if err != nil {
		panic(err)
	}
	res, err := critical.Search(g, []string{"S3", "S5", "S7", "S8", "S9"}, critical.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(len(res.Ranked))
	for _, r := range res.Top {
		fmt.Println(r.Rank, r.Order, r.TotalWait)
	}
	// Output:
	// 120
	// 1 [S3 S9 S8 S5 S7] 745
	// 2 [S3 S9 S5 S8 S7] 750
	// 3 [S3 S8 S9 S5 S7] 755
}
