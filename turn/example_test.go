package turn_test

import (
	"fmt"

	"github.com/desh2608/spyder/turn"
)

func ExampleNewTurnList() {
	a, _ := turn.New("A", 0, 5)
	b, _ := turn.New("B", 5, 10)
	tl, err := turn.NewTurnList(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}

	start, end, _ := tl.Bounds()
	fmt.Println(tl.Speakers())
	fmt.Println(start, end)
	// Output:
	// [A B]
	// 0 10
}
