package bucketmap_test

import (
	"fmt"

	"github.com/amp-labs/bucketmap/bucketmap"
	"github.com/amp-labs/bucketmap/keyed"
)

func ExampleNew() {
	m, err := bucketmap.New[keyed.String, int]()
	if err != nil {
		panic(err)
	}

	_ = m.Set("apples", 3)
	_ = m.Set("oranges", 5)
	_ = m.Set("apples", 4) // overwrite

	count, _ := m.Get("apples")
	fmt.Println(count)
	fmt.Println(m.Len())
	// Output:
	// 4
	// 2
}

func ExampleMap_GetOrElse() {
	m, err := bucketmap.New[keyed.Int, string]()
	if err != nil {
		panic(err)
	}

	_ = m.Set(1, "one")

	present, _ := m.GetOrElse(1, "unknown")
	absent, _ := m.GetOrElse(2, "unknown")

	fmt.Println(present)
	fmt.Println(absent)
	// Output:
	// one
	// unknown
}

func ExampleNewLocked() {
	inner, err := bucketmap.New[keyed.String, int]()
	if err != nil {
		panic(err)
	}

	m := bucketmap.NewLocked(inner)

	_ = m.Set("safe", 1) // usable from any goroutine

	value, _ := m.Get("safe")
	fmt.Println(value)
	// Output:
	// 1
}
