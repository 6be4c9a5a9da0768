package buddy

import "fmt"

func Example() {
	var pool Pool
	if err := Init(&pool, uintptr(1)<<MinK); err != nil {
		panic(err)
	}
	defer Destroy(&pool)

	a, _ := Malloc(&pool, 128)
	b, _ := Malloc(&pool, 4096)
	fmt.Println(a != nil, b != nil)

	Free(&pool, a)
	Free(&pool, b)

	fmt.Println(Available(&pool) == uintptr(1)<<MinK)

	// Output:
	// true true
	// true
}
