package guard_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/guard"
)

func ExampleCheckIsInsideRange() {
	port, err := guard.CheckIsInsideRange(8080, 1, 65535, "port")
	fmt.Println(port, err)

	_, err = guard.CheckIsInsideRange(15, 1, 10, "x")
	fmt.Println(err)
	// Output:
	// 8080 <nil>
	// x should be inside range [1, 10] but its value was '15'
}

func ExampleCheckIsInWhitelist() {
	_, err := guard.CheckIsInWhitelist("z", []string{"a", "b", "c"}, "letter")
	fmt.Println(err)
	fmt.Println(errors.Is(err, guard.ErrNotInWhitelist))
	// Output:
	// letter value of 'z' is not a valid value. Valid values are: a, b and c
	// true
}

func ExampleCheckIsHexString() {
	v, err := guard.CheckIsHexString("0x0102", "payload")
	fmt.Println(v, err)

	_, err = guard.CheckIsHexString("01", "payload", guard.WithMinByteSize(2))
	fmt.Println(err)
	// Output:
	// 0x0102 <nil>
	// payload hex string value 01 contains 1 bytes which is less than min byte size requirement of 2
}

func ExampleMust() {
	name := guard.Must(guard.CheckIsNotNullOrBlank("gopher", "name"))
	fmt.Println(name)
	// Output: gopher
}
