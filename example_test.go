package rematch_test

import (
	"fmt"

	"github.com/coregx/rematch"
)

func ExampleCompile() {
	re, err := rematch.Compile("a*4.+hi")
	if err != nil {
		fmt.Println("compile failed:", err)
		return
	}

	fmt.Println(re.MatchString("aaaaaa4uhi"))
	fmt.Println(re.MatchString("4uhi"))
	fmt.Println(re.MatchString("meow"))
	// Output:
	// true
	// true
	// false
}

func ExampleRegex_MatchString() {
	re := rematch.MustCompile("[^0-9]+")

	fmt.Println(re.MatchString("hello"))
	fmt.Println(re.MatchString("12a"))
	// Output:
	// true
	// false
}

func ExampleCompileSet() {
	set, err := rematch.CompileSet([]string{"[0-9]+", "[a-z]+", "exact"})
	if err != nil {
		fmt.Println("compile failed:", err)
		return
	}

	fmt.Println(set.Matches([]byte("123")))
	fmt.Println(set.Matches([]byte("exact")))
	// Output:
	// [0]
	// [1 2]
}
