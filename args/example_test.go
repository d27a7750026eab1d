package args_test

import (
	"errors"
	"fmt"

	"github.com/ardnew/clasp/args"
)

func ExampleParse() {
	a, err := args.Parse("l,p#,d*", []string{"-lp", "8080", "-d", "/tmp"})
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(a.GetBoolean('l'), a.GetInt('p'), a.GetString('d'))
	fmt.Println(a.Cardinality(), a.Has('l'), a.Has('x'))
	// Output:
	// true 8080 /tmp
	// 3 true false
}

func ExampleParse_error() {
	_, err := args.Parse("d##", []string{"-d", "notanumber"})

	var ae *args.Error
	if errors.As(err, &ae) {
		flag, _ := ae.Flag()
		fmt.Println(ae.Code(), string(flag), ae.Parameter())
	}

	fmt.Println(errors.Is(err, args.ErrInvalidDouble))
	fmt.Println(err)
	// Output:
	// InvalidDouble d notanumber
	// true
	// argument -d expects a double but was "notanumber"
}

func ExampleWithCollectUnexpected() {
	_, err := args.Parse("a", []string{"-xa", "-y"},
		args.WithCollectUnexpected(true))

	var errs args.Errors
	if errors.As(err, &errs) {
		fmt.Println(string(errs.Flags()))
	}
	// Output: xy
}

func ExampleCompile() {
	sch, err := args.Compile("v, o*, n#, r##")
	if err != nil {
		fmt.Println(err)

		return
	}

	for flag, kind := range sch.All() {
		fmt.Printf("%c %s %q\n", flag, kind, kind.Suffix())
	}
	// Output:
	// v boolean ""
	// o string "*"
	// n integer "#"
	// r double "##"
}
