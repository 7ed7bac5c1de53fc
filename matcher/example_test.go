package matcher_test

import (
	"fmt"

	"go.dw1.io/x/regexvec/diag"
	"go.dw1.io/x/regexvec/matcher"
	"go.dw1.io/x/regexvec/pattern"
	"go.dw1.io/x/regexvec/regexopts"
)

func ExampleCache() {
	store, err := pattern.New(pattern.Texts("a+", "b+"), 4, pattern.WithDiagnostics(diag.Discard))
	if err != nil {
		panic(err)
	}

	opts, err := regexopts.Parse(map[string]any{"case_insensitive": true})
	if err != nil {
		panic(err)
	}

	c := matcher.New(store, opts)
	defer c.Close()

	for i, s := range []string{"xAAx", "xBx", "aaa", "bbb"} {
		re, err := c.Get(i)
		if err != nil {
			panic(err)
		}
		fmt.Println(i, re.String(), re.FindString(s))
	}
	fmt.Printf("%+v\n", c.Stats())
	// Output:
	// 0 a+ AA
	// 1 b+ B
	// 2 a+ aaa
	// 3 b+ bbb
	// {Compiles:4 Reuses:0 Releases:3 Failures:0 IgnoredLimits:0}
}
