package core_test

import (
	"fmt"

	"github.com/gridlegend/gridlegend/pkg/core"
)

func ExampleColorFor() {
	col, err := core.ColorFor("solar")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(col)
	// Output: gold
}

func ExampleLabelFor() {
	for _, loc := range []core.Locale{core.LocaleEN, core.LocaleJP} {
		label, _ := core.LabelFor(loc, "demand")
		fmt.Println(loc, label)
	}
	// Output:
	// en Demand
	// jp 需要
}

func ExampleRegions() {
	fmt.Println(core.Regions()[:4])
	// Output: [japan tokyo hokkaido tohuku]
}

func ExampleNew() {
	reg, err := core.New(core.Config{
		Labels: map[core.Locale]map[string]string{
			core.LocaleEN: {"demand": "Load"},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	label, _ := reg.LabelFor(core.LocaleEN, "demand")
	fmt.Println(label)
	// Output: Load
}
