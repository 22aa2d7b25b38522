package filter_test

import (
	"fmt"

	"github.com/challey74/netinv/field"
	"github.com/challey74/netinv/filter"
	"github.com/challey74/netinv/host"
	"github.com/challey74/netinv/registry"
)

func ExampleFilter() {
	reg := registry.MustNew(
		field.String("platform"),
	)

	hosts := []*host.Record{
		{Name: "sw01", Data: map[string]any{"platform": "ios"}},
		{Name: "sw02", Data: map[string]any{"platform": "iosxe"}},
		{Name: "sw03", Data: map[string]any{"platform": "nxos"}},
	}

	// --filter-platform ios,iosxe
	criteria, err := filter.ParseCriteria(reg, "platform", "ios,iosxe")
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, rec := range filter.Filter(hosts, criteria, false) {
		fmt.Println(rec.Name)
	}

	// --filter-platform ios,iosxe --exclude
	for _, rec := range filter.Filter(hosts, criteria, true) {
		fmt.Println(rec.Name)
	}

	// Output:
	// sw01
	// sw02
	// sw03
}

func ExampleNewCriterion() {
	reg := registry.MustNew(
		field.String("serial"),
	)

	// The type-tag override compares an integer against a string field.
	c, err := filter.NewCriterion(reg, "serial", filter.OpEquals, "int:1234")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v (%T)\n", c.Want, c.Want)

	// Output:
	// 1234 (int)
}
