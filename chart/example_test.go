// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart_test

import (
	"fmt"

	"github.com/aclements/chartcore/chart"
)

func ExampleLinear_Map() {
	s := chart.NewLinear(chart.Domain{Lo: 1990, Hi: 2020}, chart.Range{Lo: 0, Hi: 740})
	fmt.Println(s.Map(2005), s.Invert(370))
	// Output:
	// 370 2005
}

func ExampleZeroBased() {
	records := []chart.Record{
		{"1990": 12.5, "2020": 40.0},
		{"1990": 7.0, "2020": nil},
	}
	fmt.Println(chart.ZeroBased(records, 100, chart.Field("1990"), chart.Field("2020")))
	fmt.Println(chart.ZeroBased(records, 0, chart.Field("1990"), chart.Field("2020")))
	// Output:
	// [0,100]
	// [0,40]
}
