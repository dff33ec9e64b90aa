package narray_test

import (
	"fmt"

	"github.com/numgo-ml/numgo/narray"
)

func ExampleVector() {
	v, err := narray.Vector[int](5).Range(0, 5).Generate()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Data())
	// Output: [0 1 2 3 4]
}

func ExampleBuilder_LinSpace() {
	v, err := narray.Vector[float64](5).LinSpace(0, 1, 5).Generate()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Data())
	// Output: [0 0.25 0.5 0.75 1]
}

func ExampleMatrix() {
	m, err := narray.Matrix[int](2, 3).FullOf(7).Generate()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Shape(), m.Data())
	// Output: [2 3] [7 7 7 7 7 7]
}

func ExampleArray_Slice() {
	v, _ := narray.Vector[int](6).Range(10, 16).Generate()

	window, err := v.Slice(narray.Between(1, 4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(window.Materialize().Data())
	// Output: [11 12 13]
}

func ExampleArray_Row() {
	m, _ := narray.Matrix[int](3, 3).Range(0, 9).Generate()

	row, _ := m.Row(2)
	col, _ := m.Column(0)
	fmt.Println(row.Materialize().Data(), col.Data())
	// Output: [6 7 8] [0 3 6]
}

func ExampleArray_Transpose() {
	m, _ := narray.Matrix[int](2, 3).Range(0, 6).Generate()

	mt, _ := m.Transpose()
	fmt.Println(mt.Shape(), mt.Data())
	// Output: [3 2] [0 3 1 4 2 5]
}

func ExampleBuilder_Seed() {
	a, _ := narray.Vector[float64](3).Uniform(0, 1).Seed(42).Generate()
	b, _ := narray.Vector[float64](3).Uniform(0, 1).Seed(42).Generate()

	fmt.Println(a.Equal(b))
	// Output: true
}
