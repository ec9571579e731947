package main

import (
	"fmt"

	"github.com/karlseguin/singlie"
	"github.com/wsxiaoys/terminal/color"
)

// render prints the list as "[topology] a b c" with the values highlighted.
func render[T any](label string, l *singlie.List[T], sep string) {
	fmt.Println(color.Sprintf("@{c}%-10s@{|} [%s] len=%d  ", label, l.Topology(), l.Len()) + color.Sprintf("@{g}%s@{|}", l.Join(sep)))
}
