package main

import (
	"log"
	"os"

	"github.com/higumachan/conslisp/cell"
	"github.com/higumachan/conslisp/parser"
)

func main() {
	input := `(fn_a (fn_b '(89 a b (67 3))) (fn_c 66 -3 53 "Hello world!"))`

	st := cell.NewSymbolTable()

	root, _, err := parser.Parse([]byte(input), st)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	if err := cell.Print(os.Stdout, st, root); err != nil {
		log.Fatal("cell.Print:", err)
	}
}
