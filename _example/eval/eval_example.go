package main

import (
	"fmt"
	"log"

	"github.com/higumachan/conslisp"
	"github.com/higumachan/conslisp/cell"
)

func main() {
	st := cell.NewSymbolTable()
	if err := st.Alias("cond", cell.SymCond); err != nil {
		log.Fatal("Alias:", err)
	}

	e := conslisp.NewEvaluator(st)

	inputs := []string{
		`(car (quote (1 2 3)))`,
		`(cdr '(1 2 3))`,
		`(car '("test" "nadeko"))`,
		`(cond ((cdr '(1)) 1))`,
	}

	for _, input := range inputs {
		res, err := e.ReadEval([]byte(input))
		if err != nil {
			fmt.Printf("%s => error: %v\n", input, err)
			continue
		}
		s, err := res.Render(st)
		if err != nil {
			log.Fatal("Render:", err)
		}
		fmt.Printf("%s => %s\n", input, s)
	}
}
