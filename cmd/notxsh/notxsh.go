/*
notxsh is an interactive shell demonstrating the notation subsystem.
It keeps one process-wide grammar table, print registry, and scope registry;
declarations extend them immediately and every other input line is parsed
through the extended grammar, expanded through the macro patterns, and
printed back through the notation rules.

Commands:

	global <name> ...                       declare resolvable identifiers
	infix <assoc> <level> <token> <op> [scope]
	distfix <assoc> <level> <op> <format tokens> ...
	delimiter <scope> <open> <close>
	quit

<assoc> is left, right, or none. Any other input is parsed as an expression;
expression tokens must be separated by spaces.
*/
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/avlov/notx/declare"
	"github.com/avlov/notx/format"
	"github.com/avlov/notx/grammar"
	"github.com/avlov/notx/object"
	"github.com/avlov/notx/pattern"
	"github.com/avlov/notx/print"
	"github.com/avlov/notx/scope"
	"github.com/avlov/notx/term"
)

type shell struct {
	table  *grammar.Table
	prints *print.Registry
	elab   *pattern.EnvElaborator
	d      *declare.Declarator
}

func newShell() (*shell, error) {
	s := &shell{
		table:  grammar.NewTable(),
		prints: print.NewRegistry(),
		elab:   pattern.NewEnvElaborator(),
	}
	ad, e := object.NewAdapter(scope.NewRegistry(), s.table, s.prints)
	if e != nil {
		return nil, e
	}
	s.d = declare.New(s.elab, ad)
	return s, nil
}

func parseAssoc(word string) (format.Assoc, error) {
	switch word {
	case "left":
		return format.LeftAssoc, nil
	case "right":
		return format.RightAssoc, nil
	case "none":
		return format.NonAssoc, nil
	}
	return 0, fmt.Errorf("unknown associativity %q, expecting left, right, or none", word)
}

func (s *shell) handle(line string) error {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}

	switch words[0] {
	case "global":
		for _, name := range words[1:] {
			s.elab.Globals[name] = true
		}
		return nil

	case "infix":
		if len(words) < 5 {
			return fmt.Errorf("usage: infix <assoc> <level> <token> <op> [scope]")
		}
		assoc, e := parseAssoc(words[1])
		if e != nil {
			return e
		}
		level, e := strconv.Atoi(words[2])
		if e != nil {
			return e
		}
		scopeName := ""
		if len(words) > 5 {
			scopeName = words[5]
		}
		_, e = s.d.Infix(assoc, level, words[3], words[4], scopeName)
		return e

	case "distfix":
		if len(words) < 5 {
			return fmt.Errorf("usage: distfix <assoc> <level> <op> <format tokens> ...")
		}
		assoc, e := parseAssoc(words[1])
		if e != nil {
			return e
		}
		level, e := strconv.Atoi(words[2])
		if e != nil {
			return e
		}
		a := term.NewArena()
		expr := a.Tree(a.Var(words[3]))
		_, e = s.d.Distfix(assoc, level, strings.Join(words[4:], " "), expr, "")
		return e

	case "delimiter":
		if len(words) != 4 {
			return fmt.Errorf("usage: delimiter <scope> <open> <close>")
		}
		_, e := s.d.Delimiter(words[1], words[2], words[3])
		return e
	}

	parsed, e := s.table.Parse(line)
	if e != nil {
		return e
	}
	full, e := s.d.Objects.Expand(parsed)
	if e != nil {
		return e
	}
	text, e := print.NewRenderer(s.prints).Render(full)
	if e != nil {
		return e
	}
	fmt.Println(" =", full.String())
	fmt.Println(" :", text)
	return nil
}

func main() {
	s, e := newShell()
	if e != nil {
		fmt.Println(" !", e.Error())
		return
	}

	fmt.Println("notation shell; declare syntax, then type expressions. quit to exit.")
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for {
		line, e := ln.Prompt("> ")
		if e != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}

		ln.AppendHistory(line)
		e = s.handle(line)
		if e != nil {
			fmt.Println(" !", e.Error())
		}
	}
}
