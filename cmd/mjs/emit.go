package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/you-not-fish/mjs/internal/config"
	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
	"github.com/you-not-fish/mjs/internal/types2"
)

// printTokens prints one line per token: position, class, token and text.
func printTokens(w io.Writer, toks []syntax.Lexeme) {
	fmt.Fprintf(w, "%-20s %-12s %-8s %s\n", "POSITION", "CLASS", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %-8s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 8), strings.Repeat("-", 20))
	for _, t := range toks {
		tok := t.Tok.String()
		if t.Tok.Class() == syntax.ClassLiteral {
			tok = t.Kind.String()
		}
		fmt.Fprintf(w, "%-20s %-12s %-8s %s\n", t.Pos, t.Tok.Class(), tok, formatLiteral(t.Lit))
	}
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\t':
			b.WriteString("\\t")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string, conf config.Config) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	defer f.Close()

	p := syntax.NewParser(filename, f, nil)
	p.SetLiteralLimits(conf.LiteralLimits)
	ast := p.Parse()
	if err := p.FirstError(); err != nil {
		report(err)
		return exitError
	}

	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, ast); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitError
		}
	default:
		syntax.Fprint(os.Stdout, ast)
	}
	return exitOK
}

// runEmitSymtab checks the input file and outputs its symbol tables.
func runEmitSymtab(filename string, conf config.Config) int {
	u, ok := compile(filename, conf)
	if !ok {
		return exitError
	}

	r := types.NewReport(u.Package, types.DefaultSizes)
	var err error
	switch *symtabFormat {
	case "yaml":
		err = types.WriteReportYAML(os.Stdout, r)
	default:
		err = types.WriteReport(os.Stdout, r)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

// runEmitTypedAST parses, checks, and outputs the typed AST.
// The tree is printed even when checking fails.
func runEmitTypedAST(filename string, conf config.Config) int {
	u, ok := compile(filename, conf)
	if u == nil {
		return exitError
	}

	printTypedAST(os.Stdout, u.Program, u.Info)

	if !ok {
		return exitError
	}
	return exitOK
}

// printTypedAST outputs the program with type annotations.
func printTypedAST(w io.Writer, prog *syntax.Program, info *types2.Info) {
	fmt.Fprintf(w, "Program\n")
	fmt.Fprintf(w, "  Decls:\n")
	for _, decl := range prog.Decls {
		printTypedDecl(w, decl, info, "    ")
	}
	fmt.Fprintf(w, "  Stmts:\n")
	for _, stmt := range prog.Stmts {
		printTypedStmt(w, stmt, info, "    ")
	}
}

// printTypedDecl outputs a declaration with type annotations.
func printTypedDecl(w io.Writer, decl syntax.Decl, info *types2.Info, indent string) {
	switch d := decl.(type) {
	case *syntax.VarDecl:
		fmt.Fprintf(w, "%sVarDecl\n", indent)
		fmt.Fprintf(w, "%s  Name: %s\n", indent, defString(d.Name, info))
		if d.Value != nil {
			fmt.Fprintf(w, "%s  Value: %s\n", indent, typedExprString(d.Value, info))
		}

	case *syntax.FuncDecl:
		fmt.Fprintf(w, "%sFuncDecl\n", indent)
		fmt.Fprintf(w, "%s  Name: %s\n", indent, defString(d.Name, info))
		for i, p := range d.Params {
			fmt.Fprintf(w, "%s  Param[%d]: %s\n", indent, i, defString(p.Name, info))
		}
		fmt.Fprintf(w, "%s  Body:\n", indent)
		for _, stmt := range d.Body.Stmts {
			printTypedStmt(w, stmt, info, indent+"    ")
		}
	}
}

// defString describes a defining name and the type of its object.
func defString(name *syntax.Name, info *types2.Info) string {
	if obj := info.Defs[name]; obj != nil && obj.Type() != nil {
		return fmt.Sprintf("%s (%s %s)", name.Value, obj.Kind(), obj.Type())
	}
	return name.Value
}

// printTypedStmt outputs a statement with type annotations.
func printTypedStmt(w io.Writer, stmt syntax.Stmt, info *types2.Info, indent string) {
	switch s := stmt.(type) {
	case *syntax.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", indent)
		fmt.Fprintf(w, "%s  X: %s\n", indent, typedExprString(s.X, info))

	case *syntax.AssignStmt:
		fmt.Fprintf(w, "%sAssignStmt (%s)\n", indent, s.Op)
		fmt.Fprintf(w, "%s  LHS: %s\n", indent, typedExprString(s.LHS, info))
		fmt.Fprintf(w, "%s  RHS: %s\n", indent, typedExprString(s.RHS, info))

	case *syntax.ReturnStmt:
		fmt.Fprintf(w, "%sReturnStmt\n", indent)
		if s.Result != nil {
			fmt.Fprintf(w, "%s  Result: %s\n", indent, typedExprString(s.Result, info))
		}

	case *syntax.IfStmt:
		fmt.Fprintf(w, "%sIfStmt\n", indent)
		fmt.Fprintf(w, "%s  Cond: %s\n", indent, typedExprString(s.Cond, info))
		fmt.Fprintf(w, "%s  Then:\n", indent)
		printTypedStmt(w, s.Then, info, indent+"    ")
		if s.Else != nil {
			fmt.Fprintf(w, "%s  Else:\n", indent)
			printTypedStmt(w, s.Else, info, indent+"    ")
		}

	case *syntax.ForStmt:
		fmt.Fprintf(w, "%sForStmt\n", indent)
		if s.Init != nil {
			fmt.Fprintf(w, "%s  Init:\n", indent)
			printTypedStmt(w, s.Init, info, indent+"    ")
		}
		if s.Cond != nil {
			fmt.Fprintf(w, "%s  Cond: %s\n", indent, typedExprString(s.Cond, info))
		}
		if s.Post != nil {
			fmt.Fprintf(w, "%s  Post:\n", indent)
			printTypedStmt(w, s.Post, info, indent+"    ")
		}
		fmt.Fprintf(w, "%s  Body:\n", indent)
		for _, st := range s.Body.Stmts {
			printTypedStmt(w, st, info, indent+"    ")
		}

	case *syntax.ReadStmt:
		fmt.Fprintf(w, "%sReadStmt\n", indent)
		fmt.Fprintf(w, "%s  Target: %s\n", indent, typedExprString(s.Target, info))

	case *syntax.WriteStmt:
		fmt.Fprintf(w, "%sWriteStmt\n", indent)
		fmt.Fprintf(w, "%s  X: %s\n", indent, typedExprString(s.X, info))

	case *syntax.DeclStmt:
		fmt.Fprintf(w, "%sDeclStmt %s\n", indent, s.Decl.Name.Value)
		fmt.Fprintf(w, "%s  Value: %s\n", indent, typedExprString(s.Decl.Value, info))

	case *syntax.BlockStmt:
		fmt.Fprintf(w, "%sBlockStmt\n", indent)
		for _, st := range s.Stmts {
			printTypedStmt(w, st, info, indent+"  ")
		}

	default:
		fmt.Fprintf(w, "%s%T\n", indent, stmt)
	}
}

func typedExprString(expr syntax.Expr, info *types2.Info) string {
	tv, ok := info.Types[expr]
	typ := ""
	if ok {
		switch {
		case tv.Type != nil:
			typ = fmt.Sprintf(" (%s)", tv.Type)
		case tv.IsVoid():
			typ = " (void)"
		}
	}

	switch e := expr.(type) {
	case *syntax.Name:
		return fmt.Sprintf("Name %q%s", e.Value, typ)
	case *syntax.BasicLit:
		return fmt.Sprintf("BasicLit %q%s", e.Value, typ)
	case *syntax.UnaryExpr:
		return fmt.Sprintf("UnaryExpr %s%s [X=%s]", e.Op, typ, typedExprString(e.X, info))
	case *syntax.BinaryExpr:
		return fmt.Sprintf("BinaryExpr %s%s [X=%s, Y=%s]", e.Op, typ, typedExprString(e.X, info), typedExprString(e.Y, info))
	case *syntax.CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = typedExprString(arg, info)
		}
		return fmt.Sprintf("CallExpr%s [Fun=%s, Args=[%s]]", typ, typedExprString(e.Fun, info), strings.Join(args, ", "))
	case *syntax.ParenExpr:
		return fmt.Sprintf("ParenExpr%s [X=%s]", typ, typedExprString(e.X, info))
	default:
		return fmt.Sprintf("%T%s", expr, typ)
	}
}
