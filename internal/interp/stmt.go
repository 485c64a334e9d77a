package interp

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

func (ip *Interpreter) stmts(list []syntax.Stmt) error {
	for _, s := range list {
		if err := ip.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

// stmt executes one statement. A return unwinds as a returnSignal.
func (ip *Interpreter) stmt(s syntax.Stmt) error {
	if _, ok := s.(*syntax.BlockStmt); !ok {
		ip.pos = s.Pos()
		ip.stats.Stmts++
	}

	switch s := s.(type) {
	case *syntax.ExprStmt:
		_, err := ip.expr(s.X)
		return err

	case *syntax.AssignStmt:
		return ip.assignStmt(s)

	case *syntax.BlockStmt:
		return ip.stmts(s.Stmts)

	case *syntax.IfStmt:
		c, err := ip.expr(s.Cond)
		if err != nil {
			return err
		}
		if c.Truthy() {
			return ip.stmt(s.Then)
		}
		if s.Else != nil {
			return ip.stmt(s.Else)
		}
		return nil

	case *syntax.ForStmt:
		return ip.forStmt(s)

	case *syntax.ReturnStmt:
		if s.Result == nil {
			return returnSignal{}
		}
		v, err := ip.expr(s.Result)
		if err != nil {
			return err
		}
		return returnSignal{value: v, ok: true}

	case *syntax.ReadStmt:
		return ip.readStmt(s)

	case *syntax.WriteStmt:
		v, err := ip.expr(s.X)
		if err != nil {
			return err
		}
		ip.pos = s.Pos()
		if err := ip.out.WriteLine(v.Render(ip.conf.FloatPrecision)); err != nil {
			return ip.fault(OutputError, err, err.Error())
		}
		ip.stats.Writes++
		return nil

	case *syntax.DeclStmt:
		v, err := ip.expr(s.Decl.Value)
		if err != nil {
			return err
		}
		ip.assign(ip.info.Defs[s.Decl.Name].(*types.Var), v)
		return nil
	}
	panic(fmt.Sprintf("interp: unexpected statement %T", s))
}

// forStmt runs init once, then body and post while cond is nonzero.
// A missing cond is always true.
func (ip *Interpreter) forStmt(s *syntax.ForStmt) error {
	if s.Init != nil {
		if err := ip.stmt(s.Init); err != nil {
			return err
		}
	}
	for {
		if s.Cond != nil {
			ip.pos = s.Pos()
			c, err := ip.expr(s.Cond)
			if err != nil {
				return err
			}
			if !c.Truthy() {
				return nil
			}
		}
		if err := ip.stmt(s.Body); err != nil {
			return err
		}
		if s.Post != nil {
			if err := ip.stmt(s.Post); err != nil {
				return err
			}
		}
	}
}

// assignStmt runs = and op=. A compound assignment reads the target
// before evaluating the right-hand side.
func (ip *Interpreter) assignStmt(s *syntax.AssignStmt) error {
	v := ip.variable(s.LHS)
	if !s.IsCompound() {
		x, err := ip.expr(s.RHS)
		if err != nil {
			return err
		}
		ip.assign(v, x)
		return nil
	}

	cur := ip.load(v)
	y, err := ip.expr(s.RHS)
	if err != nil {
		return err
	}
	ip.pos = s.Pos()
	res, err := ip.arith(s.Op.Binary(), cur, y)
	if err != nil {
		return err
	}
	ip.assign(v, res)
	return nil
}

// readStmt reads one input line and parses it by the target's type.
func (ip *Interpreter) readStmt(s *syntax.ReadStmt) error {
	v := ip.variable(s.Target)
	line, err := ip.in.ReadLine()
	if errors.Is(err, io.EOF) {
		return ip.fault(InputFormatError, err, fmt.Sprintf("read %s: unexpected end of input", v.Name()))
	}
	if err != nil {
		return ip.fault(InputFormatError, err, fmt.Sprintf("read %s: %v", v.Name(), err))
	}
	ip.stats.Reads++

	var val Value
	switch t := v.Type(); {
	case types.IsInteger(t):
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return ip.fault(InputFormatError, err, fmt.Sprintf("read %s: invalid int %q", v.Name(), line))
		}
		val = IntValue(n)
	case types.IsFloat(t):
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return ip.fault(InputFormatError, err, fmt.Sprintf("read %s: invalid float %q", v.Name(), line))
		}
		val = FloatValue(f)
	default:
		val = StringValue(line)
	}
	ip.assign(v, val)
	return nil
}
