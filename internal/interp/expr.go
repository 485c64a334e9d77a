package interp

import (
	"fmt"
	"strconv"

	"github.com/you-not-fish/mjs/internal/syntax"
	"github.com/you-not-fish/mjs/internal/types"
)

// expr evaluates e.
func (ip *Interpreter) expr(e syntax.Expr) (Value, error) {
	switch e := e.(type) {
	case *syntax.Name:
		return ip.load(ip.variable(e)), nil

	case *syntax.BasicLit:
		return ip.literal(e), nil

	case *syntax.ParenExpr:
		return ip.expr(e.X)

	case *syntax.UnaryExpr:
		x, err := ip.expr(e.X)
		if err != nil {
			return Value{}, err
		}
		if x.Truthy() {
			return IntValue(0), nil
		}
		return IntValue(1), nil

	case *syntax.BinaryExpr:
		x, err := ip.expr(e.X)
		if err != nil {
			return Value{}, err
		}
		y, err := ip.expr(e.Y)
		if err != nil {
			return Value{}, err
		}
		return ip.arith(e.Op, x, y)

	case *syntax.CallExpr:
		return ip.call(e)
	}
	panic(fmt.Sprintf("interp: unexpected expression %T", e))
}

// literal returns the value of a literal decoded by New.
func (ip *Interpreter) literal(lit *syntax.BasicLit) Value {
	if v, ok := ip.lits[lit]; ok {
		return v
	}
	v := decodeLit(lit)
	ip.lits[lit] = v
	return v
}

// decodeLit converts literal text the scanner has already validated.
func decodeLit(lit *syntax.BasicLit) Value {
	switch lit.Kind {
	case syntax.IntLit:
		n, _ := strconv.ParseInt(lit.Value, 10, 64)
		return IntValue(n)
	case syntax.FloatLit:
		f, _ := strconv.ParseFloat(lit.Value, 64)
		return FloatValue(f)
	}
	return StringValue(lit.Value)
}

// call evaluates the arguments left to right and invokes the callee.
func (ip *Interpreter) call(e *syntax.CallExpr) (Value, error) {
	fn := ip.info.Uses[e.Fun].(*types.FuncObj)
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ip.expr(a)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return ip.invoke(fn, args)
}

// arith applies a binary operator to numeric operands. Int operands
// wrap on overflow; a float operand promotes the other to float.
// % truncates toward zero, so the result has the sign of x.
func (ip *Interpreter) arith(op syntax.Token, x, y Value) (Value, error) {
	if x.Kind() == types.Int && y.Kind() == types.Int {
		a, b := x.i, y.i
		switch op {
		case syntax.Add:
			return IntValue(a + b), nil
		case syntax.Sub:
			return IntValue(a - b), nil
		case syntax.Mul:
			return IntValue(a * b), nil
		case syntax.Div:
			if b == 0 {
				return Value{}, ip.fault(DivisionByZero, nil, fmt.Sprintf("integer division of %d by zero", a))
			}
			return IntValue(a / b), nil
		case syntax.Rem:
			if b == 0 {
				return Value{}, ip.fault(ModuloByZero, nil, fmt.Sprintf("remainder of %d by zero", a))
			}
			return IntValue(a % b), nil
		case syntax.Eql:
			return boolValue(a == b), nil
		case syntax.Neq:
			return boolValue(a != b), nil
		}
	} else {
		a, b := x.Float(), y.Float()
		switch op {
		case syntax.Add:
			return FloatValue(a + b), nil
		case syntax.Sub:
			return FloatValue(a - b), nil
		case syntax.Mul:
			return FloatValue(a * b), nil
		case syntax.Div:
			if b == 0 {
				return Value{}, ip.fault(DivisionByZero, nil, fmt.Sprintf("division of %s by zero", FormatFloat(a, ip.conf.FloatPrecision)))
			}
			return FloatValue(a / b), nil
		case syntax.Eql:
			return boolValue(a == b), nil
		case syntax.Neq:
			return boolValue(a != b), nil
		}
	}
	panic(fmt.Sprintf("interp: operator %s on %s and %s", op, x.Kind(), y.Kind()))
}

func boolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}
