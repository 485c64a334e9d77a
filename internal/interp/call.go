package interp

import (
	"fmt"

	"github.com/you-not-fish/mjs/internal/types"
)

// invoke runs fn with already evaluated arguments.
func (ip *Interpreter) invoke(fn *types.FuncObj, args []Value) (Value, error) {
	decl := ip.funcs[fn]
	sig := fn.Signature()

	if len(ip.frames) >= ip.conf.MaxCallDepth {
		return Value{}, ip.fault(StackOverflow, nil,
			fmt.Sprintf("call to %s exceeds maximum call depth %d", fn.Name(), ip.conf.MaxCallDepth))
	}

	f := &frame{fn: fn, args: make([]Value, len(args))}
	for i, a := range args {
		f.args[i] = convert(a, sig.Param(i).Type())
	}

	ip.frames = append(ip.frames, f)
	ip.stats.Calls++
	if len(ip.frames) > ip.stats.MaxDepth {
		ip.stats.MaxDepth = len(ip.frames)
	}
	saved := ip.pos
	defer func() {
		ip.frames = ip.frames[:len(ip.frames)-1]
	}()

	err := ip.stmts(decl.Body.Stmts)
	if ret, ok := err.(returnSignal); ok {
		ip.pos = saved
		if !ret.ok {
			return Value{}, nil
		}
		return convert(ret.value, sig.Result()), nil
	}
	if err != nil {
		return Value{}, err
	}

	if !types.IsVoid(sig.Result()) {
		ip.pos = decl.Body.Rbrace
		return Value{}, ip.fault(MissingReturn, nil,
			fmt.Sprintf("function %s returning %s reached the end of its body without a return", fn.Name(), sig.Result()))
	}
	ip.pos = saved
	return Value{}, nil
}
