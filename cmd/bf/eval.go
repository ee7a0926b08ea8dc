package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/blobfig/go-blobfig/debug"
	"github.com/blobfig/go-blobfig/dump"
	"github.com/blobfig/go-blobfig/encode"
	"github.com/blobfig/go-blobfig/gomap"
	"github.com/blobfig/go-blobfig/ir"
	"github.com/blobfig/go-blobfig/parse"
)

// eval compiles an expr-lang expression once and runs it against each
// artifact's tree. Object artifacts expose their keys as variables;
// any artifact is also reachable whole as "root". Arrays and files
// appear as *ir.Array and *ir.File.
func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval wants an expression argument", cli.ErrUsage)
	}
	code := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	program, err := expr.Compile(code, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", code, err)
	}
	for i, arg := range args {
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := evalArg(cfg, cc, program, arg); err != nil {
			return err
		}
	}
	return nil
}

func evalArg(cfg *EvalConfig, cc *cli.Context, program *vm.Program, arg string) error {
	return parseArg(arg, func(root *parse.View) error {
		v, err := root.Decode()
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		plain, err := gomap.FromIR(v)
		if err != nil {
			return err
		}
		env, ok := plain.(map[string]any)
		if !ok {
			env = map[string]any{}
		}
		env["root"] = plain
		if debug.Eval() {
			debug.Logf("bf: eval %s: %d vars\n", arg, len(env))
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating over %s: %w", arg, err)
		}
		return writeResult(cfg, cc, out)
	})
}

// writeResult renders the expression result: values that map into a
// tree render like view output, anything else prints with %v.
func writeResult(cfg *EvalConfig, cc *cli.Context, out any) error {
	v, err := gomap.ToIR(out)
	if err != nil {
		_, err = fmt.Fprintf(cc.Out, "%v\n", out)
		return err
	}
	buf, err := encodeToView(v)
	if err != nil {
		_, err = fmt.Fprintf(cc.Out, "%v\n", out)
		return err
	}
	return dump.Dump(buf, cc.Out, cfg.dumpOpts(cc.Out)...)
}

func encodeToView(v *ir.Value) (*parse.View, error) {
	buf, err := encode.ToBytes(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(buf)
}
