package config

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	cty "github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// evalContext exposes the process environment as env.NAME and a handful of
// string helpers to config expressions.
func evalContext() *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: configFunctions(),
	}
}

func configFunctions() map[string]function.Function {
	return map[string]function.Function{
		"lower": function.New(&function.Spec{
			Params: []function.Parameter{{Name: "s", Type: cty.String}},
			Type:   function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				return cty.StringVal(strings.ToLower(args[0].AsString())), nil
			},
		}),
		"upper": function.New(&function.Spec{
			Params: []function.Parameter{{Name: "s", Type: cty.String}},
			Type:   function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				return cty.StringVal(strings.ToUpper(args[0].AsString())), nil
			},
		}),
		"join": function.New(&function.Spec{
			Params: []function.Parameter{{Name: "sep", Type: cty.String}, {Name: "list", Type: cty.List(cty.String)}},
			Type:   function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				sep := args[0].AsString()
				parts := []string{}
				for it := args[1].ElementIterator(); it.Next(); {
					_, v := it.Element()
					parts = append(parts, v.AsString())
				}
				return cty.StringVal(strings.Join(parts, sep)), nil
			},
		}),
		// concat(["a"], split(",", env.EXTRA_WORDS))
		"concat": function.New(&function.Spec{
			VarParam: &function.Parameter{Name: "lists", Type: cty.List(cty.String)},
			Type:     function.StaticReturnType(cty.List(cty.String)),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				out := []cty.Value{}
				for _, l := range args {
					for it := l.ElementIterator(); it.Next(); {
						_, v := it.Element()
						out = append(out, v)
					}
				}
				if len(out) == 0 {
					return cty.ListValEmpty(cty.String), nil
				}
				return cty.ListVal(out), nil
			},
		}),
		"split": function.New(&function.Spec{
			Params: []function.Parameter{{Name: "sep", Type: cty.String}, {Name: "s", Type: cty.String}},
			Type:   function.StaticReturnType(cty.List(cty.String)),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				parts := strings.Split(args[1].AsString(), args[0].AsString())
				out := make([]cty.Value, 0, len(parts))
				for _, p := range parts {
					if p != "" {
						out = append(out, cty.StringVal(p))
					}
				}
				if len(out) == 0 {
					return cty.ListValEmpty(cty.String), nil
				}
				return cty.ListVal(out), nil
			},
		}),
	}
}
