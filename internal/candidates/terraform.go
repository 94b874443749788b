package candidates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/terraform-config-inspect/tfconfig"
)

// terraformSymbols lists the addresses declared by the Terraform module in dir
// as completion words: var.X, module.X, TYPE.NAME, data.TYPE.NAME and
// output.X.
func terraformSymbols(dir string) ([]string, error) {
	if !tfconfig.IsModuleDir(dir) {
		return nil, fmt.Errorf("%s contains no Terraform configuration", dir)
	}
	mod, diags := tfconfig.LoadModule(dir)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", dir, diags.Err())
	}
	var out []string
	for name := range mod.Variables {
		out = append(out, "var."+name)
	}
	for name := range mod.ModuleCalls {
		out = append(out, "module."+name)
	}
	for _, r := range mod.ManagedResources {
		out = append(out, r.Type+"."+r.Name)
	}
	for _, r := range mod.DataResources {
		out = append(out, "data."+r.Type+"."+r.Name)
	}
	for name := range mod.Outputs {
		out = append(out, "output."+name)
	}
	return uniqueSorted(out), nil
}

func uniqueSorted(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
