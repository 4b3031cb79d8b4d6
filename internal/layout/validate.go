package layout

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/oakwood-commons/navtree/internal/cel"
)

// Validate checks the whole document and reports every problem found.
func (d *Document) Validate() error {
	var errs []error
	validateSpec(d.Root, []string{rootLabel(d.Root)}, &errs)
	return errors.Join(errs...)
}

func rootLabel(s Spec) string {
	if s.ID == "" {
		return "root"
	}
	return s.ID
}

func validateSpec(s Spec, path []string, errs *[]error) {
	at := strings.Join(path, "/")
	fail := func(format string, args ...any) {
		*errs = append(*errs, fmt.Errorf("%s: %s", at, fmt.Sprintf(format, args...)))
	}

	kind := s.Kind()
	if !slices.Contains(Kinds, kind) {
		if hint := didYouMean(s.Resolver, Kinds); hint != "" {
			fail("unknown resolver %q%s", s.Resolver, hint)
		} else {
			fail("unknown resolver %q (want one of %s)", s.Resolver, strings.Join(Kinds, ", "))
		}
	}
	if kind == KindGrid && s.Cols < 1 {
		fail("grid resolver requires cols >= 1")
	}
	if kind != KindGrid && s.Cols != 0 {
		fail("cols is only valid with the grid resolver")
	}
	if kind == KindExpr {
		if s.Expr == "" {
			fail("expr resolver requires an expression")
		} else if _, err := cel.Compile(s.Expr); err != nil {
			fail("invalid expression: %v", err)
		}
	} else if s.Expr != "" {
		fail("expr is only valid with the expr resolver")
	}
	if r := s.Rect; r != nil && (r.Right < r.Left || r.Bottom < r.Top) {
		fail("rect must have right >= left and bottom >= top")
	}
	if strings.Contains(s.ID, "/") {
		fail("id %q must not contain '/'", s.ID)
	}

	seen := make(map[string]bool, len(s.Children))
	for i, ch := range s.Children {
		label := ch.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		} else if seen[ch.ID] {
			fail("duplicate child id %q", ch.ID)
		}
		seen[ch.ID] = true
		validateSpec(ch, append(slices.Clip(path), label), errs)
	}
}
