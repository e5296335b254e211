package slice

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/vipcxj/rangeview/seq"
	"go.uber.org/zap"
)

const ShortDesc = "Print a window of a list of items, selected by interval notation"

const LongDesc = `Slice reads items from its arguments (or stdin, one per line), numbers them from
--start, and narrows them with one or more --range intervals. Each interval is
resolved against the window produced by the previous one, so

  rangeview slice -r '[1,4)' -r '>=2' 10 20 30 40 50

prints 30 and 40. The selected items are printed in the --output-format, or,
with --export, as a shell assignment that a calling script can eval. Lines read
from stdin may be up to 16 MiB long.`

// Select narrows base by each range in turn. Open sides of a range take the
// current window's ends. A range reaching outside the current window, or a
// window outside the base, is an error. The base's own domain is validated
// before any range is applied.
func Select[T any](base seq.Container[int, T], ranges []IntRange, log *zap.SugaredLogger) (seq.View[int, T], error) {
	v := seq.NewView(base, seq.BoundsOf(base))
	if err := v.Validate(); err != nil {
		return seq.View[int, T]{}, fmt.Errorf("items: %w", err)
	}
	for i, r := range ranges {
		notation := r.ToParseableString()
		b, err := r.Resolve(v.Bounds())
		if err != nil {
			return seq.View[int, T]{}, err
		}
		log.Debugw("resolved range", "index", i, "range", notation, "window", v.Bounds().String(), "bounds", b.String())
		if !b.Within(v.Bounds()) {
			return seq.View[int, T]{}, fmt.Errorf("range %s selects %v outside %v: %w", notation, b, v.Bounds(), seq.ErrNotSubrange)
		}
		v = v.Slice(b)
		if err := v.Validate(); err != nil {
			return seq.View[int, T]{}, fmt.Errorf("range %s: %w", notation, err)
		}
	}
	return v, nil
}

// Pick returns the elements of v whose position (0 for v's first index) keep
// contains. A nil keep selects every element. With withIndex every element is
// prefixed by its index and a tab.
func Pick(v seq.View[int, string], keep seq.Range[int], withIndex bool) []string {
	var out []string
	for i, item := range v.All() {
		if keep != nil && !keep.Contains(i-v.StartIndex()) {
			continue
		}
		if withIndex {
			item = strconv.Itoa(i) + "\t" + item
		}
		out = append(out, item)
	}
	return out
}

// RunSlice executes the slice command. Items come from args, or from stdin
// when args is empty.
func RunSlice(spec SliceSpec, args []string, stdin io.Reader, stdout io.Writer, log *zap.SugaredLogger) error {
	if err := checkMultiFormat(spec.InputFormat, "input-format"); err != nil {
		return err
	}
	if err := checkMultiFormat(spec.OutputFormat, "output-format"); err != nil {
		return err
	}

	raw := args
	if len(raw) == 0 {
		lines, err := readItems(stdin)
		if err != nil {
			return err
		}
		raw = lines
	}
	items, err := ParseMultiValues(spec.InputFormat, raw)
	if err != nil {
		return fmt.Errorf("parse items: %w", err)
	}
	log.Debugw("items", "count", len(items), "start", spec.Start)
	if spec.Start > math.MaxInt-len(items) {
		return fmt.Errorf("--start %d with %d items runs past the largest index: %w", spec.Start, len(items), seq.ErrOutOfBounds)
	}

	view, err := Select[string](seq.ArrayAt(spec.Start, items), spec.Ranges, log)
	if err != nil {
		return err
	}
	var keep seq.Range[int]
	if spec.Pick.IsNotEmpty() && !spec.Pick.IsAllNatural() {
		keep = spec.Pick
	}
	values := Pick(view, keep, spec.Index)

	if spec.ExportVar != "" {
		shellType, err := decideShellType(spec.ShellType)
		if err != nil {
			return err
		}
		joined, err := OutputMultiValues(spec.OutputFormat, values)
		if err != nil {
			return err
		}
		stmt, err := ExportStatement(shellType, spec.ExportVar, joined, spec.ExportGlobal)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, stmt)
		return err
	}

	text, err := OutputMultiValues(spec.OutputFormat, values)
	if err != nil {
		return err
	}
	if text == "" && !slices.Contains(spec.OutputFormat, "json") {
		return nil
	}
	_, err = fmt.Fprintln(stdout, text)
	return err
}

// RunPow2 prints the power of two at or above each argument, one per line.
// Arguments accept the usual Go prefixes (0x, 0o, 0b).
func RunPow2(args []string, checked bool, stdout io.Writer, log *zap.SugaredLogger) error {
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
		r := seq.CeilToPowerOf2(n)
		if checked {
			if r, err = seq.CeilToPowerOf2Checked(n); err != nil {
				return err
			}
		}
		log.Debugw("pow2", "arg", arg, "value", n, "result", r)
		if _, err := fmt.Fprintln(stdout, r); err != nil {
			return err
		}
	}
	return nil
}
