package zip

// Options configures Zip and ZipWith.
type Options[T any] struct {
	// Fill, when set, pads exhausted inputs so the output spans the longest
	// input instead of the shortest.
	Fill *T
}

// Fill builds an Options with the given pad value.
func Fill[T any](v T) Options[T] {
	return Options[T]{Fill: &v}
}

// Zip transposes same-shape inputs into rows: row i holds the i-th element
// of each input, in input order. Empty inputs yield an empty output.
func Zip[T any](inputs [][]T, opts Options[T]) [][]T {
	if len(inputs) == 0 {
		return nil
	}

	n := rowCount(lengths(inputs), opts.Fill != nil)
	rows := make([][]T, 0, n)
	for i := 0; i < n; i++ {
		row := make([]T, len(inputs))
		for j, in := range inputs {
			if i < len(in) {
				row[j] = in[i]
			} else {
				row[j] = *opts.Fill
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ZipWith maps each zipped row through fn; length and fill semantics are
// those of Zip.
func ZipWith[T, R any](inputs [][]T, fn func(row []T) R, opts Options[T]) []R {
	rows := Zip(inputs, opts)
	out := make([]R, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}

// Unzip transposes rows back into columns. The first row fixes the column
// count: shorter rows contribute nothing beyond their own length, longer
// rows have their extra trailing elements dropped. Empty input yields an
// empty output.
func Unzip[T any](rows [][]T) [][]T {
	if len(rows) == 0 {
		return nil
	}
	cols := make([][]T, len(rows[0]))
	for i := range cols {
		col := make([]T, 0, len(rows))
		for _, row := range rows {
			if i < len(row) {
				col = append(col, row[i])
			}
		}
		cols[i] = col
	}
	return cols
}

func lengths[T any](inputs [][]T) []int {
	ls := make([]int, len(inputs))
	for i, in := range inputs {
		ls[i] = len(in)
	}
	return ls
}

func rowCount(lengths []int, padded bool) int {
	n := lengths[0]
	for _, l := range lengths[1:] {
		if padded && l > n || !padded && l < n {
			n = l
		}
	}
	return n
}
