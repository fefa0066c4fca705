package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/funi"
	"github.com/hupe1980/funi/codec"
	"github.com/hupe1980/funi/resource"
)

// resultDocument is the JSON form of a unique-rows result. Arrays that were
// not requested are omitted.
type resultDocument struct {
	Method  string    `json:"method"`
	DType   string    `json:"dtype"`
	Shape   []int     `json:"shape"`
	Unique  []float64 `json:"unique,omitempty"`
	Indices []int     `json:"indices,omitempty"`
	Inverse []int     `json:"inverse,omitempty"`
}

func newResultDocument(m funi.Method, res *funi.DynamicResult) resultDocument {
	return resultDocument{
		Method:  m.String(),
		DType:   res.DType().String(),
		Shape:   []int{res.Len(), res.Width()},
		Unique:  res.UniqueFloat64(),
		Indices: res.Indices(),
		Inverse: res.Inverse(),
	}
}

type uniqueFlags struct {
	store       storeFlags
	configPath  string
	input       string
	output      string
	format      string
	tolerance   float64
	method      string
	stable      bool
	sortedIndex bool
	noUnique    bool
	noIndex     bool
	noInverse   bool
	metric      string
	codec       string
	ioLimit     int64
}

func (c *CLI) uniqueCommand() *cobra.Command {
	var f uniqueFlags

	cmd := &cobra.Command{
		Use:   "unique",
		Short: "Collapse rows that agree within a tolerance",
		Long: `Load a table from a blob store, collapse rows that agree within the tolerance
and print the unique rows, their original indices and the inverse map as JSON.

The lexicographic method (default) merges rows whose every component differs
by less than the tolerance. The axis method merges rows whose Euclidean
distance is below the tolerance, scanning rows in order of their projection
onto --metric.`,
		Example: `  funi unique --input points.json --tolerance 1e-6
  funi unique --store s3 --bucket tables --input run-7.funi --method axis --tolerance 0.01
  funi unique --input points.funi --tolerance 0.5 --sorted-index --no-unique --output result.json
  cat points.json | funi unique --input - --format json --tolerance 0.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runUnique(cmd, &f)
		},
	}

	f.store.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "TOML config file")
	fs.StringVarP(&f.input, "input", "i", "", `name of the input table in the store, or "-" for stdin`)
	fs.StringVarP(&f.output, "output", "o", "", "store the JSON result under this name instead of printing it")
	fs.StringVar(&f.format, "format", "", "input format: bin or json (default: by extension)")
	fs.Float64VarP(&f.tolerance, "tolerance", "t", 0, "merge tolerance")
	fs.StringVarP(&f.method, "method", "m", "lex", "lex or axis")
	fs.BoolVar(&f.stable, "stable", true, "keep the earliest row of every group")
	fs.BoolVar(&f.sortedIndex, "sorted-index", false, "order unique rows by original index")
	fs.BoolVar(&f.noUnique, "no-unique", false, "omit the unique rows")
	fs.BoolVar(&f.noIndex, "no-index", false, "omit the indices")
	fs.BoolVar(&f.noInverse, "no-inverse", false, "omit the inverse map")
	fs.StringVar(&f.metric, "metric", "", "comma-separated projection weights (axis only)")
	fs.StringVar(&f.codec, "codec", "", "JSON codec: go-json (default) or json")
	fs.Int64Var(&f.ioLimit, "io-limit", 0, "maximum store read throughput in bytes per second")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runUnique(cmd *cobra.Command, f *uniqueFlags) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}

	tol := f.tolerance
	if !flags.Changed("tolerance") {
		if cfg.Unique.Tolerance == nil {
			return errNoTolerance
		}
		tol = *cfg.Unique.Tolerance
	}

	methodName := f.method
	if !flags.Changed("method") && cfg.Unique.Method != "" {
		methodName = cfg.Unique.Method
	}
	method := funi.ParseMethod(methodName)

	stable := f.stable
	if !flags.Changed("stable") && cfg.Unique.Stable != nil {
		stable = *cfg.Unique.Stable
	}
	sortedIndex := f.sortedIndex || (!flags.Changed("sorted-index") && cfg.Unique.SortedIndex)

	metric := cfg.Unique.Metric
	if flags.Changed("metric") {
		if metric, err = parseMetric(f.metric); err != nil {
			return err
		}
	}

	format := f.format
	if !flags.Changed("format") {
		format = cfg.Unique.Format
	}

	codecName := f.codec
	if !flags.Changed("codec") {
		codecName = cfg.Unique.Codec
	}
	jsonCodec, err := codec.ByName(codecName)
	if err != nil {
		return err
	}

	ioLimit := cfg.Resource.IOLimitBytesPerSec
	if flags.Changed("io-limit") {
		ioLimit = f.ioLimit
	}
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: ioLimit})

	store, err := openStore(ctx, f.store.merge(cmd, cfg.Store), rc)
	if err != nil {
		return err
	}

	d, err := loadTable(ctx, store, resource.NewReader(ctx, cmd.InOrStdin(), rc), f.input, format, jsonCodec)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded table", "name", f.input, "dtype", d.DType(), "height", d.Height(), "width", d.Width())

	opts := []funi.Option{
		funi.WithMethod(method),
		funi.WithStable(stable),
		funi.WithSortedIndex(sortedIndex),
		funi.WithReturnUnique(!f.noUnique),
		funi.WithReturnIndex(!f.noIndex),
		funi.WithReturnInverse(!f.noInverse),
		funi.WithLogger(libraryLogger(c.Logger)),
	}
	if len(metric) > 0 {
		opts = append(opts, funi.WithMetric(metric...))
	}

	prog := newProgress(c.Logger)
	res, err := funi.UniqueDynamicContext(ctx, d, tol, opts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Collapsed %d rows into %d", d.Height(), res.Len()))

	out, err := jsonCodec.Marshal(newResultDocument(method, res))
	if err != nil {
		return err
	}
	if f.output != "" {
		if err := store.Put(ctx, f.output, out); err != nil {
			return fmt.Errorf("write %s: %w", f.output, err)
		}
		c.Logger.Info("Wrote result", "name", f.output)
		return nil
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
	return err
}

// parseMetric parses comma-separated weights such as "1,0.5,2".
func parseMetric(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("metric %q: %w", p, err)
		}
		weights = append(weights, w)
	}
	return weights, nil
}
