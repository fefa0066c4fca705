package cli

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/funi/codec"
	"github.com/hupe1980/funi/resource"
	"github.com/hupe1980/funi/table"
)

type convertFlags struct {
	store       storeFlags
	configPath  string
	input       string
	output      string
	from        string
	to          string
	compression string
}

func (c *CLI) convertCommand() *cobra.Command {
	var f convertFlags

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode a table between JSON and the binary format",
		Example: `  funi convert --input points.json --output points.funi --compression zstd
  funi convert --input points.funi --output points.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runConvert(cmd, &f)
		},
	}

	f.store.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "TOML config file")
	fs.StringVarP(&f.input, "input", "i", "", `name of the input table, or "-" for stdin`)
	fs.StringVarP(&f.output, "output", "o", "", "name of the output table")
	fs.StringVar(&f.from, "from", "", "input format: bin or json (default: by extension)")
	fs.StringVar(&f.to, "to", "", "output format: bin or json (default: by extension)")
	fs.StringVarP(&f.compression, "compression", "c", "zstd", "binary payload compression: none, lz4 or zstd")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runConvert(cmd *cobra.Command, f *convertFlags) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	comp, err := table.ParseCompression(f.compression)
	if err != nil {
		return err
	}

	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: cfg.Resource.IOLimitBytesPerSec})
	store, err := openStore(ctx, f.store.merge(cmd, cfg.Store), rc)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	d, err := loadTable(ctx, store, resource.NewReader(ctx, cmd.InOrStdin(), rc), f.input, f.from, codec.Default)
	if err != nil {
		return err
	}
	if err := saveTable(ctx, store, f.output, f.to, d, codec.Default, comp); err != nil {
		return err
	}
	prog.done("Converted " + f.input + " to " + f.output)
	return nil
}
