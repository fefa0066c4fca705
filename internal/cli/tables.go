package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/funi/blobstore"
	"github.com/hupe1980/funi/codec"
	"github.com/hupe1980/funi/table"
)

const (
	formatBinary = "bin"
	formatJSON   = "json"

	// stdinName as an input name reads the table from standard input.
	stdinName = "-"
)

// resolveFormat returns format, or guesses it from the file extension when
// format is empty.
func resolveFormat(format, name string) (string, error) {
	switch strings.ToLower(format) {
	case "":
		if strings.EqualFold(path.Ext(name), ".json") {
			return formatJSON, nil
		}
		return formatBinary, nil
	case formatBinary, "binary", "funi":
		return formatBinary, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want bin or json)", format)
	}
}

// loadTable reads and decodes the named table, or stdin when name is "-".
// c decodes JSON tables.
func loadTable(ctx context.Context, store blobstore.BlobStore, stdin io.Reader, name, format string, c codec.Codec) (*table.Dynamic, error) {
	format, err := resolveFormat(format, name)
	if err != nil {
		return nil, err
	}

	var data []byte
	if name == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = blobstore.ReadAll(ctx, store, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var d *table.Dynamic
	if format == formatJSON {
		d, err = table.DecodeJSON(bytes.NewReader(data), c)
	} else {
		d, err = table.Unmarshal(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return d, nil
}

// saveTable encodes d and stores it under name.
func saveTable(ctx context.Context, store blobstore.BlobStore, name, format string, d *table.Dynamic, c codec.Codec, comp table.Compression) error {
	format, err := resolveFormat(format, name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if format == formatJSON {
		err = table.EncodeJSON(&buf, d, c)
	} else {
		err = table.EncodeDynamic(&buf, d, comp)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
