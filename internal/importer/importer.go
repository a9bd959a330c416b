package importer

import (
	"io"

	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

type Format string

const (
	FormatPartsList Format = "parts"
)

type Importer interface {
	Parse(r io.Reader) ([]receipt.ComponentParams, error)
}
