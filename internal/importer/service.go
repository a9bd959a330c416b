package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/struk/internal/importer/partslist"
	"github.com/MrJamesThe3rd/struk/internal/receipt"
)

type Service struct {
	partsImporter Importer
}

func NewService() *Service {
	return &Service{
		partsImporter: partslist.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]receipt.ComponentParams, error) {
	var importer Importer

	switch format {
	case FormatPartsList, "":
		importer = s.partsImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
