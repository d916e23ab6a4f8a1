// Command gen writes type-safe gorm query helpers for the postboard models.
package main

import (
	"flag"

	"postboard/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/gormstore/query", "output directory for generated queries")
	flag.Parse()

	newGenerator(*outPath).Execute()
}

func newGenerator(outPath string) *gen.Generator {
	g := gen.NewGenerator(gen.Config{
		OutPath:       outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)

	return g
}
