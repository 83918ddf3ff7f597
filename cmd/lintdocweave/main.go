package main

import (
	"github.com/docweave/docweave/internal/lintdocweave"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(lintdocweave.Analyzer)
}
