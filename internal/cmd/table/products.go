// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strings"

	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ProductsToTableData converts a product snapshot to table format. The wide
// view includes each option's values; the normal view only counts them.
func ProductsToTableData(products []catalog.Product, wide bool) Data {
	headers := []string{"Title", "ID", "Options"}

	rows := make([][]string, 0, len(products))
	for _, product := range products {
		rows = append(rows, []string{
			product.Title,
			product.ID,
			FormatOptions(product.Options, wide),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignDefault, // TITLE
			AlignDefault, // ID
			AlignDefault, // OPTIONS
		},
	}
}

// FormatOptions renders a product's options on one line. Normal view:
// "Color (3), Size (2)". Wide view: "Color [Red, Green, Yellow]; Size [S, M]".
func FormatOptions(options []catalog.Option, wide bool) string {
	if len(options) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(options))
	for _, opt := range options {
		if wide {
			names := make([]string, 0, len(opt.Values))
			for _, value := range opt.Values {
				names = append(names, value.Name)
			}
			parts = append(parts, fmt.Sprintf("%s [%s]", opt.Name, strings.Join(names, ", ")))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%d)", opt.Name, len(opt.Values)))
	}

	separator := ", "
	if wide {
		separator = "; "
	}
	return strings.Join(parts, separator)
}
