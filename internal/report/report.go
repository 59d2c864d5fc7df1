// Package report renders catalog option audits as Markdown. The audit
// command uses it to summarize which options the catalog carries before a
// bulk add or remove is run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/Earnest-Minds/option-remove-app/pkg/catalog"
	"github.com/Earnest-Minds/option-remove-app/pkg/constants"
)

// Audit is the input for one rendered report.
type Audit struct {
	Shop        string            // Shop domain the snapshot came from
	GeneratedAt time.Time         // Snapshot timestamp
	Products    []catalog.Product // Full catalog snapshot
	OptionName  string            // Optional: list products missing this option
}

// optionUsage aggregates one option name across the catalog. Names group
// case-insensitively, matching the add workflow's comparison rule; the
// first spelling seen is the one displayed.
type optionUsage struct {
	name     string
	products int
	values   map[string]struct{}
}

// WriteMarkdown renders the audit to w.
func WriteMarkdown(w io.Writer, audit Audit) error {
	doc := md.NewMarkdown(w)

	doc.H1("Catalog option audit").
		PlainTextf("Shop: %s", md.Code(audit.Shop)).LF().
		PlainTextf("Generated: %s", audit.GeneratedAt.Format(constants.TimeFormatISO8601)).LF().
		PlainTextf("Products: %d", len(audit.Products)).LF()

	doc.H2("Option usage")
	usage := collectUsage(audit.Products)
	if len(usage) == 0 {
		doc.PlainText("No product carries any option.").LF()
	} else {
		rows := make([][]string, 0, len(usage))
		for _, u := range usage {
			rows = append(rows, []string{
				u.name,
				strconv.Itoa(u.products),
				strconv.Itoa(len(u.values)),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Option", "Products", "Distinct values"},
			Rows:   rows,
		})
	}

	if audit.OptionName != "" {
		doc.H2(fmt.Sprintf("Products missing %q", audit.OptionName))
		missing := catalog.MissingOption(audit.Products, audit.OptionName)
		if len(missing) == 0 {
			doc.PlainText("Every product carries this option.").LF()
		} else {
			items := make([]string, 0, len(missing))
			for _, p := range missing {
				items = append(items, fmt.Sprintf("%s (%s)", p.Title, md.Code(p.ID)))
			}
			doc.BulletList(items...)
		}
	}

	return doc.Build()
}

// Filename returns a timestamped default file name for a written report.
func Filename(generatedAt time.Time) string {
	return "option-audit-" + generatedAt.Format(constants.TimeFormatFilename) + ".md"
}

// collectUsage groups options by case-insensitive name, sorted by name.
func collectUsage(products []catalog.Product) []*optionUsage {
	byName := make(map[string]*optionUsage)
	for _, product := range products {
		for _, opt := range product.Options {
			key := strings.ToLower(opt.Name)
			u, ok := byName[key]
			if !ok {
				u = &optionUsage{name: opt.Name, values: make(map[string]struct{})}
				byName[key] = u
			}
			u.products++
			for _, value := range opt.Values {
				u.values[value.Name] = struct{}{}
			}
		}
	}

	usage := make([]*optionUsage, 0, len(byName))
	for _, u := range byName {
		usage = append(usage, u)
	}
	sort.Slice(usage, func(i, j int) bool {
		return strings.ToLower(usage[i].name) < strings.ToLower(usage[j].name)
	})
	return usage
}
